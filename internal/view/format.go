package view

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// FormatBytes renders a byte count with 1024/1048576 thresholds.
func FormatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// RelativeTime renders a timestamp relative to now: just now under a
// minute, minutes under an hour, hours under a day, else a short date.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// WordCount counts whitespace-separated words in the summary.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ExportFilename builds the markdown download name from the original
// upload name, e.g. "report.pdf" -> "report-summary.md".
func ExportFilename(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	if base == "" {
		base = "document"
	}
	return base + "-summary.md"
}

// ExportSummary produces the local markdown download for a summary.
// Purely a client-side operation; no server involvement.
func ExportSummary(originalFilename, summary string) (string, []byte) {
	return ExportFilename(originalFilename), []byte(summary)
}
