package view

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048575, "1024.0 KB"},
		{1048576, "1.0 MB"},
		{5 * 1048576, "5.0 MB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"under an hour", now.Add(-59 * time.Minute), "59m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"older than a day", now.Add(-48 * time.Hour), "Mar 8, 2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeTime(tc.t, now); got != tc.want {
				t.Errorf("RelativeTime = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"a markdown  summary\nwith five words", 6},
	}
	for _, tc := range cases {
		if got := WordCount(tc.in); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report-summary.md"},
		{"annual.report.pdf", "annual.report-summary.md"},
		{"noext", "noext-summary.md"},
		{".pdf", "document-summary.md"},
	}
	for _, tc := range cases {
		if got := ExportFilename(tc.in); got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExportSummary(t *testing.T) {
	name, content := ExportSummary("report.pdf", "## Summary\n\nText.")
	if name != "report-summary.md" {
		t.Errorf("unexpected filename %q", name)
	}
	if string(content) != "## Summary\n\nText." {
		t.Error("export content must be the summary text verbatim")
	}
}
