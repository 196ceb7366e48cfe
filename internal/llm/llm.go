package llm

import "context"

// Length selects the summary style requested by the user.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// ParseLength maps a raw form value to a Length. Unknown or missing
// values fall back to medium.
func ParseLength(s string) Length {
	switch Length(s) {
	case LengthShort, LengthMedium, LengthLong:
		return Length(s)
	default:
		return LengthMedium
	}
}

// Client is a minimal LLM interface to allow pluggable providers.
type Client interface {
	Summarize(ctx context.Context, text string, length Length) (string, error)
}
