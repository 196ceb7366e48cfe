package llm

import (
	"strings"
	"testing"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"short", LengthShort},
		{"medium", LengthMedium},
		{"long", LengthLong},
		{"", LengthMedium},
		{"detailed", LengthMedium},
		{"SHORT", LengthMedium},
	}
	for _, tc := range cases {
		if got := ParseLength(tc.in); got != tc.want {
			t.Errorf("ParseLength(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildPromptShortTextUnchanged(t *testing.T) {
	text := "a short document"
	if got := BuildPrompt(text); got != text {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestBuildPromptCapsAndMarks(t *testing.T) {
	text := strings.Repeat("x", PromptMaxChars+500)
	got := BuildPrompt(text)

	want := strings.Repeat("x", PromptMaxChars) + TruncationMarker
	if got != want {
		t.Errorf("prompt is not the first %d chars plus marker", PromptMaxChars)
	}
}

func TestBuildPromptExactBoundary(t *testing.T) {
	text := strings.Repeat("x", PromptMaxChars)
	if got := BuildPrompt(text); got != text {
		t.Error("text at exactly the cap must not be marked as truncated")
	}
}

func TestInstructionFallsBackToMedium(t *testing.T) {
	if Instruction(Length("bogus")) != Instruction(LengthMedium) {
		t.Error("unknown length should use the medium instruction")
	}
	for _, l := range []Length{LengthShort, LengthMedium, LengthLong} {
		if Instruction(l) == "" {
			t.Errorf("missing instruction for %q", l)
		}
	}
}
