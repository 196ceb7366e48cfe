package extract

import (
	"context"
	"testing"
)

func TestExtractRejectsNonPDF(t *testing.T) {
	e := NewPDFExtractor()

	cases := []struct {
		name    string
		content []byte
	}{
		{"empty", nil},
		{"plain text", []byte("hello world, this is not a pdf")},
		{"truncated header", []byte("%PDF-1.4")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.Extract(context.Background(), tc.content); err == nil {
				t.Fatal("expected error for non-pdf content")
			}
		})
	}
}
