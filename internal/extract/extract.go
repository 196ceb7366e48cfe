package extract

import "context"

// Result holds the plain text and page metadata pulled out of a document.
type Result struct {
	Text      string
	PageCount int
}

// Extractor converts an uploaded PDF binary into plain text plus page count.
type Extractor interface {
	Extract(ctx context.Context, content []byte) (Result, error)
}
