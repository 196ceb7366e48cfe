package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// Client is a typed client for the summarizer HTTP surface, used by the
// view controller.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// The completion call upstream is synchronous and unbounded by
		// this system; the transport timeout is the only ceiling.
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

// SummarizeResponse mirrors the POST /api/summarize body.
type SummarizeResponse struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	PageCount     *int      `json:"pageCount"`
	TextLength    int       `json:"textLength"`
	Summary       string    `json:"summary"`
	SummaryLength string    `json:"summaryLength"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SummaryItem is one row of the history listing.
type SummaryItem struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	FileSize      int64     `json:"fileSize"`
	PageCount     *int      `json:"pageCount"`
	Summary       string    `json:"summary"`
	SummaryLength string    `json:"summaryLength"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SummaryDetail is the full record returned by GET /api/summaries/{id}.
type SummaryDetail struct {
	SummaryItem
	ExtractedText string `json:"extractedText"`
	TextLength    int    `json:"textLength"`
}

// Summarize uploads a PDF and blocks until the summary comes back.
func (c *Client) Summarize(ctx context.Context, filename string, content []byte, length string) (SummarizeResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf"; filename="%s"`, filename))
	h.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(h)
	if err != nil {
		return SummarizeResponse{}, err
	}
	if _, err := part.Write(content); err != nil {
		return SummarizeResponse{}, err
	}
	if length != "" {
		if err := writer.WriteField("length", length); err != nil {
			return SummarizeResponse{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return SummarizeResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/summarize", &buf)
	if err != nil {
		return SummarizeResponse{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out SummarizeResponse
	if err := c.do(req, &out); err != nil {
		return SummarizeResponse{}, err
	}
	return out, nil
}

// ListSummaries fetches the history listing, newest first.
func (c *Client) ListSummaries(ctx context.Context) ([]SummaryItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/summaries", nil)
	if err != nil {
		return nil, err
	}
	var out []SummaryItem
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSummary fetches one full record.
func (c *Client) GetSummary(ctx context.Context, id string) (SummaryDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/summaries/"+id, nil)
	if err != nil {
		return SummaryDetail{}, err
	}
	var out SummaryDetail
	if err := c.do(req, &out); err != nil {
		return SummaryDetail{}, err
	}
	return out, nil
}

// DeleteSummary removes a record. The server treats unknown ids as a no-op.
func (c *Client) DeleteSummary(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/summaries/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError surfaces the server's JSON error message when present.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%s", body.Error)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
