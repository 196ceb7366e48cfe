package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pdf-summarizer/internal/app"
	"pdf-summarizer/internal/events"
	"pdf-summarizer/internal/httputil"
	"pdf-summarizer/internal/llm"
	"pdf-summarizer/internal/store"
)

// summarizeResponse is the JSON body returned by POST /api/summarize.
// ID is empty when persistence failed; the summary is still delivered.
type summarizeResponse struct {
	ID            string    `json:"id,omitempty"`
	Filename      string    `json:"filename"`
	PageCount     *int      `json:"pageCount"`
	TextLength    int       `json:"textLength"`
	Summary       string    `json:"summary"`
	SummaryLength string    `json:"summaryLength"`
	CreatedAt     time.Time `json:"createdAt"`
}

type summaryItem struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	FileSize      int64     `json:"fileSize"`
	PageCount     *int      `json:"pageCount"`
	Summary       string    `json:"summary"`
	SummaryLength string    `json:"summaryLength"`
	CreatedAt     time.Time `json:"createdAt"`
}

type summaryDetail struct {
	summaryItem
	ExtractedText string `json:"extractedText"`
	TextLength    int    `json:"textLength"`
}

type uploadForm struct {
	Filename string `validate:"required"`
	Size     int64  `validate:"gt=0"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Post("/api/summarize", summarizeHandler(deps))
	r.Get("/api/summaries", listHandler(deps))
	r.Get("/api/summaries/{id}", getHandler(deps))
	r.Delete("/api/summaries/{id}", deleteHandler(deps))
	r.Get("/api/health", healthHandler())

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// summarizeHandler runs the whole pipeline for one upload:
// validate -> extract -> complete -> persist -> respond.
func summarizeHandler(deps app.Deps) http.HandlerFunc {
	maxFileSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.ContentLength > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)

		file, header, err := r.FormFile("pdf")
		if err != nil {
			httputil.Fail(deps.Log, w, "a PDF file is required", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}
		form := uploadForm{Filename: header.Filename, Size: header.Size}
		if err := httputil.Validate.Struct(&form); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}
		if !isPDF(header.Filename, header.Header.Get("Content-Type")) {
			httputil.Fail(deps.Log, w, "only PDF files are supported", nil, http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read file", err, http.StatusInternalServerError)
			return
		}

		extracted, err := deps.Extractor.Extract(ctx, content)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to extract text from PDF", err, http.StatusInternalServerError)
			return
		}
		if strings.TrimSpace(extracted.Text) == "" {
			// Heuristic for scanned/image-only documents; this pipeline
			// cannot OCR them.
			httputil.Fail(deps.Log, w, "Could not extract text from this PDF. It may be scanned or image-only.", nil, http.StatusBadRequest)
			return
		}

		length := llm.ParseLength(r.FormValue("length"))
		summary, err := deps.LLM.Summarize(ctx, extracted.Text, length)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to generate summary", err, http.StatusInternalServerError)
			return
		}

		resp := summarizeResponse{
			Filename:      header.Filename,
			PageCount:     pageCountPtr(extracted.PageCount),
			TextLength:    len([]rune(extracted.Text)),
			Summary:       summary,
			SummaryLength: string(length),
			CreatedAt:     time.Now(),
		}

		rec := store.SummaryRecord{
			OriginalFilename: header.Filename,
			FileSize:         header.Size,
			PageCount:        resp.PageCount,
			ExtractedText:    capForStorage(extracted.Text),
			Summary:          summary,
			SummaryLength:    string(length),
		}
		saved, err := deps.Store.CreateSummary(ctx, rec)
		if err != nil {
			// Best-effort persistence: the user still gets the summary,
			// it is just not retrievable later.
			deps.Log.Error("failed to persist summary record", "err", err, "filename", header.Filename)
		} else {
			resp.ID = saved.ID.String()
			resp.CreatedAt = saved.CreatedAt
			invalidateListing(ctx, deps)
			publish(ctx, deps, events.Event{
				Type:      events.EventSummaryCreated,
				SummaryID: saved.ID,
				Filename:  saved.OriginalFilename,
			})
		}

		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}

func listHandler(deps app.Deps) http.HandlerFunc {
	cacheTTL := time.Duration(deps.Config.CacheTTL) * time.Second

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		records, err := deps.Cache.GetListing(ctx)
		if err != nil {
			deps.Log.Warn("listing cache read failed", "err", err)
			records = nil
		}
		if records == nil {
			records, err = deps.Store.ListSummaries(ctx)
			if err != nil {
				httputil.Fail(deps.Log, w, "failed to list summaries", err, http.StatusInternalServerError)
				return
			}
			if err := deps.Cache.SetListing(ctx, records, cacheTTL); err != nil {
				deps.Log.Warn("listing cache write failed", "err", err)
			}
		}

		items := make([]summaryItem, 0, len(records))
		for _, rec := range records {
			items = append(items, toItem(rec))
		}
		httputil.WriteJSON(w, http.StatusOK, items)
	}
}

func getHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Fail(deps.Log, w, "invalid summary id", err, http.StatusBadRequest)
			return
		}
		rec, err := deps.Store.GetSummary(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Fail(deps.Log, w, "summary not found", err, http.StatusNotFound)
				return
			}
			httputil.Fail(deps.Log, w, "failed to get summary", err, http.StatusInternalServerError)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, summaryDetail{
			summaryItem:   toItem(rec),
			ExtractedText: rec.ExtractedText,
			TextLength:    len([]rune(rec.ExtractedText)),
		})
	}
}

func deleteHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Fail(deps.Log, w, "invalid summary id", err, http.StatusBadRequest)
			return
		}
		// Deleting an id that was never created still succeeds; the
		// store treats it as a no-op.
		if err := deps.Store.DeleteSummary(ctx, id); err != nil {
			httputil.Fail(deps.Log, w, "failed to delete summary", err, http.StatusInternalServerError)
			return
		}
		invalidateListing(ctx, deps)
		publish(ctx, deps, events.Event{Type: events.EventSummaryDeleted, SummaryID: id})

		httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "summary deleted"})
	}
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func isPDF(filename, contentType string) bool {
	if contentType == "application/pdf" {
		return true
	}
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		return strings.EqualFold(filepath.Ext(filename), ".pdf")
	}
	return false
}

// capForStorage truncates extracted text to the storage limit. Independent
// of the prompt cap; what the model saw and what gets stored may differ.
func capForStorage(text string) string {
	runes := []rune(text)
	if len(runes) <= store.MaxStoredTextChars {
		return text
	}
	return string(runes[:store.MaxStoredTextChars])
}

func pageCountPtr(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}

func invalidateListing(ctx context.Context, deps app.Deps) {
	if err := deps.Cache.Invalidate(ctx); err != nil {
		deps.Log.Warn("listing cache invalidation failed", "err", err)
	}
}

func publish(ctx context.Context, deps app.Deps, event events.Event) {
	if err := deps.Events.Publish(ctx, event); err != nil {
		deps.Log.Warn("event publish failed", "type", event.Type, "err", err)
	}
}

func toItem(rec store.SummaryRecord) summaryItem {
	return summaryItem{
		ID:            rec.ID.String(),
		Filename:      rec.OriginalFilename,
		FileSize:      rec.FileSize,
		PageCount:     rec.PageCount,
		Summary:       rec.Summary,
		SummaryLength: rec.SummaryLength,
		CreatedAt:     rec.CreatedAt,
	}
}
