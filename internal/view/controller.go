package view

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pdf-summarizer/internal/api"
)

// Phase is the exclusive view state. Exactly one phase is active at a
// time; the modal is a separate overlay, not a phase.
type Phase int

const (
	PhaseUpload Phase = iota
	PhaseProcessing
	PhaseResult
	PhaseHistory
)

func (p Phase) String() string {
	switch p {
	case PhaseUpload:
		return "upload"
	case PhaseProcessing:
		return "processing"
	case PhaseResult:
		return "result"
	case PhaseHistory:
		return "history"
	default:
		return "unknown"
	}
}

// ProcessingStages are the cosmetic stage labels shown while a request is
// in flight. They animate perceived progress only; the protocol is a
// single blocking request with no server-side progress signals.
var ProcessingStages = []string{"extracting", "analyzing", "generating"}

// Cosmetic marker schedule and the pause before showing the result.
const (
	firstMarkerDelay  = 1200 * time.Millisecond
	secondMarkerDelay = 3000 * time.Millisecond
	resultDelay       = 400 * time.Millisecond
)

// MaxFileSize mirrors the server-side upload limit for pre-submit checks.
const MaxFileSize = 20 * 1024 * 1024

var (
	ErrNoFile     = errors.New("no file selected")
	ErrBusy       = errors.New("a request is already in flight")
	ErrNotPDF     = errors.New("only PDF files are supported")
	ErrFileTooBig = errors.New("file exceeds the 20MB limit")
)

// Backend is the slice of the API client the controller drives.
type Backend interface {
	Summarize(ctx context.Context, filename string, content []byte, length string) (api.SummarizeResponse, error)
	ListSummaries(ctx context.Context) ([]api.SummaryItem, error)
	DeleteSummary(ctx context.Context, id string) error
}

// SelectedFile is the attached upload candidate.
type SelectedFile struct {
	Name    string
	Size    int64
	Content []byte
}

// Snapshot is an immutable view of the controller for rendering.
type Snapshot struct {
	Phase      Phase
	StageLabel string
	File       *SelectedFile
	Length     string
	Result     *api.SummarizeResponse
	History    []api.SummaryItem
	Modal      *api.SummaryItem
	Err        string
}

// Controller owns the client view state: the active phase with its
// payload, the selected file and length mode, the last result, the local
// history cache, and the modal overlay target.
type Controller struct {
	backend Backend

	mu          sync.Mutex
	phase       Phase
	stage       int
	file        *SelectedFile
	length      string
	result      *api.SummarizeResponse
	history     []api.SummaryItem
	modal       *api.SummaryItem
	lastError   string
	stopMarkers []func()

	schedule func(time.Duration, func()) func()
	sleep    func(time.Duration)
	spawn    func(func())
}

// Option customizes a Controller, mainly for tests.
type Option func(*Controller)

// WithScheduler replaces the timer used for cosmetic progress markers.
// The returned func cancels the pending call.
func WithScheduler(schedule func(time.Duration, func()) func()) Option {
	return func(c *Controller) { c.schedule = schedule }
}

// WithSleep replaces the pause before entering the result phase.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Controller) { c.sleep = sleep }
}

// WithSpawn replaces how background work is started.
func WithSpawn(spawn func(func())) Option {
	return func(c *Controller) { c.spawn = spawn }
}

func NewController(backend Backend, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		phase:   PhaseUpload,
		length:  "medium",
		schedule: func(d time.Duration, f func()) func() {
			t := time.AfterFunc(d, f)
			return func() { t.Stop() }
		},
		sleep: time.Sleep,
		spawn: func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectFile attaches a file without leaving the upload phase. The checks
// mirror the server's hard limits so most rejections happen pre-submit.
func (c *Controller) SelectFile(name string, content []byte) error {
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return ErrNotPDF
	}
	if int64(len(content)) > MaxFileSize {
		return ErrFileTooBig
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseProcessing {
		return ErrBusy
	}
	c.phase = PhaseUpload
	c.file = &SelectedFile{Name: name, Size: int64(len(content)), Content: content}
	c.lastError = ""
	return nil
}

// SetLength picks the summary length mode; unknown values become medium.
func (c *Controller) SetLength(length string) {
	switch length {
	case "short", "medium", "long":
	default:
		length = "medium"
	}
	c.mu.Lock()
	c.length = length
	c.mu.Unlock()
}

// Submit sends the attached file for summarization. It blocks until the
// request finishes; the cosmetic markers fire on their own timers while
// it does. Only one request can be in flight.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseProcessing {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.phase != PhaseUpload || c.file == nil {
		c.mu.Unlock()
		return ErrNoFile
	}
	file := *c.file
	length := c.length
	c.phase = PhaseProcessing
	c.stage = 0
	c.lastError = ""
	c.stopMarkers = []func(){
		c.schedule(firstMarkerDelay, func() { c.advanceStage(1) }),
		c.schedule(secondMarkerDelay, func() { c.advanceStage(2) }),
	}
	c.mu.Unlock()

	resp, err := c.backend.Summarize(ctx, file.Name, file.Content, length)
	if err != nil {
		c.mu.Lock()
		c.cancelMarkersLocked()
		c.phase = PhaseUpload
		c.lastError = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.cancelMarkersLocked()
	c.stage = len(ProcessingStages) - 1
	c.mu.Unlock()

	c.sleep(resultDelay)

	c.mu.Lock()
	c.phase = PhaseResult
	c.result = &resp
	c.file = nil
	c.mu.Unlock()

	c.spawn(func() {
		_ = c.RefreshHistory(context.Background())
	})
	return nil
}

// advanceStage bumps the cosmetic stage while still processing. Markers
// never move the stage backwards.
func (c *Controller) advanceStage(stage int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseProcessing && stage > c.stage && stage < len(ProcessingStages) {
		c.stage = stage
	}
}

func (c *Controller) cancelMarkersLocked() {
	for _, stop := range c.stopMarkers {
		stop()
	}
	c.stopMarkers = nil
}

// RefreshHistory replaces the local history cache from the server.
func (c *Controller) RefreshHistory(ctx context.Context) error {
	items, err := c.backend.ListSummaries(ctx)
	if err != nil {
		c.mu.Lock()
		c.lastError = err.Error()
		c.mu.Unlock()
		return err
	}
	c.mu.Lock()
	c.history = items
	c.mu.Unlock()
	return nil
}

// ShowHistory navigates to the history branch. Reachable from any phase;
// an in-flight request keeps running server-side regardless.
func (c *Controller) ShowHistory() {
	c.mu.Lock()
	c.phase = PhaseHistory
	c.mu.Unlock()
}

// ShowUpload returns to the upload phase.
func (c *Controller) ShowUpload() {
	c.mu.Lock()
	c.phase = PhaseUpload
	c.mu.Unlock()
}

// OpenModal overlays a history record on the current view. The underlying
// phase is unchanged.
func (c *Controller) OpenModal(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.history {
		if c.history[i].ID == id {
			item := c.history[i]
			c.modal = &item
			return true
		}
	}
	return false
}

// CloseModal dismisses the overlay, returning to the prior view unchanged.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	c.modal = nil
	c.mu.Unlock()
}

// Delete removes a record server-side, prunes the local history cache,
// and closes the modal if it shows the deleted id.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.backend.DeleteSummary(ctx, id); err != nil {
		c.mu.Lock()
		c.lastError = err.Error()
		c.mu.Unlock()
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.history[:0]
	for _, item := range c.history {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.history = kept
	if c.modal != nil && c.modal.ID == id {
		c.modal = nil
	}
	return nil
}

// ClearError dismisses the surfaced error message.
func (c *Controller) ClearError() {
	c.mu.Lock()
	c.lastError = ""
	c.mu.Unlock()
}

// Snapshot returns a copy of the current view state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Phase:   c.phase,
		Length:  c.length,
		History: append([]api.SummaryItem(nil), c.history...),
		Err:     c.lastError,
	}
	if c.phase == PhaseProcessing {
		snap.StageLabel = ProcessingStages[c.stage]
	}
	if c.file != nil {
		f := *c.file
		snap.File = &f
	}
	if c.result != nil {
		r := *c.result
		snap.Result = &r
	}
	if c.modal != nil {
		m := *c.modal
		snap.Modal = &m
	}
	return snap
}
