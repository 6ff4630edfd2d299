// Package session owns the live document analysis and wires the widgets
// that work on it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/thywilljoshua/docanalyzer/internal/analysis"
	"github.com/thywilljoshua/docanalyzer/internal/api"
	"github.com/thywilljoshua/docanalyzer/internal/locale"
	"github.com/thywilljoshua/docanalyzer/internal/notify"
	"github.com/thywilljoshua/docanalyzer/internal/qa"
	"github.com/thywilljoshua/docanalyzer/internal/translate"
	"github.com/thywilljoshua/docanalyzer/internal/upload"
)

// ErrNoAnalysis is returned by operations that need a live analysis.
var ErrNoAnalysis = errors.New("no document analysed yet")

// Backend is the remote document-analysis service.
type Backend interface {
	ProcessDocument(ctx context.Context, doc api.Document) (api.DocumentAnalysis, error)
	AskQuestion(ctx context.Context, req api.QARequest) (api.QAResponse, error)
	Translate(ctx context.Context, req api.TranslateRequest) (api.TranslateResponse, error)
	Export(ctx context.Context, a api.DocumentAnalysis) ([]byte, error)
}

var _ Backend = (*api.Client)(nil)

// Options are the capabilities an Orchestrator is built with.
type Options struct {
	Backend Backend
	Notify  notify.Sink
	T       locale.Func
	Saver   Saver
	Logger  *log.Logger
}

// Orchestrator holds at most one analysis. Only the orchestrator replaces it,
// and only when an upload completes.
type Orchestrator struct {
	backend Backend
	sink    notify.Sink
	t       locale.Func
	saver   Saver
	logger  *log.Logger

	mu         sync.Mutex
	analysis   *api.DocumentAnalysis
	processing bool
	exporting  bool
	tab        Tab
	qa         *qa.Widget
	translate  *translate.Widget
	lastExport string
}

func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		backend: opts.Backend,
		sink:    opts.Notify,
		t:       opts.T,
		saver:   opts.Saver,
		logger:  opts.Logger,
		tab:     TabUpload,
	}
	if o.sink == nil {
		o.sink = notify.SinkFunc(func(notify.Notification) {})
	}
	if o.t == nil {
		o.t = locale.Default
	}
	if o.saver == nil {
		o.saver = FileSaver{}
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return o
}

// Analysis returns a copy of the live analysis, if any.
func (o *Orchestrator) Analysis() (api.DocumentAnalysis, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.analysis == nil {
		return api.DocumentAnalysis{}, false
	}
	a := *o.analysis
	a.Risks = append([]api.Risk(nil), o.analysis.Risks...)
	return a, true
}

func (o *Orchestrator) Processing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.processing
}

func (o *Orchestrator) Exporting() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.exporting
}

// LastExport is the path of the most recently saved report.
func (o *Orchestrator) LastExport() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastExport
}

// SubmitDocument uploads doc and, on success, replaces the live analysis
// and the per-document widgets. Either outcome is reported through the
// notification sink; the returned error is for callers that need a status.
// Overlapping calls are not prevented here.
func (o *Orchestrator) SubmitDocument(ctx context.Context, doc api.Document) error {
	o.mu.Lock()
	o.processing = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.processing = false
		o.mu.Unlock()
	}()

	result, err := o.backend.ProcessDocument(ctx, doc)
	if err != nil {
		o.logger.Printf("session process-document failed file=%q err=%q", doc.Name, err.Error())
		o.sink.Notify(notify.Notification{
			Title:       o.t("toast.processFailed", nil),
			Description: o.t("toast.processFailedDesc", nil),
			Variant:     notify.Destructive,
		})
		return err
	}

	qaWidget := qa.New(result.SessionID, o.backend.AskQuestion)
	qaWidget.Logger = o.logger
	qaWidget.T = o.t
	trWidget := translate.New(result.SimplifiedText, o.backend.Translate)
	trWidget.Logger = o.logger
	trWidget.T = o.t

	o.mu.Lock()
	o.analysis = &result
	o.qa = qaWidget
	o.translate = trWidget
	o.tab = TabAnalysis
	o.mu.Unlock()

	o.logger.Printf("session analysis loaded session_id=%s score=%d risks=%d",
		result.SessionID, result.DocumentHealthScore, len(result.Risks))
	o.sink.Notify(notify.Notification{
		Title:       o.t("toast.processSuccess", nil),
		Description: o.t("toast.processSuccessDesc", map[string]any{"score": result.DocumentHealthScore}),
	})
	return nil
}

// RequestExport renders the live analysis as a PDF on the service and saves
// it as document-analysis-<session_id>.pdf. Without an analysis it does nothing.
func (o *Orchestrator) RequestExport(ctx context.Context) error {
	current, ok := o.Analysis()
	if !ok {
		return nil
	}
	o.mu.Lock()
	o.exporting = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.exporting = false
		o.mu.Unlock()
	}()

	path, err := o.export(ctx, current)
	if err != nil {
		o.logger.Printf("session export failed session_id=%s err=%q", current.SessionID, err.Error())
		o.sink.Notify(notify.Notification{
			Title:       o.t("toast.exportFailed", nil),
			Description: o.t("toast.exportFailedDesc", nil),
			Variant:     notify.Destructive,
		})
		return err
	}

	o.mu.Lock()
	o.lastExport = path
	o.mu.Unlock()
	o.sink.Notify(notify.Notification{
		Title:       o.t("toast.exportSuccess", nil),
		Description: o.t("toast.exportSuccessDesc", map[string]any{"path": path}),
	})
	return nil
}

func (o *Orchestrator) export(ctx context.Context, a api.DocumentAnalysis) (string, error) {
	payload, err := o.backend.Export(ctx, a)
	if err != nil {
		return "", err
	}
	return o.saver.Save(ExportFilename(a.SessionID), payload)
}

// Tabs lists the reachable views: only upload until a document is analysed.
func (o *Orchestrator) Tabs() []Tab {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.analysis == nil {
		return append([]Tab(nil), uploadOnly...)
	}
	return append([]Tab(nil), allTabs...)
}

func (o *Orchestrator) Tab() Tab {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tab
}

// Select switches the current view. Per-document tabs are refused while no
// analysis is live.
func (o *Orchestrator) Select(tab Tab) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.analysis == nil && tab != TabUpload {
		return fmt.Errorf("%w: %s", ErrTabUnavailable, tab)
	}
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	o.tab = tab
	return nil
}

// QA returns the question widget for the live session.
func (o *Orchestrator) QA() (*qa.Widget, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.qa == nil {
		return nil, ErrNoAnalysis
	}
	return o.qa, nil
}

// Translation returns the translation widget for the live session.
func (o *Orchestrator) Translation() (*translate.Widget, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.translate == nil {
		return nil, ErrNoAnalysis
	}
	return o.translate, nil
}

// Upload returns an upload widget that submits through this orchestrator
// and is disabled while an upload is in flight.
func (o *Orchestrator) Upload(ctx context.Context) *upload.Widget {
	return &upload.Widget{
		OnUpload: func(doc api.Document) { _ = o.SubmitDocument(ctx, doc) },
		Busy:     o.Processing,
		Logger:   o.logger,
	}
}

// Display returns the analysis view with its export action bound to ctx.
func (o *Orchestrator) Display(ctx context.Context) analysis.Display {
	return analysis.Display{
		T:         o.t,
		OnExport:  func() { _ = o.RequestExport(ctx) },
		Exporting: o.Exporting,
	}
}

// Render writes the current tab to w.
func (o *Orchestrator) Render(ctx context.Context, w io.Writer) {
	tabs := o.Tabs()
	current := o.Tab()
	for i, tab := range tabs {
		if i > 0 {
			fmt.Fprint(w, " | ")
		}
		name := o.t(tab.MessageKey(), nil)
		if tab == current {
			name = "[" + name + "]"
		}
		fmt.Fprint(w, name)
	}
	fmt.Fprintln(w)

	switch current {
	case TabAnalysis:
		if a, ok := o.Analysis(); ok {
			o.Display(ctx).Render(w, a)
		}
	case TabQA:
		if q, err := o.QA(); err == nil {
			q.Render(w)
		}
	case TabTranslate:
		if tr, err := o.Translation(); err == nil {
			tr.Render(w)
		}
	case TabUpload:
		o.renderUpload(w)
	}
}

func (o *Orchestrator) renderUpload(w io.Writer) {
	if o.Processing() {
		fmt.Fprintf(w, "== %s\n%s\n", o.t("upload.processing", nil), o.t("upload.analyzing", nil))
		return
	}
	fmt.Fprintf(w, "== %s\n%s\n", o.t("upload.title", nil), o.t("upload.dragDrop", nil))
}
