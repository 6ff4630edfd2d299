// Package qa holds the question/answer history for one document session.
package qa

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/thywilljoshua/docanalyzer/internal/api"
	"github.com/thywilljoshua/docanalyzer/internal/locale"
)

// AskFunc sends one question to the service.
type AskFunc func(ctx context.Context, req api.QARequest) (api.QAResponse, error)

// Entry is one answered question. Timestamp is the local time the answer arrived.
type Entry struct {
	Question  string    `json:"question" yaml:"question"`
	Answer    string    `json:"answer" yaml:"answer"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Widget is scoped to a single session id. History only grows; a new
// session gets a new Widget.
type Widget struct {
	sessionID string
	ask       AskFunc

	// OnInputCleared, when set, runs right after a submitted question is
	// taken out of the input and before the request is sent.
	OnInputCleared func()
	Now            func() time.Time
	Logger         *log.Logger
	T              locale.Func

	mu         sync.Mutex
	input      string
	submitting bool
	history    []Entry
}

func New(sessionID string, ask AskFunc) *Widget {
	return &Widget{sessionID: sessionID, ask: ask}
}

func (w *Widget) SessionID() string { return w.sessionID }

func (w *Widget) SetInput(s string) {
	w.mu.Lock()
	w.input = s
	w.mu.Unlock()
}

func (w *Widget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// Submitting reports whether a question is in flight. Input and submit are
// disabled while it is true.
func (w *Widget) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// CanSubmit reports whether Submit would dispatch a request.
func (w *Widget) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.submitting && strings.TrimSpace(w.input) != ""
}

// History returns the answered questions, oldest first.
func (w *Widget) History() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Entry, len(w.history))
	copy(out, w.history)
	return out
}

// Submit sends the current input as a question and reports whether a request
// was dispatched. Blank input or a question already in flight makes it a no-op. The input is cleared
// before the request goes out and is not restored if the request fails.
// Failures are logged and leave the history untouched.
func (w *Widget) Submit(ctx context.Context) bool {
	w.mu.Lock()
	if w.submitting || strings.TrimSpace(w.input) == "" {
		w.mu.Unlock()
		return false
	}
	question := w.input
	w.input = ""
	w.submitting = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
	}()

	if w.OnInputCleared != nil {
		w.OnInputCleared()
	}

	resp, err := w.ask(ctx, api.QARequest{SessionID: w.sessionID, Question: question})
	if err != nil {
		// TODO: report failed questions through a notify.Sink instead of only logging.
		w.logger().Printf("qa ask failed session_id=%s err=%q", w.sessionID, err.Error())
		return true
	}

	w.mu.Lock()
	w.history = append(w.history, Entry{Question: question, Answer: resp.Answer, Timestamp: w.now()})
	w.mu.Unlock()
	return true
}

// Ask sets the input to question and submits it.
func (w *Widget) Ask(ctx context.Context, question string) bool {
	w.SetInput(question)
	return w.Submit(ctx)
}

// Render writes the history, or the empty-state prompt, to out.
func (w *Widget) Render(out io.Writer) {
	t := w.T
	if t == nil {
		t = locale.Default
	}
	history := w.History()
	fmt.Fprintf(out, "== %s\n", t("qa.title", nil))
	for _, e := range history {
		fmt.Fprintf(out, "Q: %s\n", e.Question)
		fmt.Fprintf(out, "A: %s\n", e.Answer)
		fmt.Fprintf(out, "   %s\n", e.Timestamp.Format("15:04:05"))
	}
	if w.Submitting() {
		fmt.Fprintln(out, t("qa.thinking", nil))
	}
	if len(history) == 0 {
		fmt.Fprintln(out, t("qa.emptyState", nil))
	}
}

func (w *Widget) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w *Widget) logger() *log.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return log.Default()
}
