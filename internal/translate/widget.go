// Package translate holds the translation panel for the current document.
package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/thywilljoshua/docanalyzer/internal/api"
	"github.com/thywilljoshua/docanalyzer/internal/locale"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// TranslateFunc sends one translation request to the service.
type TranslateFunc func(ctx context.Context, req api.TranslateRequest) (api.TranslateResponse, error)

// State is a snapshot of the widget. Only the last result is kept.
type State struct {
	SourceText       string
	SelectedLanguage string
	TranslatedText   string
	Loading          bool
}

type Widget struct {
	translate TranslateFunc

	Detect DetectFunc
	Logger *log.Logger
	T      locale.Func

	mu         sync.Mutex
	sourceText string
	language   string
	translated string
	loading    bool
}

// New seeds the source text; it can be edited independently afterwards.
func New(sourceText string, fn TranslateFunc) *Widget {
	return &Widget{translate: fn, sourceText: sourceText, Detect: DetectLanguage}
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		SourceText:       w.sourceText,
		SelectedLanguage: w.language,
		TranslatedText:   w.translated,
		Loading:          w.loading,
	}
}

func (w *Widget) SetSourceText(s string) {
	w.mu.Lock()
	w.sourceText = s
	w.mu.Unlock()
}

// Select picks the target language. It does not start a translation.
func (w *Widget) Select(code string) error {
	if _, ok := LookupLanguage(code); !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	w.mu.Lock()
	w.language = code
	w.mu.Unlock()
	return nil
}

// CanTranslate reports whether the translate action is enabled: a language
// is selected, the source text is not blank and nothing is in flight.
func (w *Widget) CanTranslate() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canTranslateLocked()
}

func (w *Widget) canTranslateLocked() bool {
	return w.language != "" && strings.TrimSpace(w.sourceText) != "" && !w.loading
}

// Translate sends the source text and reports whether a request was
// dispatched. On success the previous result is replaced; on failure it is
// kept and the error is only logged.
func (w *Widget) Translate(ctx context.Context) bool {
	w.mu.Lock()
	if !w.canTranslateLocked() {
		w.mu.Unlock()
		return false
	}
	req := api.TranslateRequest{Text: w.sourceText, TargetLanguage: w.language}
	w.loading = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.loading = false
		w.mu.Unlock()
	}()

	resp, err := w.translate(ctx, req)
	if err != nil {
		w.logger().Printf("translate failed target_language=%s err=%q", req.TargetLanguage, err.Error())
		return true
	}
	w.mu.Lock()
	w.translated = resp.TranslatedText
	w.mu.Unlock()
	return true
}

// Render writes the panel: source text, detected language, and either the
// last result, a loading line or the empty-state prompt.
func (w *Widget) Render(out io.Writer) {
	t := w.T
	if t == nil {
		t = locale.Default
	}
	st := w.State()

	fmt.Fprintf(out, "== %s\n", t("translation.title", nil))
	fmt.Fprintf(out, "%s:\n%s\n", t("translation.sourceText", nil), st.SourceText)
	if w.Detect != nil {
		if name, ok := w.Detect(st.SourceText); ok {
			fmt.Fprintln(out, t("translation.sourceLanguage", map[string]any{"language": name}))
		}
	}
	if st.SelectedLanguage == "" {
		fmt.Fprintf(out, "-> %s\n", t("translation.selectLanguage", nil))
	}

	switch {
	case st.TranslatedText != "":
		name := st.SelectedLanguage
		if l, ok := LookupLanguage(st.SelectedLanguage); ok {
			name = l.Name(t)
		}
		fmt.Fprintf(out, "%s:\n%s\n", t("translation.translatedText", map[string]any{"language": name}), st.TranslatedText)
		if st.Loading {
			fmt.Fprintln(out, t("translation.translating", nil))
		}
	case st.Loading:
		fmt.Fprintln(out, t("translation.translating", nil))
	default:
		fmt.Fprintln(out, t("translation.emptyState", nil))
	}
}

func (w *Widget) logger() *log.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return log.Default()
}
