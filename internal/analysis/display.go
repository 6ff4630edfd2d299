// Package analysis renders a fetched DocumentAnalysis.
package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/thywilljoshua/docanalyzer/internal/api"
	"github.com/thywilljoshua/docanalyzer/internal/locale"
)

const barWidth = 20

// Summary holds everything derived from an analysis for display.
type Summary struct {
	Score      int
	Label      HealthLabel
	Categories []RiskCategory
}

// Summarize derives the label and one category per risk, in server order.
func Summarize(a api.DocumentAnalysis) Summary {
	s := Summary{Score: a.DocumentHealthScore, Label: HealthLabelFor(a.DocumentHealthScore)}
	s.Categories = make([]RiskCategory, len(a.Risks))
	for i, r := range a.Risks {
		s.Categories[i] = Classify(r.RiskLevel)
	}
	return s
}

// Display shows one analysis and offers the export action.
type Display struct {
	T         locale.Func
	OnExport  func()
	Exporting func() bool
}

func (d Display) t(key string, vars map[string]any) string {
	if d.T == nil {
		return locale.Default(key, vars)
	}
	return d.T(key, vars)
}

// CanExport reports whether the export action is enabled.
func (d Display) CanExport() bool {
	if d.OnExport == nil {
		return false
	}
	return d.Exporting == nil || !d.Exporting()
}

// Export triggers the export callback unless an export is already running.
func (d Display) Export() bool {
	if !d.CanExport() {
		return false
	}
	d.OnExport()
	return true
}

// Render writes the analysis view to w.
func (d Display) Render(w io.Writer, a api.DocumentAnalysis) {
	s := Summarize(a)

	exportLabel := d.t("analysis.exportPdf", nil)
	if d.Exporting != nil && d.Exporting() {
		exportLabel = d.t("analysis.exporting", nil)
	}
	fmt.Fprintf(w, "== %s  [%s]\n", d.t("analysis.healthScore", nil), exportLabel)
	fmt.Fprintf(w, "%d/100  %s (%s)\n", s.Score, d.t(s.Label.MessageKey(), nil), s.Label.Tag())
	fmt.Fprintln(w, progressBar(s.Score))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "== %s\n", d.t("analysis.riskAssessment", nil))
	if len(a.Risks) == 0 {
		fmt.Fprintln(w, d.t("analysis.noRisks", nil))
	}
	for i, r := range a.Risks {
		fmt.Fprintf(w, "[%s:%s] %s\n", r.RiskLevel, s.Categories[i].Tag(), r.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "== %s\n%s\n\n", d.t("analysis.originalText", nil), strings.TrimSpace(a.OriginalText))
	fmt.Fprintf(w, "== %s\n%s\n", d.t("analysis.simplifiedSummary", nil), strings.TrimSpace(a.SimplifiedText))
}

func progressBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
