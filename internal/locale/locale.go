// Package locale provides message lookup for user-facing strings.
package locale

import (
	"fmt"
	"strings"
)

// Func resolves a message key, substituting {{name}} placeholders from vars.
// Unknown keys resolve to the key itself.
type Func func(key string, vars map[string]any) string

// Table is a flat key -> message map.
type Table map[string]string

// Lookup returns a Func backed by t, falling back to fallback for missing keys.
func (t Table) Lookup(fallback Table) Func {
	return func(key string, vars map[string]any) string {
		msg, ok := t[key]
		if !ok {
			msg, ok = fallback[key]
		}
		if !ok {
			return key
		}
		return interpolate(msg, vars)
	}
}

func interpolate(msg string, vars map[string]any) string {
	if len(vars) == 0 || !strings.Contains(msg, "{{") {
		return msg
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// English is the default message table.
var English = Table{
	"toast.processSuccess":     "Document processed successfully!",
	"toast.processSuccessDesc": "Health score: {{score}}/100",
	"toast.processFailed":      "Processing failed",
	"toast.processFailedDesc":  "There was an error processing your document. Please try again.",
	"toast.exportSuccess":      "Export successful",
	"toast.exportSuccessDesc":  "Your analysis report was saved to {{path}}",
	"toast.exportFailed":       "Export failed",
	"toast.exportFailedDesc":   "There was an error exporting your analysis. Please try again.",

	"tabs.analysis":  "Analysis",
	"tabs.qa":        "Q&A",
	"tabs.translate": "Translate",
	"tabs.newDoc":    "New Document",

	"upload.title":      "Upload your document",
	"upload.dragDrop":   "Drop a PDF here, or choose a file",
	"upload.processing": "Processing document...",
	"upload.analyzing":  "Analyzing your document, this may take a moment",
	"upload.rejected":   "Only a single PDF document can be uploaded",

	"analysis.healthScore":       "Document Health Score",
	"analysis.excellent":         "Excellent",
	"analysis.good":              "Good",
	"analysis.needsAttention":    "Needs Attention",
	"analysis.riskAssessment":    "Risk Assessment",
	"analysis.noRisks":           "No significant risks identified",
	"analysis.originalText":      "Original Text",
	"analysis.simplifiedSummary": "Simplified Summary",
	"analysis.exportPdf":         "Export PDF",
	"analysis.exporting":         "Exporting...",

	"qa.title":       "Ask Questions",
	"qa.placeholder": "Ask a question about your document...",
	"qa.emptyState":  "Ask any question about your document to get started",
	"qa.thinking":    "Thinking...",

	"translation.title":          "Translate",
	"translation.sourceText":     "Source Text",
	"translation.sourceLanguage": "Source language: {{language}}",
	"translation.selectLanguage": "Select a language",
	"translation.translate":      "Translate",
	"translation.translating":    "Translating...",
	"translation.translatedText": "Translated Text ({{language}})",
	"translation.emptyState":     "Select a language and click translate to see the result",

	"languages.spanish":    "Spanish",
	"languages.french":     "French",
	"languages.german":     "German",
	"languages.italian":    "Italian",
	"languages.portuguese": "Portuguese",
	"languages.russian":    "Russian",
	"languages.japanese":   "Japanese",
	"languages.korean":     "Korean",
	"languages.chinese":    "Chinese",
	"languages.arabic":     "Arabic",
	"languages.hindi":      "Hindi",
	"languages.dutch":      "Dutch",
	"languages.swedish":    "Swedish",
	"languages.norwegian":  "Norwegian",
	"languages.danish":     "Danish",
}

// Default looks messages up in English.
var Default Func = English.Lookup(nil)
