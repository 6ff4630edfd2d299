package translate

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// DetectFunc names the language of text, or reports false when unsure.
type DetectFunc func(text string) (string, bool)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectLanguage guesses the language of text among English and the
// supported targets. The detector is built on first use.
func DetectLanguage(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	detectorOnce.Do(func() {
		langs := []lingua.Language{lingua.English}
		for _, l := range Languages {
			langs = append(langs, l.lingua)
		}
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			WithMinimumRelativeDistance(0.1).
			WithLowAccuracyMode().
			Build()
	})
	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}
