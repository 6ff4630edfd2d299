package locale

import "testing"

func TestLookupInterpolates(t *testing.T) {
	got := Default("toast.processSuccessDesc", map[string]any{"score": 92})
	if got != "Health score: 92/100" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestLookupFallsBack(t *testing.T) {
	es := Table{"tabs.qa": "Preguntas"}
	lookup := es.Lookup(English)
	if got := lookup("tabs.qa", nil); got != "Preguntas" {
		t.Fatalf("expected override, got %q", got)
	}
	if got := lookup("tabs.translate", nil); got != "Translate" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := lookup("no.such.key", nil); got != "no.such.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}
