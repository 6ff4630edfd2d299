package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func onePagePDF() []byte {
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

type fakeService struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeService) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		f.mu.Unlock()

		switch r.URL.Path {
		case "/process-document":
			_, _ = w.Write([]byte(`{"session_id":"s1","original_text":"The tenant pays.","simplified_text":"You pay rent.","risks":[{"risk_level":"Medium","description":"Late fee"}],"document_health_score":92}`))
		case "/qa":
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["session_id"] != "s1" {
				t.Errorf("qa sent session %q", req["session_id"])
			}
			_, _ = w.Write([]byte(`{"answer":"A 5% fee applies."}`))
		case "/translate":
			_, _ = w.Write([]byte(`{"translated_text":"Texto traducido"}`))
		case "/export":
			_, _ = w.Write([]byte("%PDF-report"))
		default:
			http.NotFound(w, r)
		}
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func setup(t *testing.T) (*fakeService, string, string) {
	t.Helper()
	chdirTemp(t)
	t.Setenv("DOCANALYZER_API_URL", "")
	t.Setenv("VITE_API_URL", "")
	t.Setenv("DOCANALYZER_FORMAT", "")
	svc := &fakeService{}
	server := httptest.NewServer(svc.handler(t))
	t.Cleanup(server.Close)

	pdf := filepath.Join(t.TempDir(), "lease.pdf")
	if err := os.WriteFile(pdf, onePagePDF(), 0o644); err != nil {
		t.Fatal(err)
	}
	return svc, server.URL, pdf
}

func TestShellSession(t *testing.T) {
	_, url, pdf := setup(t)
	exportDir := t.TempDir()

	script := strings.Join([]string{
		"ask What is the penalty clause?",
		"lang es",
		"translate",
		"tab analysis",
		"export",
		"quit",
	}, "\n")
	out, err := runCLI(t, script, "--api-url", url, "--export-dir", exportDir, "shell", pdf)
	if err != nil {
		t.Fatalf("shell: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Health score: 92/100",
		"Q: What is the penalty clause?\nA: A 5% fee applies.",
		"Translated Text (Spanish):\nTexto traducido",
		"[Medium:warning] Late fee",
		"Export successful",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	b, err := os.ReadFile(filepath.Join(exportDir, "document-analysis-s1.pdf"))
	if err != nil || string(b) != "%PDF-report" {
		t.Fatalf("report not saved: %v %q", err, b)
	}
}

func TestShellRefusesDocumentTabsBeforeUpload(t *testing.T) {
	svc, url, _ := setup(t)
	out, err := runCLI(t, "ask hello\ntab qa\nquit\n", "--api-url", url, "shell")
	if err != nil {
		t.Fatalf("shell: %v", err)
	}
	if !strings.Contains(out, "no document analysed yet") || !strings.Contains(out, "tab not available") {
		t.Fatalf("expected refusals:\n%s", out)
	}
	if len(svc.paths) != 0 {
		t.Fatalf("service called before upload: %v", svc.paths)
	}
}

func TestAnalyzeSaveThenAskAndExport(t *testing.T) {
	_, url, pdf := setup(t)
	saved := filepath.Join(t.TempDir(), "analysis.yaml")

	out, err := runCLI(t, "", "--api-url", url, "analyze", pdf, "--save", saved)
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	if !strings.Contains(out, "92/100  Excellent (success)") {
		t.Fatalf("unexpected analyze output:\n%s", out)
	}

	out, err = runCLI(t, "", "--api-url", url, "--format", "json", "ask", "--from", saved, "What is the penalty clause?")
	if err != nil {
		t.Fatalf("ask: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"answer": "A 5% fee applies."`) {
		t.Fatalf("unexpected ask output:\n%s", out)
	}

	dir := t.TempDir()
	out, err = runCLI(t, "", "--api-url", url, "--export-dir", dir, "export", "--from", saved)
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	if strings.TrimSpace(out) != filepath.Join(dir, "document-analysis-s1.pdf") {
		t.Fatalf("unexpected export output %q", out)
	}
}

func TestAnalyzeRejectsNonPDF(t *testing.T) {
	svc, url, _ := setup(t)
	txt := filepath.Join(t.TempDir(), "notes.txt")
	_ = os.WriteFile(txt, []byte("hello"), 0o644)

	if _, err := runCLI(t, "", "--api-url", url, "analyze", txt); err == nil {
		t.Fatalf("expected non-PDF to be rejected")
	}
	if len(svc.paths) != 0 {
		t.Fatalf("service called for a rejected file: %v", svc.paths)
	}
}

func TestTranslateNeedsSupportedLanguage(t *testing.T) {
	_, url, _ := setup(t)
	if _, err := runCLI(t, "", "--api-url", url, "translate", "--to", "xx", "--text", "hi"); err == nil {
		t.Fatalf("expected unsupported language error")
	}
	out, err := runCLI(t, "", "--api-url", url, "translate", "--to", "es", "--text", "hello")
	if err != nil || strings.TrimSpace(out) != "Texto traducido" {
		t.Fatalf("translate: %v %q", err, out)
	}
}

// chdirTemp changes into a fresh temp dir for the test and restores the
// previous working directory on cleanup (equivalent to Go 1.24's t.Chdir).
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
