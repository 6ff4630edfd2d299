package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DOCANALYZER_API_URL", "VITE_API_URL", "DOCANALYZER_EXPORT_DIR", "DOCANALYZER_FORMAT"} {
		t.Setenv(k, "")
	}
	chdirTemp(t)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:8000" || cfg.ExportDir != "." || cfg.Format != "text" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "docanalyzer.yaml")
	content := "api_url: http://file:9000\nexport_dir: reports\nformat: yaml\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://file:9000" || cfg.ExportDir != "reports" || cfg.Format != "yaml" {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	t.Setenv("VITE_API_URL", "http://vite:7000")
	cfg, _ = Load(path)
	if cfg.APIURL != "http://vite:7000" {
		t.Fatalf("VITE_API_URL should override the file, got %q", cfg.APIURL)
	}
	t.Setenv("DOCANALYZER_API_URL", "http://env:8080")
	cfg, _ = Load(path)
	if cfg.APIURL != "http://env:8080" {
		t.Fatalf("DOCANALYZER_API_URL should win, got %q", cfg.APIURL)
	}
}

func TestMissingExplicitFileFails(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestInvalidFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCANALYZER_FORMAT", "xml")
	if _, err := Load(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestDotEnvDoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	if err := os.WriteFile(".env", []byte("# local\nDOCANALYZER_EXPORT_DIR=\"from-dotenv\"\nDOCANALYZER_API_URL=http://dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCANALYZER_API_URL", "http://shell")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://shell" {
		t.Fatalf("shell env should win over .env, got %q", cfg.APIURL)
	}
	if cfg.ExportDir != "from-dotenv" {
		t.Fatalf("expected export dir from .env, got %q", cfg.ExportDir)
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
