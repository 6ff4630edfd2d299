package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thywilljoshua/docanalyzer/internal/api"
	"github.com/thywilljoshua/docanalyzer/internal/config"
	"github.com/thywilljoshua/docanalyzer/internal/locale"
	"github.com/thywilljoshua/docanalyzer/internal/notify"
	"github.com/thywilljoshua/docanalyzer/internal/session"
)

// app carries resolved settings and the process-wide capabilities.
type app struct {
	configPath string
	apiURL     string
	exportDir  string
	format     string
	verbose    bool

	cfg    config.Config
	client *api.Client
	logger *log.Logger
}

func (a *app) bindFlags(root *cobra.Command) {
	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file (api_url, export_dir, format)")
	f.StringVar(&a.apiURL, "api-url", "", "analysis service base URL (default $DOCANALYZER_API_URL or http://localhost:8000)")
	f.StringVar(&a.exportDir, "export-dir", "", "directory exported reports are saved to")
	f.StringVarP(&a.format, "format", "f", "", "output format: text|json|yaml")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil && !(errors.Is(err, config.ErrInvalidFormat) && a.format != "") {
		return err
	}
	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}
	if a.exportDir != "" {
		cfg.ExportDir = a.exportDir
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	out := io.Discard
	if a.verbose {
		out = cmd.ErrOrStderr()
	}
	a.logger = log.New(out, "docanalyzer ", log.LstdFlags)
	a.client = api.NewClient(cfg.APIURL, nil).WithLogger(a.logger)
	return nil
}

func (a *app) orchestrator(stderr io.Writer) *session.Orchestrator {
	return session.New(session.Options{
		Backend: a.client,
		Notify:  notify.NewWriterSink(stderr),
		T:       locale.Default,
		Saver:   session.FileSaver{Dir: a.cfg.ExportDir},
		Logger:  a.logger,
	})
}

// encode writes v as JSON or YAML. It reports false for the text format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return true, err
		}
		_, err = w.Write(b)
		return true, err
	}
	return false, nil
}

// readAnalysis loads an analysis saved as JSON or YAML.
func readAnalysis(path string) (api.DocumentAnalysis, error) {
	var a api.DocumentAnalysis
	b, err := os.ReadFile(path)
	if err != nil {
		return a, err
	}
	// YAML is a superset of JSON.
	if err := yaml.Unmarshal(b, &a); err != nil {
		return a, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(a.SessionID) == "" {
		return a, fmt.Errorf("%s: missing session_id", path)
	}
	return a, nil
}

func writeAnalysis(path string, a api.DocumentAnalysis) error {
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := encode(f, format, a); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
