package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Saver stores an exported report under name and returns where it went.
type Saver interface {
	Save(name string, payload []byte) (string, error)
}

// ExportFilename is the file name used for a session's exported report.
func ExportFilename(sessionID string) string {
	safe := strings.NewReplacer("/", "-", `\`, "-").Replace(sessionID)
	return fmt.Sprintf("document-analysis-%s.pdf", safe)
}

// FileSaver writes reports into Dir (the working directory when empty).
type FileSaver struct {
	Dir string
}

// Save writes the payload to a temporary file next to the target and renames
// it into place. The temporary file is always closed and removed, including
// when writing or renaming fails.
func (s FileSaver) Save(name string, payload []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(dir, ".docanalyzer-*.part")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(payload); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	dest := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return dest, nil
}
