package upload

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thywilljoshua/docanalyzer/internal/api"

	rpdf "rsc.io/pdf"
)

var ErrNotPDF = errors.New("not a PDF document")

// Load reads path and returns it as an uploadable document. Only readable
// PDF files with a .pdf extension are accepted.
func Load(path string) (api.Document, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return api.Document{}, fmt.Errorf("%s: %w", path, ErrNotPDF)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return api.Document{}, err
	}
	n, err := pageCount(b)
	if err != nil {
		return api.Document{}, fmt.Errorf("%s: %w: %v", path, ErrNotPDF, err)
	}
	return api.Document{Name: filepath.Base(path), Data: b, Pages: n}, nil
}

// pageCount opens the bytes as a PDF and returns its page count.
func pageCount(b []byte) (n int, err error) {
	// rsc.io/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	doc, err := rpdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, err
	}
	return doc.NumPage(), nil
}
