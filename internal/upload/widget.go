// Package upload accepts a single PDF from a drop or a file pick.
package upload

import (
	"log"

	"github.com/thywilljoshua/docanalyzer/internal/api"
)

// Widget forwards one chosen PDF to OnUpload. It has no state of its own.
type Widget struct {
	OnUpload func(api.Document)
	// Busy reports an upload in flight; while true nothing is accepted.
	Busy   func() bool
	Logger *log.Logger
}

// Disabled reports whether drops and picks are currently refused.
func (w *Widget) Disabled() bool {
	return w.Busy != nil && w.Busy()
}

// Drop handles a drop of one or more files. Only the first file is
// considered, the rest are ignored. It reports whether OnUpload was called.
func (w *Widget) Drop(paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	return w.Pick(paths[0])
}

// Pick handles a file chosen from a picker.
func (w *Widget) Pick(path string) bool {
	if w.Disabled() || w.OnUpload == nil {
		return false
	}
	doc, err := Load(path)
	if err != nil {
		w.logger().Printf("upload rejected path=%q err=%q", path, err.Error())
		return false
	}
	w.OnUpload(doc)
	return true
}

func (w *Widget) logger() *log.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return log.Default()
}
