// Package notify carries user-visible notifications out of the session.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Variant int

const (
	Default Variant = iota
	Destructive
)

func (v Variant) String() string {
	switch v {
	case Default:
		return "default"
	case Destructive:
		return "destructive"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Sink receives notifications. Implementations must not block for long.
type Sink interface {
	Notify(Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// WriterSink prints each notification as one or two lines.
type WriterSink struct {
	mu sync.Mutex
	W  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{W: w} }

func (s *WriterSink) Notify(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	marker := "✓"
	if n.Variant == Destructive {
		marker = "✗"
	}
	fmt.Fprintf(s.W, "%s %s\n", marker, n.Title)
	if n.Description != "" {
		fmt.Fprintf(s.W, "  %s\n", n.Description)
	}
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu  sync.Mutex
	got []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.got = append(r.got, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notifications in arrival order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.got))
	copy(out, r.got)
	return out
}
