package session

import (
	"errors"
	"fmt"
)

var ErrTabUnavailable = errors.New("tab not available")

type Tab string

const (
	TabAnalysis  Tab = "analysis"
	TabQA        Tab = "qa"
	TabTranslate Tab = "translate"
	TabUpload    Tab = "upload"
)

// MessageKey is the locale key for the tab title.
func (t Tab) MessageKey() string {
	switch t {
	case TabAnalysis:
		return "tabs.analysis"
	case TabQA:
		return "tabs.qa"
	case TabTranslate:
		return "tabs.translate"
	case TabUpload:
		return "tabs.newDoc"
	}
	panic(fmt.Sprintf("session: unknown tab %q", string(t)))
}

var (
	uploadOnly = []Tab{TabUpload}
	allTabs    = []Tab{TabAnalysis, TabQA, TabTranslate, TabUpload}
)

// ParseTab accepts a tab name as typed by a user.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabAnalysis, TabQA, TabTranslate, TabUpload:
		return Tab(s), nil
	case "new":
		return TabUpload, nil
	}
	return "", fmt.Errorf("%w: %q", ErrTabUnavailable, s)
}
