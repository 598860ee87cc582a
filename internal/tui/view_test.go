package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"repodash/internal/logging"
	"repodash/internal/repolist"
)

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestView_ShowsHeaderAndStatus(t *testing.T) {
	m := sizedModel(t)
	next, _ := m.Update(scanned(testRepos()...))
	m = next.(Model)

	out := m.View()
	if !strings.Contains(out, "Repo Dashboard") {
		t.Error("view missing app title")
	}
	if !strings.Contains(out, "sorted by name ↑") {
		t.Error("view missing sort indicator")
	}
	if !strings.Contains(out, "2 repositories") {
		t.Errorf("view missing repository count:\n%s", out)
	}
}

func TestSortIndicator(t *testing.T) {
	m := newTestModel(t)

	if got := m.sortIndicator(); got != "sorted by name ↑" {
		t.Errorf("default indicator = %q", got)
	}

	m.listState = repolist.State{Key: repolist.SortByModified, Ascending: false}
	if got := m.sortIndicator(); got != "sorted by last commit ↓" {
		t.Errorf("modified indicator = %q", got)
	}
}

func TestRenderStatusBar_States(t *testing.T) {
	m := sizedModel(t)
	next, _ := m.Update(scanned(testRepos()...))
	m = next.(Model)

	if got := m.renderStatusBar(100); !strings.Contains(got, "2 repositories") {
		t.Errorf("idle status = %q, want repository count", got)
	}

	m.setError("Base directory not found", errors.New("stat failed"))
	got := m.renderStatusBar(100)
	if !strings.Contains(got, "✗ Base directory not found") || !strings.Contains(got, "esc to clear") {
		t.Errorf("error status = %q", got)
	}

	m.clearStatus()
	_ = m.setSuccess("Opened proj-a in editor")
	if got := m.renderStatusBar(100); !strings.Contains(got, "✓ Opened proj-a in editor") {
		t.Errorf("success status = %q", got)
	}
}

func TestRenderContextualHelp(t *testing.T) {
	m := newTestModel(t)

	if got := m.renderContextualHelp(); !strings.Contains(got, "t: terminal") {
		t.Errorf("default help = %q", got)
	}

	m.searchInput.Focus()
	if got := m.renderContextualHelp(); !strings.Contains(got, "esc: clear") {
		t.Errorf("search help = %q", got)
	}
	m.searchInput.Blur()

	m.logPanelOpen = true
	if got := m.renderContextualHelp(); !strings.Contains(got, "scroll logs") {
		t.Errorf("log panel help = %q", got)
	}
	m.logPanelOpen = false

	m.formOpen = true
	if got := m.renderContextualHelp(); !strings.Contains(got, "enter: save") {
		t.Errorf("form help = %q", got)
	}
}

func TestRenderLogEntry(t *testing.T) {
	m := newTestModel(t)
	entry := logging.LogEntry{
		Timestamp: time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC),
		Level:     "info",
		Scope:     "discovery",
		Message:   "scan complete",
		Fields:    map[string]any{"repos": 4},
	}

	out := m.renderLogEntry(entry)
	for _, want := range []string{"14:05:09", "info", "[discovery]", "scan complete", "repos=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered entry %q missing %q", out, want)
		}
	}
}
