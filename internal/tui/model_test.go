package tui

import (
	"testing"

	"repodash/internal/config"
	"repodash/internal/logging"
	"repodash/internal/repolist"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	tm := logging.NewTestLogManager(50)
	t.Cleanup(func() { _ = tm.Close() })
	return NewModel(config.DefaultConfig(), tm)
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t)

	if m.listState.Key != repolist.SortByName || !m.listState.Ascending {
		t.Errorf("initial sort state = %+v, want name ascending", m.listState)
	}
	if !m.scanning {
		t.Error("model should start with a scan in flight")
	}
	if m.statusLevel != StatusLoading {
		t.Errorf("initial status = %v, want StatusLoading", m.statusLevel)
	}
	if m.formOpen {
		t.Error("settings form should start closed")
	}
	if m.logPanelOpen {
		t.Error("log panel should start closed")
	}
}

func TestInit_ReturnsCommands(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Error("Init() should return the initial scan command")
	}
}

func TestSelectedRepo_EmptyList(t *testing.T) {
	m := newTestModel(t)
	if _, ok := m.selectedRepo(); ok {
		t.Error("selectedRepo() on empty list should return false")
	}
}
