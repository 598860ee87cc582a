package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewManager_RequiresFilePath(t *testing.T) {
	_, err := NewManager(Config{})
	if err == nil {
		t.Fatal("expected error for empty FilePath")
	}
}

func TestManager_WritesFileAndChannel(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	m, err := NewManager(Config{
		FilePath:       logPath,
		MaxSizeMB:      1,
		MaxBackups:     1,
		MaxAgeDays:     1,
		ChannelBufSize: 10,
		Level:          "debug",
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer m.Close()

	logger := m.For("scanner")
	logger.Info("scan completed", "count", 3)
	_ = m.Sync()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created")
	}

	select {
	case entry := <-m.Entries():
		if entry.Scope != "scanner" {
			t.Errorf("Scope = %q, want %q", entry.Scope, "scanner")
		}
		if entry.Message != "scan completed" {
			t.Errorf("Message = %q, want %q", entry.Message, "scan completed")
		}
		if entry.Level != "INFO" {
			t.Errorf("Level = %q, want INFO", entry.Level)
		}
	default:
		t.Error("no log entry received on channel")
	}
}

func TestManager_LevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	m, err := NewManager(Config{
		FilePath:       filepath.Join(tmpDir, "test.log"),
		ChannelBufSize: 10,
		Level:          "warn",
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer m.Close()

	logger := m.For("app")
	logger.Debug("too quiet")
	logger.Info("still too quiet")
	logger.Warn("this one passes")

	select {
	case entry := <-m.Entries():
		if entry.Level != "WARN" {
			t.Errorf("Level = %q, want WARN", entry.Level)
		}
	default:
		t.Error("warn entry should have passed the level filter")
	}

	select {
	case entry := <-m.Entries():
		t.Errorf("unexpected extra entry: %+v", entry)
	default:
	}
}

func TestManager_ForCachesLoggers(t *testing.T) {
	tmpDir := t.TempDir()
	m, err := NewManager(Config{FilePath: filepath.Join(tmpDir, "test.log")})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer m.Close()

	if m.For("launch") != m.For("launch") {
		t.Error("For() should return the same logger for the same scope")
	}
	if m.For("launch") == m.For("scanner") {
		t.Error("For() should return distinct loggers for distinct scopes")
	}
}

func TestScopedLogger_With(t *testing.T) {
	tm := NewTestLogManager(10)
	defer tm.Close()

	logger := tm.For("tui").With("repo", "proj-a")
	logger.Info("opening editor")

	select {
	case entry := <-tm.Entries():
		if entry.Fields["repo"] != "proj-a" {
			t.Errorf("Fields[repo] = %v, want proj-a", entry.Fields["repo"])
		}
	default:
		t.Error("no entry received")
	}
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	l := NopLogger()
	l.Debug("a")
	l.Info("b", "k", "v")
	l.Warn("c")
	l.Error("d")
	if l.With("k", "v") == nil {
		t.Error("With() on NopLogger returned nil")
	}
}
