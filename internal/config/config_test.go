package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom_FullConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	configContent := `
base_dir: ~/src
editor: zed
terminal: kitty
theme: latte
log_level: debug
watch: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.BaseDir != "~/src" {
		t.Errorf("BaseDir: got %q, want %q", cfg.BaseDir, "~/src")
	}
	if cfg.Editor != "zed" {
		t.Errorf("Editor: got %q, want %q", cfg.Editor, "zed")
	}
	if cfg.Terminal != "kitty" {
		t.Errorf("Terminal: got %q, want %q", cfg.Terminal, "kitty")
	}
	if cfg.Theme != "latte" {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, "latte")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.Watch {
		t.Error("Watch: got false, want true")
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	want := DefaultConfig()
	if cfg.BaseDir != want.BaseDir || cfg.Editor != want.Editor || cfg.Theme != want.Theme {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadFrom_MalformedFallsBackToDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("base_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected parse error for malformed config")
	}
	if cfg.BaseDir != DefaultConfig().BaseDir {
		t.Errorf("malformed config should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadFrom_EmptyFieldsGetDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("editor: hx\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Editor != "hx" {
		t.Errorf("Editor: got %q, want %q", cfg.Editor, "hx")
	}
	if cfg.BaseDir == "" || cfg.Theme == "" || cfg.LogLevel == "" {
		t.Errorf("empty fields should get defaults, got %+v", cfg)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.BaseDir = "/srv/repos"
	cfg.Editor = "nvim"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.BaseDir != "/srv/repos" || loaded.Editor != "nvim" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestResolveBaseDir_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir available")
	}

	cfg := Config{BaseDir: "~/Documents"}
	got := cfg.ResolveBaseDir()
	if !strings.HasPrefix(got, home) {
		t.Errorf("ResolveBaseDir() = %q, want prefix %q", got, home)
	}
	if strings.Contains(got, "~") {
		t.Errorf("ResolveBaseDir() = %q, still contains ~", got)
	}
}

func TestResolveBaseDir_AbsolutePathUnchanged(t *testing.T) {
	cfg := Config{BaseDir: "/srv/repos"}
	if got := cfg.ResolveBaseDir(); got != "/srv/repos" {
		t.Errorf("ResolveBaseDir() = %q, want %q", got, "/srv/repos")
	}
}

func TestDataDir_Override(t *testing.T) {
	if got := DataDir("/tmp/custom"); got != "/tmp/custom" {
		t.Errorf("DataDir(override) = %q, want %q", got, "/tmp/custom")
	}
}
