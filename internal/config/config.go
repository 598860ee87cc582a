package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted settings. BaseDir and Editor are the two
// values the settings view edits; everything else is file-only.
type Config struct {
	BaseDir  string `yaml:"base_dir"`
	Editor   string `yaml:"editor"`
	Terminal string `yaml:"terminal"`
	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
	Watch    bool   `yaml:"watch"`
}

func DefaultConfig() Config {
	return Config{
		BaseDir:  "~/Documents",
		Editor:   "code",
		Terminal: defaultTerminal(),
		Theme:    "mocha",
		LogLevel: "info",
	}
}

// Load reads the config from the default location. A missing file is not
// an error: defaults are returned. A malformed file also returns defaults,
// along with the parse error so the UI can surface a notice.
func Load() (Config, error) {
	return LoadFrom(configPath())
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultConfig().BaseDir
	}
	if cfg.Editor == "" {
		cfg.Editor = DefaultConfig().Editor
	}
	if cfg.Terminal == "" {
		cfg.Terminal = defaultTerminal()
	}
	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Save writes the config to the default location.
func (c Config) Save() error {
	return c.SaveTo(configPath())
}

// SaveTo writes the config to an explicit path, creating the directory
// if needed.
func (c Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ResolveBaseDir expands a leading ~ in the configured base directory.
func (c Config) ResolveBaseDir() string {
	return expandHome(c.BaseDir)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// defaultTerminal picks a terminal emulator likely to exist on the host.
// The settings view lets the user override it.
func defaultTerminal() string {
	for _, term := range []string{"x-terminal-emulator", "gnome-terminal", "konsole", "xterm"} {
		if _, err := os.Stat("/usr/bin/" + term); err == nil {
			return term
		}
	}
	return "xterm"
}

func configPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "repodash", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "repodash", "config.yaml")
	}

	return filepath.Join(home, ".config", "repodash", "config.yaml")
}

// DataDir returns the directory for runtime state (lock file, logs).
func DataDir(override string) string {
	if override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "repodash")
	}
	return filepath.Join(home, ".config", "repodash")
}
