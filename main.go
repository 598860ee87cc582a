// pattern: Imperative Shell
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"repodash/internal/config"
	"repodash/internal/discovery"
	"repodash/internal/events"
	"repodash/internal/instance"
	"repodash/internal/logging"
	"repodash/internal/tui"
)

var version = "dev"

func main() {
	configPath := flag.StringP("config", "c", "", "config file (default: ~/.config/repodash/config.yaml)")
	baseDir := flag.StringP("base-dir", "b", "", "scan this directory instead of the configured one")
	showVersion := flag.BoolP("version", "V", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("repodash %s\n", version)
		return
	}

	run(*configPath, *baseDir)
}

// run loads configuration, sets up logging and the single-instance lock,
// and starts the TUI.
func run(configPath, baseDirOverride string) {
	cfg, cfgErr := loadConfig(configPath)
	if cfgErr != nil {
		// Malformed settings fall back to defaults; the app still starts.
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", cfgErr)
	}
	if baseDirOverride != "" {
		cfg.BaseDir = baseDirOverride
	}

	dataDir := config.DataDir("")

	fl, err := instance.Lock(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer instance.Cleanup(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath:   filepath.Join(dataDir, "repodash.log"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Level:      cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("application starting", "version", version, "base_dir", cfg.BaseDir)
	if cfgErr != nil {
		appLogger.Warn("config load failed, using defaults", "error", cfgErr)
	}

	model := tui.NewModel(cfg, logManager)
	model.SetLogChannel(logManager.Entries())

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Optional auto-refresh when the base directory changes on disk
	if cfg.Watch {
		watcher, err := discovery.NewWatcher(cfg.ResolveBaseDir(), func() {
			p.Send(events.RescanRequestMsg{})
		})
		if err != nil {
			appLogger.Warn("watcher failed to start (continuing without auto-refresh)", "error", err)
		} else {
			defer func() { _ = watcher.Close() }()
			appLogger.Info("watching base directory", "path", cfg.ResolveBaseDir())
		}
	}

	if _, err := p.Run(); err != nil {
		appLogger.Error("application exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("application stopped")
}

// loadConfig loads the configuration from the given path or the default
// location.
func loadConfig(configPath string) (config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}
