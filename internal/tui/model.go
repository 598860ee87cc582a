package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"repodash/internal/config"
	"repodash/internal/discovery"
	"repodash/internal/launch"
	"repodash/internal/logging"
	"repodash/internal/repolist"
)

// maxLogEntries bounds the in-memory log panel history.
const maxLogEntries = 500

// SaveFunc persists the configuration. Injectable for tests.
type SaveFunc func(config.Config) error

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	styles *Styles

	cfg     config.Config
	saveCfg SaveFunc
	logger  *logging.ScopedLogger

	scanner  *discovery.Scanner
	launcher *launch.Launcher

	repos     []discovery.Repo // last successful scan result
	listState repolist.State
	repoList  list.Model

	searchInput textinput.Model

	// At most one scan runs at a time; a request during a scan queues
	// exactly one follow-up.
	scanning      bool
	pendingRescan bool

	statusLevel   StatusLevel
	statusMessage string
	statusSpinner spinner.Model
	err           error

	formOpen    bool
	formInputs  []textinput.Model
	formFocused int
	formError   string

	logPanelOpen  bool
	logReady      bool
	logViewport   viewport.Model
	logAutoScroll bool
	logEntries    []logging.LogEntry
	logCh         <-chan logging.LogEntry
}

// NewModel creates a new TUI model with the given configuration.
func NewModel(cfg config.Config, logs logging.LoggerProvider) Model {
	styles := NewStyles(cfg.Theme)

	repoList := list.New([]list.Item{}, newRepoDelegate(styles), 0, 0)
	repoList.SetShowTitle(false)
	repoList.SetShowStatusBar(false)
	repoList.SetFilteringEnabled(false)
	repoList.SetShowHelp(false)

	search := textinput.New()
	search.Placeholder = "type to filter"
	search.Prompt = "search: "
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.flavor.Teal().Hex))

	logger := logs.For("tui")

	return Model{
		styles:        styles,
		cfg:           cfg,
		saveCfg:       config.Config.Save,
		logger:        logger,
		scanner:       discovery.NewScanner(),
		launcher:      launch.NewLauncher(logs.For("launch")),
		listState:     repolist.DefaultState(),
		repoList:      repoList,
		searchInput:   search,
		statusSpinner: sp,
		scanning:      true, // Init issues the first scan
		statusLevel:   StatusLoading,
		statusMessage: "Scanning...",
		logAutoScroll: true,
	}
}

// SetLogChannel wires the logging manager's entry channel into the log
// panel. Must be called before the program starts.
func (m *Model) SetLogChannel(ch <-chan logging.LogEntry) {
	m.logCh = ch
}

// SetSaveFunc overrides how settings are persisted. Used by tests.
func (m *Model) SetSaveFunc(fn SaveFunc) {
	m.saveCfg = fn
}

// SetLauncher overrides the external command launcher. Used by tests.
func (m *Model) SetLauncher(l *launch.Launcher) {
	m.launcher = l
}

// Init returns the initial commands: the first scan plus log consumption.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scanRepos(), m.statusSpinner.Tick, textinput.Blink}
	if m.logCh != nil {
		cmds = append(cmds, consumeLogEntries(m.logCh))
	}
	return tea.Batch(cmds...)
}

// scanRepos returns a command that scans the base directory in the
// background. Callers must have set m.scanning beforehand (NewModel
// starts with an implicit scan in flight via Init).
func (m Model) scanRepos() tea.Cmd {
	baseDir := m.cfg.ResolveBaseDir()
	scanner := m.scanner
	return func() tea.Msg {
		repos, err := scanner.Scan(baseDir)
		return reposScannedMsg{repos: repos, err: err}
	}
}

// applyVisible recomputes the visible list from the scan result and the
// current filter/sort state.
func (m *Model) applyVisible() {
	visible := repolist.Visible(m.repos, m.listState)
	m.repoList.SetItems(toListItems(visible, time.Now()))
	if m.repoList.Index() >= len(visible) && len(visible) > 0 {
		m.repoList.Select(len(visible) - 1)
	}
}

// selectedRepo returns the currently selected repository, if any.
func (m Model) selectedRepo() (discovery.Repo, bool) {
	item, ok := m.repoList.SelectedItem().(repoItem)
	if !ok {
		return discovery.Repo{}, false
	}
	return item.repo, true
}

// visibleCount returns the number of repositories currently displayed.
func (m Model) visibleCount() int {
	return len(m.repoList.Items())
}
