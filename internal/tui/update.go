// pattern: Imperative Shell

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"repodash/internal/discovery"
	"repodash/internal/events"
	"repodash/internal/logging"
	"repodash/internal/repolist"
)

// reposScannedMsg delivers the result of a background scan.
type reposScannedMsg struct {
	repos []discovery.Repo
	err   error
}

// launchDoneMsg is sent when an external editor/terminal launch completes.
type launchDoneMsg struct {
	kind string // "editor" or "terminal"
	name string // repository name
	err  error
}

// logEntriesMsg delivers log entries from the logging channel.
type logEntriesMsg struct {
	entries []logging.LogEntry
}

// clearStatusMsg is sent after a timed delay to clear the status bar.
type clearStatusMsg struct{}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		layout := ComputeLayout(m.width, m.height, m.logPanelOpen)
		m.repoList.SetSize(m.width-2, layout.ContentListHeight())
		m.searchInput.Width = m.width - 12

		if m.logPanelOpen {
			if !m.logReady {
				m.logViewport = viewport.New(layout.Logs.Width, layout.Logs.Height)
				m.logReady = true
			} else {
				m.logViewport.Width = layout.Logs.Width
				m.logViewport.Height = layout.Logs.Height
			}
			m.updateLogViewportContent()
		}
		return m, nil

	case spinner.TickMsg:
		if m.statusLevel == StatusLoading {
			var cmd tea.Cmd
			m.statusSpinner, cmd = m.statusSpinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case reposScannedMsg:
		m.scanning = false

		if msg.err != nil {
			// Keep the previous result set visible
			m.logger.Error("scan failed", "error", msg.err)
			if errors.Is(msg.err, discovery.ErrBaseDirNotFound) {
				m.setError("Base directory not found", msg.err)
			} else {
				m.setError("Scan failed", msg.err)
			}
		} else {
			m.logger.Info("scan completed", "count", len(msg.repos))
			m.repos = msg.repos
			m.applyVisible()
			if m.statusLevel == StatusLoading || m.statusLevel == StatusError {
				m.clearStatus()
			}
		}

		if m.pendingRescan {
			m.pendingRescan = false
			m.scanning = true
			return m, m.scanRepos()
		}
		return m, nil

	case events.RescanRequestMsg:
		cmd := m.requestScan()
		return m, cmd

	case launchDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Failed to open %s in %s", msg.name, msg.kind), msg.err)
			return m, nil
		}
		cmd := m.setSuccess(fmt.Sprintf("Opened %s in %s", msg.name, msg.kind))
		return m, cmd

	case logEntriesMsg:
		m.logEntries = append(m.logEntries, msg.entries...)
		if len(m.logEntries) > maxLogEntries {
			m.logEntries = m.logEntries[len(m.logEntries)-maxLogEntries:]
		}
		if m.logPanelOpen && m.logReady {
			m.updateLogViewportContent()
		}
		if m.logCh != nil {
			return m, consumeLogEntries(m.logCh)
		}
		return m, nil

	case clearStatusMsg:
		// Don't clobber errors or an in-flight scan
		if m.statusLevel == StatusSuccess {
			m.clearStatus()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.formOpen {
		return m.handleFormKey(msg)
	}

	// Search input owns most keys while focused
	if m.searchInput.Focused() {
		switch msg.Type {
		case tea.KeyEscape:
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.listState.Filter = ""
			m.applyVisible()
			return m, nil
		case tea.KeyEnter:
			m.searchInput.Blur()
			return m, nil
		case tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.repoList, cmd = m.repoList.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != m.listState.Filter {
			m.listState.Filter = m.searchInput.Value()
			m.applyVisible()
		}
		return m, cmd
	}

	// Esc dismisses errors, then closes the log panel, then quits
	if msg.Type == tea.KeyEscape {
		if m.statusLevel == StatusError {
			m.clearStatus()
			return m, nil
		}
		if m.logPanelOpen {
			m.logPanelOpen = false
			return m, m.resize()
		}
		return m, tea.Quit
	}

	if msg.Type == tea.KeyEnter {
		return m.activateEditor()
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searchInput.Focus()
		return m, textinput.Blink

	case "r":
		m.logger.Debug("manual rescan requested")
		cmd := m.requestScan()
		return m, cmd

	case "n":
		m.listState = m.listState.ToggleSort(repolist.SortByName)
		m.applyVisible()
		return m, nil

	case "m":
		m.listState = m.listState.ToggleSort(repolist.SortByModified)
		m.applyVisible()
		return m, nil

	case "o":
		return m.activateEditor()

	case "t":
		repo, ok := m.selectedRepo()
		if !ok {
			return m, nil
		}
		m.logger.Info("opening terminal", "repo", repo.Name)
		return m, m.openTerminal(repo)

	case "s":
		m.openForm()
		return m, textinput.Blink

	case "l":
		m.logPanelOpen = !m.logPanelOpen
		if m.logPanelOpen {
			layout := ComputeLayout(m.width, m.height, true)
			if !m.logReady {
				m.logViewport = viewport.New(layout.Logs.Width, layout.Logs.Height)
				m.logReady = true
			}
			m.updateLogViewportContent()
		}
		return m, m.resize()

	case "j", "k":
		if m.logPanelOpen && m.logReady {
			if msg.String() == "j" {
				m.logViewport.ScrollDown(1)
				m.logAutoScroll = m.logViewport.AtBottom()
			} else {
				m.logViewport.ScrollUp(1)
				m.logAutoScroll = false
			}
			return m, nil
		}
	}

	// Forward to list for navigation
	var cmd tea.Cmd
	m.repoList, cmd = m.repoList.Update(msg)
	return m, cmd
}

// requestScan starts a scan unless one is already running, in which case
// exactly one follow-up scan is queued.
func (m *Model) requestScan() tea.Cmd {
	if m.scanning {
		m.pendingRescan = true
		return nil
	}
	m.scanning = true
	return tea.Batch(m.setLoading("Scanning..."), m.scanRepos())
}

// activateEditor opens the selected repository in the configured editor.
func (m Model) activateEditor() (tea.Model, tea.Cmd) {
	repo, ok := m.selectedRepo()
	if !ok {
		return m, nil
	}
	m.logger.Info("opening editor", "repo", repo.Name, "editor", m.cfg.Editor)
	return m, m.openEditor(repo)
}

// openEditor returns a command that launches the editor on the repo path.
func (m Model) openEditor(repo discovery.Repo) tea.Cmd {
	launcher, editor := m.launcher, m.cfg.Editor
	return func() tea.Msg {
		err := launcher.OpenEditor(editor, repo.Path)
		return launchDoneMsg{kind: "editor", name: repo.Name, err: err}
	}
}

// openTerminal returns a command that launches a terminal in the repo path.
func (m Model) openTerminal(repo discovery.Repo) tea.Cmd {
	launcher, term := m.launcher, m.cfg.Terminal
	return func() tea.Msg {
		err := launcher.OpenTerminal(term, repo.Path)
		return launchDoneMsg{kind: "terminal", name: repo.Name, err: err}
	}
}

// resize replays the current window size so panel layouts recompute.
func (m Model) resize() tea.Cmd {
	width, height := m.width, m.height
	if width == 0 && height == 0 {
		return nil
	}
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}

// consumeLogEntries returns a command that drains available entries from
// the log channel, blocking for at least one.
func consumeLogEntries(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		entries := []logging.LogEntry{entry}
		for {
			select {
			case e, ok := <-ch:
				if !ok {
					return logEntriesMsg{entries: entries}
				}
				entries = append(entries, e)
			default:
				return logEntriesMsg{entries: entries}
			}
		}
	}
}
