// pattern: Imperative Shell

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"repodash/internal/logging"
	"repodash/internal/repolist"
)

// View renders the TUI.
func (m Model) View() string {
	layout := ComputeLayout(m.width, m.height, m.logPanelOpen)

	title := m.styles.TitleStyle().Render("Repo Dashboard")
	subtitle := m.styles.SubtitleStyle().Render(m.cfg.ResolveBaseDir() + "  " + m.sortIndicator())
	header := lipgloss.JoinVertical(lipgloss.Left, title, subtitle)

	var content string
	if m.formOpen {
		content = m.renderForm()
	} else {
		content = m.repoList.View()
	}
	content = lipgloss.NewStyle().Height(layout.Content.Height).Render(content)

	searchLine := m.searchInput.View()

	parts := []string{header, searchLine, content}

	if m.logPanelOpen && m.logReady {
		separator := m.styles.SeparatorStyle().
			Render(strings.Repeat("─", max(layout.Separator.Width, 1)))
		parts = append(parts, separator, m.logViewport.View())
	}

	parts = append(parts, m.renderStatusBar(layout.StatusBar.Width))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// sortIndicator describes the active sort column and direction.
func (m Model) sortIndicator() string {
	dir := "↓"
	if m.listState.Ascending {
		dir = "↑"
	}
	if m.listState.Key == repolist.SortByModified {
		return "sorted by last commit " + dir
	}
	return "sorted by name " + dir
}

// renderStatusBar renders operation feedback on the left and contextual
// help on the right.
func (m Model) renderStatusBar(width int) string {
	var statusText string
	switch m.statusLevel {
	case StatusLoading:
		statusText = m.statusSpinner.View() + " " + m.styles.InfoStyle().Render(m.statusMessage)
	case StatusSuccess:
		statusText = m.styles.SuccessStyle().Render("✓ " + m.statusMessage)
	case StatusError:
		statusText = m.styles.ErrorStyle().Render("✗ "+m.statusMessage) +
			m.styles.HelpStyle().Render(" (esc to clear)")
	default:
		statusText = m.styles.SubtitleStyle().Render(fmt.Sprintf("%d repositories", m.visibleCount()))
	}

	help := m.renderContextualHelp()

	statusWidth := lipgloss.Width(statusText)
	helpWidth := lipgloss.Width(help)
	spacerWidth := width - statusWidth - helpWidth - 2
	if spacerWidth < 1 {
		spacerWidth = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		statusText,
		strings.Repeat(" ", spacerWidth),
		help,
	)
}

// renderContextualHelp returns help text based on current state.
func (m Model) renderContextualHelp() string {
	var help string
	switch {
	case m.formOpen:
		help = "tab: next field • enter: save • esc: cancel"
	case m.searchInput.Focused():
		help = "enter: done • esc: clear • ↑/↓: navigate"
	case m.logPanelOpen:
		help = "j/k: scroll logs • l: close logs • q: quit"
	default:
		help = "/: search • n/m: sort • enter: editor • t: terminal • r: refresh • s: settings • l: logs • q: quit"
	}
	return m.styles.HelpStyle().Render(help)
}

// updateLogViewportContent rebuilds the log panel text from the buffered
// entries and restores the scroll position.
func (m *Model) updateLogViewportContent() {
	lines := make([]string, 0, len(m.logEntries))
	for _, entry := range m.logEntries {
		lines = append(lines, m.renderLogEntry(entry))
	}
	m.logViewport.SetContent(strings.Join(lines, "\n"))
	if m.logAutoScroll {
		m.logViewport.GotoBottom()
	}
}

// renderLogEntry formats a single log entry for display.
func (m Model) renderLogEntry(entry logging.LogEntry) string {
	ts := m.styles.LogTimestampStyle().Render(entry.Timestamp.Format("15:04:05"))
	level := m.styles.LogLevelStyle(entry.Level).Render(fmt.Sprintf("%-5s", entry.Level))
	scope := m.styles.SubtitleStyle().Render("[" + entry.Scope + "]")

	line := ts + " " + level + " " + scope + " " + entry.Message
	for k, v := range entry.Fields {
		line += m.styles.HelpStyle().Render(fmt.Sprintf(" %s=%v", k, v))
	}
	return line
}
