// pattern: Imperative Shell

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusLevel describes what the status bar is currently showing.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// successTTL is how long success notices stay visible.
const successTTL = 3 * time.Second

// setLoading puts the status bar in loading state and returns the spinner
// tick command that animates it.
func (m *Model) setLoading(message string) tea.Cmd {
	m.statusLevel = StatusLoading
	m.statusMessage = message
	m.err = nil
	return m.statusSpinner.Tick
}

// setSuccess shows a transient success notice that clears itself.
func (m *Model) setSuccess(message string) tea.Cmd {
	m.statusLevel = StatusSuccess
	m.statusMessage = message
	m.err = nil
	return tea.Tick(successTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// setError shows an error notice. It stays until the user dismisses it
// with esc or another operation replaces it.
func (m *Model) setError(message string, err error) {
	m.statusLevel = StatusError
	m.statusMessage = message
	m.err = err
}

// clearStatus resets the status bar to the idle repository count.
func (m *Model) clearStatus() {
	m.statusLevel = StatusInfo
	m.statusMessage = ""
	m.err = nil
}
