// pattern: Imperative Shell

package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings form field indices.
const (
	fieldBaseDir = iota
	fieldEditor
	fieldTerminal
	fieldCount
)

var formLabels = [fieldCount]string{"Base directory", "Editor command", "Terminal command"}

// openForm opens the settings form pre-filled with the current config.
func (m *Model) openForm() {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 48
		inputs[i] = ti
	}
	inputs[fieldBaseDir].SetValue(m.cfg.BaseDir)
	inputs[fieldEditor].SetValue(m.cfg.Editor)
	inputs[fieldTerminal].SetValue(m.cfg.Terminal)
	inputs[fieldBaseDir].Focus()

	m.formInputs = inputs
	m.formFocused = fieldBaseDir
	m.formError = ""
	m.formOpen = true
}

// closeForm discards the form state.
func (m *Model) closeForm() {
	m.formOpen = false
	m.formInputs = nil
	m.formError = ""
}

// handleFormKey processes key events while the settings form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.closeForm()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.focusFormField((m.formFocused + 1) % fieldCount)
		return m, textinput.Blink

	case tea.KeyShiftTab, tea.KeyUp:
		m.focusFormField((m.formFocused + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case tea.KeyEnter:
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocused], cmd = m.formInputs[m.formFocused].Update(msg)
	return m, cmd
}

func (m *Model) focusFormField(idx int) {
	m.formInputs[m.formFocused].Blur()
	m.formFocused = idx
	m.formInputs[idx].Focus()
}

// submitForm validates the form, persists the settings, and rescans.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	cfg := m.cfg
	cfg.BaseDir = m.formInputs[fieldBaseDir].Value()
	cfg.Editor = m.formInputs[fieldEditor].Value()
	cfg.Terminal = m.formInputs[fieldTerminal].Value()

	if cfg.Editor == "" {
		m.formError = "editor command must not be empty"
		return m, nil
	}
	info, err := os.Stat(cfg.ResolveBaseDir())
	if err != nil || !info.IsDir() {
		m.formError = "base directory is not a valid directory"
		return m, nil
	}

	if err := m.saveCfg(cfg); err != nil {
		m.logger.Error("settings save failed", "error", err)
		m.formError = "save failed: " + err.Error()
		return m, nil
	}

	m.logger.Info("settings saved", "base_dir", cfg.BaseDir, "editor", cfg.Editor)
	m.cfg = cfg
	m.closeForm()

	scanCmd := m.requestScan()
	successCmd := m.setSuccess("Settings saved")
	return m, tea.Batch(successCmd, scanCmd)
}

// renderForm renders the settings form in place of the list.
func (m Model) renderForm() string {
	title := m.styles.TitleStyle().Render("Settings")

	parts := []string{title, ""}
	for i, input := range m.formInputs {
		label := formLabels[i] + ": "
		if i == m.formFocused {
			label = m.styles.AccentStyle().Render("▸ " + label)
		} else {
			label = "  " + label
		}
		parts = append(parts, label+input.View())
	}

	if m.formError != "" {
		parts = append(parts, "", m.styles.ErrorStyle().Render("Error: "+m.formError))
	}

	parts = append(parts, "", m.styles.HelpStyle().Render("tab: next field • enter: save & refresh • esc: cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
