// Package model holds the bubbletea programs behind interactive subcommands.
package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/codeora/internal/cli/styles"
)

// ConfirmModel wraps styles.ConfirmModel for standalone use. The program
// quits as soon as the user answers.
type ConfirmModel struct {
	confirm styles.ConfirmModel
}

// NewConfirmModel creates a confirm program asking message.
func NewConfirmModel(theme *styles.Theme, message, detail string) ConfirmModel {
	return ConfirmModel{confirm: styles.NewConfirm(theme, message, detail)}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = confirm
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View() + "\n"
}

// Confirmed reports whether the user chose "Yes".
func (m ConfirmModel) Confirmed() bool {
	return m.confirm.Result()
}

// Confirm runs the dialog on the terminal and returns the answer.
func Confirm(theme *styles.Theme, message, detail string, opts ...tea.ProgramOption) (bool, error) {
	final, err := tea.NewProgram(NewConfirmModel(theme, message, detail), opts...).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ConfirmModel)
	return ok && m.Confirmed(), nil
}
