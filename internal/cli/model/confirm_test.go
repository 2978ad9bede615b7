package model

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/codeora/internal/cli/styles"
)

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel_DefaultsToNo(t *testing.T) {
	m, cmd := press(t, NewConfirmModel(styles.NewTheme(), "Reset?", ""), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.(ConfirmModel).Confirmed())
}

func TestConfirmModel_YesThenEnter(t *testing.T) {
	m, cmd := press(t, NewConfirmModel(styles.NewTheme(), "Reset?", ""), runeKey('y'), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, m.(ConfirmModel).Confirmed())
}

func TestConfirmModel_EscCancels(t *testing.T) {
	m, _ := press(t, NewConfirmModel(styles.NewTheme(), "Reset?", ""), runeKey('y'), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.(ConfirmModel).Confirmed())
}

func TestConfirmModel_SelectionWithoutEnterKeepsRunning(t *testing.T) {
	m, cmd := press(t, NewConfirmModel(styles.NewTheme(), "Reset?", "all origins"), tea.KeyMsg{Type: tea.KeyRight})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Reset?")
	assert.Contains(t, m.View(), "all origins")
}

func TestConfirm_ReadsAnswerFromInput(t *testing.T) {
	var out bytes.Buffer
	ok, err := Confirm(styles.NewTheme(), "Reset?", "",
		tea.WithInput(strings.NewReader("y\r")),
		tea.WithOutput(&out),
		tea.WithoutRenderer(),
	)

	require.NoError(t, err)
	assert.True(t, ok)
}
