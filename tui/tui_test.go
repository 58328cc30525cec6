package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/sharerecon/console"
	"github.com/vitalvas/sharerecon/shamir"
)

func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Cmd {
	t.Helper()

	updated, cmd := m.Update(msg)
	require.Same(t, m, updated)
	return cmd
}

func TestNew(t *testing.T) {
	m := New(console.ExampleDocument, shamir.MethodLagrange, nil)

	require.NotNil(t, m)
	assert.Equal(t, console.ExampleDocument, m.Value())
	assert.Nil(t, m.Result())
	assert.NoError(t, m.Err())
	assert.NotNil(t, m.Init())
}

func TestReconstructKey(t *testing.T) {
	m := New(console.ExampleDocument, shamir.MethodLagrange, nil)

	cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, cmd)

	require.NoError(t, m.Err())
	require.NotNil(t, m.Result())
	assert.Equal(t, "3", shamir.FormatRat(m.Result().Constant))

	view := m.View()
	assert.Contains(t, view, "constant term (secret): 3")
	assert.Contains(t, view, "f(x) = x^2 + 3")
}

func TestReconstructError(t *testing.T) {
	m := New(`{"keys": {"n": 1, "k": 2}, "1": {"base": "10", "value": "5"}}`, shamir.MethodLagrange, nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.ErrorIs(t, m.Err(), shamir.ErrInsufficientShares)
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Reconstruction failed (insufficient_shares)")
}

func TestToggleMethod(t *testing.T) {
	m := New(console.ExampleDocument, shamir.MethodLagrange, nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, shamir.MethodVandermonde, m.Method())
	require.NotNil(t, m.Result())
	assert.Equal(t, shamir.MethodVandermonde, m.Result().Method)
	assert.Contains(t, m.View(), "method: vandermonde")

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, shamir.MethodLagrange, m.Method())
}

func TestEditAndRestore(t *testing.T) {
	m := New(console.ExampleDocument, shamir.MethodLagrange, nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.NotEqual(t, console.ExampleDocument, m.Value())

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.ErrorIs(t, m.Err(), shamir.ErrMalformedInput)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, console.ExampleDocument, m.Value())
	assert.NoError(t, m.Err())
	assert.NotContains(t, m.View(), "Reconstruction failed")
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m := New(console.ExampleDocument, shamir.MethodLagrange, nil)

			cmd := press(t, m, msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestWindowSize(t *testing.T) {
	m := New(console.ExampleDocument, shamir.MethodLagrange, nil)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Same(t, m, updated)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Share document")
}

func TestHelpLine(t *testing.T) {
	m := New("", shamir.MethodLagrange, nil)

	assert.Equal(t, "ctrl+r reconstruct • ctrl+t toggle method • ctrl+l load example • esc quit", m.helpLine())
}
