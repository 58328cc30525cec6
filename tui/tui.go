// Package tui provides an interactive terminal editor for share documents.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitalvas/sharerecon/console"
	"github.com/vitalvas/sharerecon/shamir"
)

const (
	defaultWidth  = 72
	editorHeight  = 14
	minEditorSize = 20
)

// Model is the editor state following the Elm architecture.
type Model struct {
	editor   textarea.Model
	keys     *KeyMap
	styles   *console.Styles
	renderer *console.Renderer
	example  string
	method   shamir.Method

	// result and err hold the outcome of the last reconstruction.
	result *shamir.Result
	err    error
}

var _ tea.Model = (*Model)(nil)

// New creates an editor prefilled with doc.
func New(doc string, method shamir.Method, styles *console.Styles) *Model {
	if styles == nil {
		styles = console.NewStyles(false)
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(defaultWidth)
	ta.SetHeight(editorHeight)
	ta.SetValue(doc)
	ta.Focus()

	return &Model{
		editor:   ta,
		keys:     DefaultKeyMap(),
		styles:   styles,
		renderer: console.NewRenderer(styles),
		example:  doc,
		method:   method,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetWidth(max(msg.Width-2, minEditorSize))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reconstruct):
			m.reconstruct()
			return m, nil
		case key.Matches(msg, m.keys.Method):
			m.toggleMethod()
			return m, nil
		case key.Matches(msg, m.keys.Example):
			m.editor.SetValue(m.example)
			m.result, m.err = nil, nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Share document"))
	fmt.Fprintf(&b, " %s\n", m.styles.Muted.Render("method: "+m.method.String()))
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.helpLine()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.renderer.RenderError(m.err))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(m.renderer.Render(m.result))
	}

	return b.String()
}

// Value returns the editor contents.
func (m *Model) Value() string {
	return m.editor.Value()
}

// Result returns the last successful reconstruction, if any.
func (m *Model) Result() *shamir.Result {
	return m.result
}

// Err returns the error from the last reconstruction, if any.
func (m *Model) Err() error {
	return m.err
}

// Method returns the active interpolation method.
func (m *Model) Method() shamir.Method {
	return m.method
}

func (m *Model) reconstruct() {
	m.result, m.err = shamir.Reconstruct([]byte(m.editor.Value()), shamir.WithMethod(m.method))
}

func (m *Model) toggleMethod() {
	if m.method == shamir.MethodLagrange {
		m.method = shamir.MethodVandermonde
	} else {
		m.method = shamir.MethodLagrange
	}

	if m.result != nil {
		m.reconstruct()
	}
}

func (m *Model) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Run starts the editor and blocks until the user quits or ctx is done.
func Run(ctx context.Context, doc string, method shamir.Method, styles *console.Styles) error {
	p := tea.NewProgram(New(doc, method, styles), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
