package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fnptr/abi"
	"github.com/wippyai/fnptr/sig"
	"github.com/wippyai/fnptr/wasmabi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sigStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input  textinput.Model
	parsed sig.Signature
	valid  bool
	err    error
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `unsafe extern "c" func(int32, int32) int32`
	ti.Prompt = "signature: "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			if m.valid {
				m.setSignature(m.parsed.ToggleSafety())
			}
			return m, nil

		case "ctrl+n":
			if m.valid {
				next := abi.Convention((m.parsed.Convention.Key() + 1) % abi.Count)
				if s, err := m.parsed.WithConvention(next); err == nil {
					m.setSignature(s)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

// setSignature replaces the input text with the canonical form of s so
// the text and the parsed state never drift apart.
func (m *interactiveModel) setSignature(s sig.Signature) {
	m.parsed = s
	m.valid = true
	m.err = nil
	m.input.SetValue(s.String())
	m.input.CursorEnd()
}

func (m *interactiveModel) reparse() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.valid = false
		m.err = nil
		return
	}
	s, err := sig.Parse(text)
	if err != nil {
		m.valid = false
		m.err = err
		return
	}
	m.parsed = s
	m.valid = true
	m.err = nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fnptr inspect"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("%v", m.err)))
		b.WriteString("\n")
	case m.valid:
		m.viewClassification(&b)
	default:
		b.WriteString(helpStyle.Render("Type a signature to classify it."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	m.viewRegistry(&b)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+t toggle safety • ctrl+n next convention • esc quit"))
	return b.String()
}

func (m *interactiveModel) viewClassification(b *strings.Builder) {
	s := m.parsed

	b.WriteString(sigStyle.Render(s.String()))
	b.WriteString("\n\n")
	fmt.Fprintf(b, "%s %d\n", fieldStyle.Render("arity:"), s.Arity())
	fmt.Fprintf(b, "%s %v\n", fieldStyle.Render("safe:"), s.Safe)
	fmt.Fprintf(b, "%s %v\n", fieldStyle.Render("foreign:"), s.Foreign())
	fmt.Fprintf(b, "%s %s (key %d)\n", fieldStyle.Render("convention:"), s.Convention, s.Convention.Key())
	if s.Convention.Alias() {
		fmt.Fprintf(b, "%s %s\n", fieldStyle.Render("concrete:"), s.Convention.Concrete())
	}

	params, results, err := wasmabi.Lower(s)
	if err != nil {
		fmt.Fprintf(b, "%s %s\n", fieldStyle.Render("wasm:"), errorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintf(b, "%s (%s) -> (%s)\n", fieldStyle.Render("wasm:"), valueTypes(params), valueTypes(results))
}

func (m *interactiveModel) viewRegistry(b *strings.Builder) {
	b.WriteString("Registry:\n")
	for _, c := range abi.All() {
		line := fmt.Sprintf("  %d %-12s", c.Key(), c.String())
		if m.valid && c == m.parsed.Convention {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
