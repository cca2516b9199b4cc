package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/piltismart/pilti/internal/endpoint"
	"github.com/piltismart/pilti/internal/ui/theme"
)

const (
	SUGGESTIONS_MAX_HEIGHT = 5
	INPUT_WIDTH            = 48
)

// Updater reads and changes the server URL.
type Updater interface {
	CurrentURL() string
	UpdateURL(candidate string) (endpoint.Effect, error)
}

type Model struct {
	keys    keyMap
	updater Updater
	current string
	recent  servers
	input   textinput.Model

	suggestions servers
	cursor      int

	err   error
	saved bool
}

func NewModel(updater Updater, recent []string) *Model {
	current := updater.CurrentURL()

	ti := textinput.New()
	ti.Placeholder = "https://"
	ti.Prompt = "› "
	ti.Width = INPUT_WIDTH
	ti.SetValue(current)
	ti.Focus()

	m := &Model{
		keys:    newKeyMap(),
		updater: updater,
		current: current,
		recent:  servers(recent),
		input:   ti,
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.down):
			if m.cursor < min(len(m.suggestions), SUGGESTIONS_MAX_HEIGHT)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.complete):
			if len(m.suggestions) > 0 {
				m.input.SetValue(m.suggestions[m.cursor])
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.submit):
			return m, m.submit()
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if prev != m.input.Value() {
		m.err = nil
		m.refresh()
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if _, err := m.updater.UpdateURL(m.input.Value()); err != nil {
		m.err = err
		return nil
	}
	m.saved = true
	return tea.Quit
}

func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Mauve())
	muted := lipgloss.NewStyle().Foreground(theme.Subtext1())

	lines := []string{
		title.Render("Change Server"),
		muted.Render("current: ") + m.current,
		"",
		m.input.View(),
	}

	if s := m.suggestions.string(m.cursor); s != "" {
		lines = append(lines, "", muted.Render("recent"), s)
	}

	switch {
	case m.err != nil:
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Red()).Render(m.err.Error()))
	case m.saved:
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Green()).Render("Saved. Restart Pilti to load the new server."))
	}

	lines = append(lines, "", m.helpView())
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n")) + "\n"
}

func (m *Model) helpView() string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Blue())
	descStyle := lipgloss.NewStyle().Foreground(theme.Overlay1())

	var parts []string
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, descStyle.Render(" • "))
}

// Saved reports whether the editor stored a new URL.
func (m *Model) Saved() bool {
	return m.saved
}

// Err is the last rejected submission, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) refresh() {
	value := m.input.Value()
	if value == m.current {
		value = ""
	}
	m.suggestions = m.recent.filter(value)
	m.cursor = 0
}

type servers []string

func (s servers) filter(inputValue string) servers {
	if inputValue == "" {
		return s
	}

	var result servers
	for _, match := range fuzzy.Find(inputValue, s) {
		result = append(result, s[match.Index])
	}
	return result
}

func (s servers) string(cursor int) string {
	if len(s) == 0 {
		return ""
	}

	var rows []string
	for i, server := range s {
		if i == SUGGESTIONS_MAX_HEIGHT {
			break
		}
		style := lipgloss.NewStyle().Padding(0, 0, 0, 1).Foreground(theme.Text())
		if i == cursor {
			style = style.Background(theme.Overlay0())
		}
		rows = append(rows, style.Render(server))
	}
	return strings.Join(rows, "\n")
}
