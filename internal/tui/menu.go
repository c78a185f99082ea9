package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"oralog/internal/adr"
)

// MenuModel is the interactive component picker. Arrows move the
// cursor and enter confirms it; typing a number or a component name
// into the field works too.
type MenuModel struct {
	chooser *Chooser
	input   textinput.Model
	cursor  int
	invalid string
	choice  adr.Kind
	aborted bool
	done    bool
}

// NewMenu builds the picker over the offered kinds.
func NewMenu(options []adr.Kind) MenuModel {
	ti := textinput.New()
	ti.Placeholder = "number or name"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()
	return MenuModel{chooser: NewChooser(options), input: ti}
}

func (m MenuModel) Init() tea.Cmd { return textinput.Blink }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.chooser.Options)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = strconv.Itoa(m.cursor + 1)
			}
			if m.chooser.Submit(value) == Resolved {
				m.choice = m.chooser.Choice()
				m.done = true
				return m, tea.Quit
			}
			m.invalid = m.chooser.InvalidInput()
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Select logs to collect") + "\n\n")
	for i, kind := range m.chooser.Options {
		marker := "  "
		if i == m.cursor {
			marker = CursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%d) %s  %s\n",
			marker, i+1,
			KindStyle.Render(fmt.Sprintf("%-8s", kind)),
			LabelStyle.Render(kind.Label()))
	}
	b.WriteString("\n" + m.input.View() + "\n")
	if m.invalid != "" {
		b.WriteString(InvalidStyle.Render(fmt.Sprintf("invalid choice %q", m.invalid)) + "\n")
	}
	b.WriteString(LabelStyle.Render("enter confirms, esc quits") + "\n")
	return b.String()
}

// RunMenu blocks on the interactive picker until the operator chooses
// or quits. Esc and ctrl+c abort.
func RunMenu(in io.Reader, out io.Writer, options []adr.Kind) (adr.Kind, error) {
	p := tea.NewProgram(NewMenu(options), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok || m.aborted || m.choice == "" {
		return "", ErrAborted
	}
	return m.choice, nil
}
