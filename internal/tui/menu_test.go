package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"oralog/internal/adr"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeInto(m MenuModel, text string) MenuModel {
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return model.(MenuModel)
}

func TestMenuConfirmsCursorSelection(t *testing.T) {
	m := NewMenu(testOptions())

	model, _ := m.Update(keyMsg(tea.KeyDown))
	m = model.(MenuModel)
	model, _ = m.Update(keyMsg(tea.KeyEnter))
	m = model.(MenuModel)

	if !m.done || m.aborted {
		t.Fatalf("menu should be resolved: done=%v aborted=%v", m.done, m.aborted)
	}
	if m.choice != adr.ASM {
		t.Fatalf("choice = %s, want asm", m.choice)
	}
}

func TestMenuResolvesTypedName(t *testing.T) {
	m := NewMenu(testOptions())

	m = typeInto(m, "listener")
	model, _ := m.Update(keyMsg(tea.KeyEnter))
	m = model.(MenuModel)

	if m.choice != adr.Listener {
		t.Fatalf("choice = %s, want listener", m.choice)
	}
}

func TestMenuReportsInvalidInput(t *testing.T) {
	m := NewMenu(testOptions())

	m = typeInto(m, "9")
	model, _ := m.Update(keyMsg(tea.KeyEnter))
	m = model.(MenuModel)

	if m.done {
		t.Fatal("invalid input must not end the menu")
	}
	if !strings.Contains(m.View(), `invalid choice "9"`) {
		t.Fatalf("view should report the bad input:\n%s", m.View())
	}
	if m.input.Value() != "" {
		t.Fatalf("input should be cleared, got %q", m.input.Value())
	}

	// Recovery still works.
	m = typeInto(m, "1")
	model, _ = m.Update(keyMsg(tea.KeyEnter))
	m = model.(MenuModel)
	if m.choice != adr.Database {
		t.Fatalf("choice = %s, want database", m.choice)
	}
}

func TestMenuEscAborts(t *testing.T) {
	m := NewMenu(testOptions())

	model, _ := m.Update(keyMsg(tea.KeyEsc))
	m = model.(MenuModel)

	if !m.aborted || !m.done {
		t.Fatalf("esc should abort: done=%v aborted=%v", m.done, m.aborted)
	}
}

func TestMenuViewListsEveryOption(t *testing.T) {
	m := NewMenu(testOptions())
	view := m.View()

	for _, kind := range testOptions() {
		if !strings.Contains(view, kind.String()) {
			t.Fatalf("view missing %s:\n%s", kind, view)
		}
		if !strings.Contains(view, kind.Label()) {
			t.Fatalf("view missing label for %s:\n%s", kind, view)
		}
	}
	if !strings.Contains(view, "1)") {
		t.Fatalf("view missing menu numbers:\n%s", view)
	}
}
