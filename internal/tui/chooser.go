package tui

import (
	"strconv"
	"strings"

	"oralog/internal/adr"
)

// ChoiceState tracks where a selection stands. Resolved is terminal;
// Invalid is transient and re-prompts.
type ChoiceState int

const (
	AwaitingChoice ChoiceState = iota
	Invalid
	Resolved
)

// Chooser is the selection state machine shared by the bubbletea menu
// and the plain prompt. It is pure: callers feed it input lines and
// render its state however they like.
type Chooser struct {
	Options []adr.Kind

	state   ChoiceState
	last    string
	choice  adr.Kind
}

// NewChooser builds a chooser over the offered kinds, in menu order.
func NewChooser(options []adr.Kind) *Chooser {
	return &Chooser{Options: options}
}

// State reports the current state.
func (c *Chooser) State() ChoiceState { return c.state }

// Choice returns the resolved kind; meaningful only in Resolved.
func (c *Chooser) Choice() adr.Kind { return c.choice }

// InvalidInput returns the last rejected input; meaningful only in
// Invalid.
func (c *Chooser) InvalidInput() string { return c.last }

// Submit feeds one line of operator input: a 1-based menu number or a
// component name, case-insensitive. Bad input parks the chooser in
// Invalid until the next Submit; once Resolved further input is
// ignored.
func (c *Chooser) Submit(input string) ChoiceState {
	if c.state == Resolved {
		return Resolved
	}
	trimmed := strings.TrimSpace(input)
	if kind, ok := c.match(trimmed); ok {
		c.choice = kind
		c.state = Resolved
	} else {
		c.last = trimmed
		c.state = Invalid
	}
	return c.state
}

func (c *Chooser) match(input string) (adr.Kind, bool) {
	if input == "" {
		return "", false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(c.Options) {
			return c.Options[n-1], true
		}
		return "", false
	}
	kind, err := adr.ParseKind(input)
	if err != nil {
		return "", false
	}
	for _, opt := range c.Options {
		if opt == kind {
			return kind, true
		}
	}
	return "", false
}
