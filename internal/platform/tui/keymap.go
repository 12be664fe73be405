package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ball/internal/core"
)

// Hold windows for movement keys. A fresh press holds a key long enough to
// bridge the terminal's auto-repeat delay; once repeats arrive, each one
// extends the hold by a shorter window so release feels prompt.
const (
	DefaultFirstHold  = 550 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or WASD to move.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a movement key or a one-shot action.
// At most one of the results is non-zero.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, core.Action) {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp, core.ActionNone
	case key.Matches(msg, k.Down):
		return core.KeyDown, core.ActionNone
	case key.Matches(msg, k.Left):
		return core.KeyLeft, core.ActionNone
	case key.Matches(msg, k.Right):
		return core.KeyRight, core.ActionNone
	case key.Matches(msg, k.Pause):
		return 0, core.ActionPause
	case key.Matches(msg, k.Restart):
		return 0, core.ActionRestart
	case key.Matches(msg, k.Quit):
		return 0, core.ActionQuit
	}
	return 0, core.ActionNone
}

// HeldKeys turns key presses into a held-key set. Terminals report presses
// and auto-repeats but never releases, so a key counts as held until its
// hold window runs out.
type HeldKeys struct {
	firstHold  time.Duration
	repeatHold time.Duration
	until      map[core.Key]time.Time
}

// NewHeldKeys creates a tracker with the given hold windows.
func NewHeldKeys(firstHold, repeatHold time.Duration) *HeldKeys {
	return &HeldKeys{
		firstHold:  firstHold,
		repeatHold: repeatHold,
		until:      make(map[core.Key]time.Time),
	}
}

// Press records a press of k at time at. Pressing a direction releases the
// opposite one immediately.
func (h *HeldKeys) Press(k core.Key, at time.Time) {
	if opp := opposite(k); opp != 0 {
		delete(h.until, opp)
	}
	if deadline, ok := h.until[k]; ok && at.Before(deadline) {
		h.until[k] = at.Add(h.repeatHold)
		return
	}
	h.until[k] = at.Add(h.firstHold)
}

// Keys returns the keys held at time at and forgets expired ones.
func (h *HeldKeys) Keys(at time.Time) core.KeySet {
	var set core.KeySet
	for k, deadline := range h.until {
		if at.Before(deadline) {
			set = set.With(k)
			continue
		}
		delete(h.until, k)
	}
	return set
}

// ReleaseAll drops every held key.
func (h *HeldKeys) ReleaseAll() {
	clear(h.until)
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	}
	return 0
}
