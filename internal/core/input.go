package core

import "strings"

// Key is a held movement key.
type Key uint8

const (
	KeyUp    Key = 1 << iota // W, Up arrow
	KeyDown                  // S, Down arrow
	KeyLeft                  // A, Left arrow
	KeyRight                 // D, Right arrow
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeySet is the set of movement keys held during one tick.
type KeySet uint8

// Keys builds a set from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s |= KeySet(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	return s&KeySet(k) != 0
}

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | KeySet(k)
}

// String lists the held keys, e.g. "Up+Left".
func (s KeySet) String() string {
	var parts []string
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}

// Action represents a one-shot game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - start a new session after death
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick:
// the movement keys currently held plus any one-shot actions.
type InputFrame struct {
	Keys KeySet

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets keys and actions for the next frame.
func (f *InputFrame) Clear() {
	f.Keys = 0
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
