package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionDot                     // Left arrow - enter a dot, marker steps left
	ActionDash                    // Right arrow - enter a dash, marker steps right
	ActionSubmit                  // Enter - check the entered code (also starts play from intro)
	ActionNewTarget               // R - launch a new random target
	ActionUp                      // Up/k - menu navigation
	ActionDown                    // Down/j - menu navigation
	ActionBack                    // B - go back to menu
	ActionRestart                 // R after game over - start a new game
	ActionQuit                    // Q, Ctrl+C - exit game/session
	ActionPause                   // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDot:
		return "Dot"
	case ActionDash:
		return "Dash"
	case ActionSubmit:
		return "Submit"
	case ActionNewTarget:
		return "NewTarget"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Sequence keeps dot, dash, submit and new-target presses in arrival
	// order. Several key presses can land between two ticks, and what a
	// submit judges depends on which symbols came before it.
	Sequence []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Sequenced reports whether the action is queued in Sequence.
func (a Action) Sequenced() bool {
	switch a {
	case ActionDot, ActionDash, ActionSubmit, ActionNewTarget:
		return true
	}
	return false
}

// Set marks an action as triggered for this frame.
// Sequenced actions are also queued in order.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.Sequenced() {
		f.Sequence = append(f.Sequence, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Sequence = f.Sequence[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Sequence = append(clone.Sequence, f.Sequence...)
	return clone
}
