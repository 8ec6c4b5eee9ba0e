package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionMute           // M - toggle audio
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// Tap is a discrete pointer press in screen cell coordinates.
type Tap struct {
	X, Y int
}

// Point converts the tap to simulation space, targeting the cell center.
func (t Tap) Point() Vec2 {
	return Vec2{X: float64(t.X) + 0.5, Y: float64(t.Y) + 0.5}
}

// InputFrame represents the input state for a single simulation tick:
// all actions triggered during the frame plus any taps, in arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Taps    []Tap
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

// AddTap queues a tap for this frame.
func (f *InputFrame) AddTap(x, y int) {
	f.Taps = append(f.Taps, Tap{X: x, Y: y})
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
}
