package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shapestorm/internal/core"
)

// KeyMapper translates terminal input into simulation input frames.
// Shapes are targeted with the mouse; the keyboard carries the session
// controls (pause, restart, quit); mute is handled by the model directly.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey records a key press into the frame. Returns true when the key
// means quit, which the model handles itself.
func (k *KeyMapper) MapKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "p", "esc":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	case "enter":
		frame.Set(core.ActionConfirm)
	}
	return false
}

// MapMouse records a left-button press as a tap at the cell under the
// pointer. Motion and release events are ignored.
func (k *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	frame.AddTap(msg.X, msg.Y)
}
