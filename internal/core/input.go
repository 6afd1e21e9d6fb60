package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends map keyboard, mouse and controller input onto actions.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - held direction
	ActionDown          // S, Down arrow - held direction
	ActionLeft          // A, Left arrow - held direction
	ActionRight         // D, Right arrow - held direction
	ActionFire          // Space, controller button 0, left click
	ActionEscape        // Escape - end the session
	ActionQuit          // Window close, Ctrl+C
)

// AnalogDeadzone is the per-axis magnitude an analog stick must exceed to move.
const AnalogDeadzone = 0.5

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionEscape:
		return "Escape"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// AxisX and AxisY are the analog stick position in [-1, 1].
	// Both are zero when no controller is attached.
	AxisX, AxisY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetAxes records the analog stick position.
func (f *InputFrame) SetAxes(x, y float64) {
	f.AxisX = x
	f.AxisY = y
}

// QuitRequested reports whether the frame asks to end the session.
func (f InputFrame) QuitRequested() bool {
	return f.Has(ActionQuit) || f.Has(ActionEscape)
}

// Clear resets all actions and axes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.AxisX, f.AxisY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.AxisX, clone.AxisY = f.AxisX, f.AxisY
	return clone
}
