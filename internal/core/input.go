package core

// Action represents a semantic input, abstracted from physical keys and taps.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - hop one lane up
	ActionDown           // S, Down arrow - hop one lane down
	ActionConfirm        // Enter, Space - start from the menu
	ActionPause          // P - pause while playing, resume while paused
	ActionResume         // explicit resume
	ActionBack           // B, Escape - home from game over or pause
	ActionRestart        // R - replay after game over
	ActionScores         // Tab - open the scoreboard
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the player did during one frame.
// It holds at most one tap (the last one wins) plus any number of actions.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	tap    Vec
	hasTap bool
	lane   int
	hasLn  bool
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

// TapAt records a tap at a point in world coordinates.
func (f *InputFrame) TapAt(p Vec) {
	f.tap = p
	f.hasTap = true
}

// Tap returns the tap recorded this frame, if any.
func (f InputFrame) Tap() (Vec, bool) {
	return f.tap, f.hasTap
}

// SelectLane requests a direct jump to a lane index (e.g. digit keys).
// The index is clamped by the session, never rejected.
func (f *InputFrame) SelectLane(i int) {
	f.lane = i
	f.hasLn = true
}

// Lane returns the lane requested via SelectLane, if any.
func (f InputFrame) Lane() (int, bool) {
	return f.lane, f.hasLn
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	if f.hasTap || f.hasLn {
		return false
	}
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasTap = false
	f.hasLn = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.tap, clone.hasTap = f.tap, f.hasTap
	clone.lane, clone.hasLn = f.lane, f.hasLn
	return clone
}
