package core

// Action represents a semantic game intent, abstracted from physical key presses.
// Games react to intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - turn up (Snake)
	ActionDown           // S, Down arrow - turn down (Snake)
	ActionLeft           // A, Left arrow - turn left (Snake)
	ActionRight          // D, Right arrow - turn right (Snake)
	ActionJump           // Space, Up, mouse press - jump (Runner)
	ActionPause          // P, Escape - toggle pause
	ActionRestart        // R - reinitialize the game
	ActionBack           // B, Backspace - leave the game view
	ActionConfirm        // Enter - confirm selection in menu
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
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction resolves an action name as produced by String, case-sensitive.
// Used by scripted runs to replay intents.
func ParseAction(name string) (Action, bool) {
	for a := ActionUp; a <= ActionQuit; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Status is the tri-state lifecycle flag shared by every game.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// TogglePause flips Running and Paused. Over is sticky until reset.
func (s Status) TogglePause() Status {
	switch s {
	case StatusRunning:
		return StatusPaused
	case StatusPaused:
		return StatusRunning
	default:
		return s
	}
}
