package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, Up, W, left click, Enter - flap / start / restart
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputSource identifies which physical surface produced an action.
// All sources are equivalent triggers; the source is only kept for logs
// and traces.
type InputSource int

const (
	SourceKey     InputSource = iota // keyboard activation key
	SourcePointer                    // mouse click / tap on the play surface
	SourceButton                     // the explicit start control
)

// String returns a human-readable name for the source.
func (s InputSource) String() string {
	switch s {
	case SourceKey:
		return "key"
	case SourcePointer:
		return "pointer"
	case SourceButton:
		return "button"
	default:
		return "unknown"
	}
}
