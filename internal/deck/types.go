package deck

import "fmt"

// Item is a browsable record. The engine only relies on its key; every other
// field belongs to the presentation layer.
type Item interface {
	Key() string
}

// Decision is the outcome of a completed gesture
type Decision int

const (
	// Cancel snaps the card back to center without moving the cursor
	Cancel Decision = iota
	// Accept likes the current item
	Accept
	// Reject passes on the current item
	Reject
)

// String returns the decision name
func (d Decision) String() string {
	switch d {
	case Cancel:
		return "cancel"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// Advances reports whether the decision moves the cursor
func (d Decision) Advances() bool {
	return d == Accept || d == Reject
}

// Mode selects what happens when the cursor runs past the last item
type Mode int

const (
	// Terminating stops at the end of the deck and reports exhaustion
	Terminating Mode = iota
	// Looping wraps back to the first item
	Looping
)

// String returns the mode name used in config files and flags
func (m Mode) String() string {
	switch m {
	case Terminating:
		return "terminating"
	case Looping:
		return "looping"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a config value into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "terminating", "terminate", "":
		return Terminating, nil
	case "looping", "loop":
		return Looping, nil
	default:
		return Terminating, fmt.Errorf("invalid deck mode: %s (must be one of: terminating, looping)", s)
	}
}

// Key is a keyboard shortcut understood by the engine
type Key int

const (
	// KeyLeft rejects the current item (ArrowLeft)
	KeyLeft Key = iota
	// KeyRight accepts the current item (ArrowRight)
	KeyRight
	// KeySpace requests the detail view for the current item
	KeySpace
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	default:
		return fmt.Sprintf("key(%d)", int(k))
	}
}

// ParseKey converts a key name into a Key
func ParseKey(s string) (Key, error) {
	switch s {
	case "left", "ArrowLeft":
		return KeyLeft, nil
	case "right", "ArrowRight":
		return KeyRight, nil
	case "space", "Space", " ":
		return KeySpace, nil
	default:
		return KeyLeft, fmt.Errorf("unknown key: %q", s)
	}
}
