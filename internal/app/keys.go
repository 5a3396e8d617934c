package app

import "fmt"

// Key is a discrete input the application reacts to. Front ends translate
// their raw key events into Keys; anything unmapped becomes KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyRefresh
	KeyUp
	KeyDown
	KeyTop
	KeyBottom
	KeyPageUp
	KeyPageDown
)

// String returns a human-readable name for the key
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyQuit:
		return "quit"
	case KeyRefresh:
		return "refresh"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyTop:
		return "top"
	case KeyBottom:
		return "bottom"
	case KeyPageUp:
		return "page-up"
	case KeyPageDown:
		return "page-down"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}
