package ui

import "github.com/gdamore/tcell/v2"

// Action is a keyboard request. Inventory transfers are pointer-only; keys
// only scroll the grid and close the session.
type Action uint8

const (
	ActionNone Action = iota
	ActionScrollUp
	ActionScrollDown
	ActionQuit
)

// keyToAction maps a tcell key event to a session action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyPgUp:
		return ActionScrollUp
	case tcell.KeyDown, tcell.KeyPgDn:
		return ActionScrollDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K':
		return ActionScrollUp
	case 'j', 'J':
		return ActionScrollDown
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
