package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want Action
	}{
		{"up arrow", tcell.KeyUp, 0, ActionScrollUp},
		{"page up", tcell.KeyPgUp, 0, ActionScrollUp},
		{"down arrow", tcell.KeyDown, 0, ActionScrollDown},
		{"page down", tcell.KeyPgDn, 0, ActionScrollDown},
		{"k", tcell.KeyRune, 'k', ActionScrollUp},
		{"J", tcell.KeyRune, 'J', ActionScrollDown},
		{"escape", tcell.KeyEscape, 0, ActionQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, ActionQuit},
		{"q", tcell.KeyRune, 'q', ActionQuit},
		{"unbound rune", tcell.KeyRune, 'z', ActionNone},
		{"enter", tcell.KeyEnter, 0, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
			if got := keyToAction(ev); got != tt.want {
				t.Errorf("keyToAction = %d, want %d", got, tt.want)
			}
		})
	}
}
