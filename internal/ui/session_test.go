package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"loot-grid/assets"
	"loot-grid/internal/catalog"
	"loot-grid/internal/inventory"
)

// Screen coordinates of the default layout on an 80x24 screen with four
// grid rows: the grid starts at column 30, row 3; the trash sits two rows
// below the grid.
const (
	gridX  = 30
	gridY  = 3
	trashX = gridX + 2
	trashY = gridY + 4 + 2
)

func newTestSession(t *testing.T, w, h int) (*Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	cat, err := catalog.New(assets.Loot)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	s, err := New(screen, cat, inventory.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, screen
}

func slotXY(i int) (int, int) {
	return gridX + (i%10)*4 + 1, gridY + i/10
}

func catalogXY(id int) (int, int) {
	return 5, 2 + id
}

func mouse(s *Session, x, y int, b tcell.ButtonMask, m tcell.ModMask) {
	s.handle(tcell.NewEventMouse(x, y, b, m))
	s.refresh()
}

func click(s *Session, x, y int, m tcell.ModMask) {
	mouse(s, x, y, tcell.Button1, m)
	mouse(s, x, y, tcell.ButtonNone, m)
}

func occupied(s *Session) int {
	n := 0
	for _, sl := range s.Coordinator().Slots() {
		if sl.Occupied {
			n++
		}
	}
	return n
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := range w {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestCatalogClickAcquires(t *testing.T) {
	s, _ := newTestSession(t, 80, 24)
	x, y := catalogXY(0)
	click(s, x, y, tcell.ModNone)
	if got := occupied(s); got != 1 {
		t.Fatalf("occupied = %d after click, want 1", got)
	}
	click(s, x, y, tcell.ModShift)
	if got := occupied(s); got != 11 {
		t.Fatalf("occupied = %d after shift-click, want 11", got)
	}
	if got := s.Coordinator().Totals().VolumeUsed; got != 110 {
		t.Errorf("volume = %d, want 110", got)
	}
}

func TestSlotClickDeletesOnlyWithModifier(t *testing.T) {
	s, _ := newTestSession(t, 80, 24)
	s.Coordinator().Acquire(0, 1)
	x, y := slotXY(0)

	click(s, x, y, tcell.ModNone)
	if occupied(s) != 1 {
		t.Fatal("plain click deleted the item")
	}
	click(s, x, y, tcell.ModCtrl)
	if occupied(s) != 0 {
		t.Fatal("ctrl-click did not delete the item")
	}
	s.Coordinator().Acquire(0, 1)
	click(s, x, y, tcell.ModAlt)
	if occupied(s) != 0 {
		t.Fatal("alt-click did not delete the item")
	}
}

func TestDragToTrash(t *testing.T) {
	s, _ := newTestSession(t, 80, 24)
	s.Coordinator().Acquire(1, 1)
	x, y := slotXY(0)

	mouse(s, x, y, tcell.Button1, tcell.ModNone)
	mouse(s, trashX, trashY, tcell.Button1, tcell.ModNone)
	if !s.Coordinator().Highlighted(inventory.TrashTarget) {
		t.Error("trash not highlighted while dragging over it")
	}
	mouse(s, trashX, trashY, tcell.ButtonNone, tcell.ModNone)

	if occupied(s) != 0 {
		t.Error("item not deleted")
	}
	if _, armed := s.Coordinator().Armed(); armed {
		t.Error("source still armed")
	}
	if got := s.Coordinator().Totals().VolumeUsed; got != 0 {
		t.Errorf("volume = %d", got)
	}
}

func TestDragMovesAndSwaps(t *testing.T) {
	s, _ := newTestSession(t, 80, 24)
	s.Coordinator().Acquire(0, 1)
	s.Coordinator().Acquire(3, 1)

	x0, y0 := slotXY(0)
	x15, y15 := slotXY(15)
	mouse(s, x0, y0, tcell.Button1, tcell.ModNone)
	mouse(s, x15, y15, tcell.Button1, tcell.ModNone)
	mouse(s, x15, y15, tcell.ButtonNone, tcell.ModNone)

	if sl, _ := s.Coordinator().Slot(15); !sl.Occupied || sl.Item != 0 {
		t.Fatalf("slot 15 = %+v after move", sl)
	}
	if sl, _ := s.Coordinator().Slot(0); sl.Occupied {
		t.Fatal("slot 0 still occupied after move")
	}

	x1, y1 := slotXY(1)
	mouse(s, x15, y15, tcell.Button1, tcell.ModNone)
	mouse(s, x1, y1, tcell.Button1, tcell.ModNone)
	mouse(s, x1, y1, tcell.ButtonNone, tcell.ModNone)
	s1, _ := s.Coordinator().Slot(1)
	s15, _ := s.Coordinator().Slot(15)
	if s1.Item != 0 || s15.Item != 3 || !s1.Occupied || !s15.Occupied {
		t.Errorf("after swap: slot 1 = %+v, slot 15 = %+v", s1, s15)
	}
}

func TestDragReleasedOutsideCancels(t *testing.T) {
	s, _ := newTestSession(t, 80, 24)
	s.Coordinator().Acquire(0, 1)
	before := s.Coordinator().Slots()

	x, y := slotXY(0)
	mouse(s, x, y, tcell.Button1, tcell.ModNone)
	mouse(s, 78, 20, tcell.Button1, tcell.ModNone)
	mouse(s, 78, 20, tcell.ButtonNone, tcell.ModNone)

	if _, armed := s.Coordinator().Armed(); armed {
		t.Error("source still armed")
	}
	after := s.Coordinator().Slots()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("slot %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestPressOnEmptySlotDoesNotDrag(t *testing.T) {
	s, _ := newTestSession(t, 80, 24)
	x, y := slotXY(3)
	mouse(s, x, y, tcell.Button1, tcell.ModNone)
	mouse(s, trashX, trashY, tcell.Button1, tcell.ModNone)
	if _, armed := s.Coordinator().Armed(); armed {
		t.Error("empty slot armed")
	}
	mouse(s, trashX, trashY, tcell.ButtonNone, tcell.ModNone)
}

func TestLeavingRejectedEntryRestoresName(t *testing.T) {
	s, screen := newTestSession(t, 80, 24)
	x, y := catalogXY(1)
	click(s, x, y, tcell.ModNone)
	click(s, x, y, tcell.ModNone)
	if got := rowText(screen, y); !strings.Contains(got, "This is too large") {
		t.Fatalf("row = %q", got)
	}
	mouse(s, 5, 20, tcell.ButtonNone, tcell.ModNone)
	if got := rowText(screen, y); !strings.Contains(got, "Fairy dragon scale") {
		t.Errorf("row after leaving = %q", got)
	}
}

func TestHoverShowsTooltip(t *testing.T) {
	s, screen := newTestSession(t, 80, 24)
	x, y := catalogXY(2)
	mouse(s, x, y, tcell.ButtonNone, tcell.ModNone)
	tipY := gridY + 4 + 4
	if got := rowText(screen, tipY); !strings.Contains(got, "Small tower bell") {
		t.Fatalf("tooltip row = %q", got)
	}
	mouse(s, 78, 0, tcell.ButtonNone, tcell.ModNone)
	if got := rowText(screen, tipY); strings.Contains(got, "Small tower bell") {
		t.Error("tooltip still shown")
	}
}

func TestWheelAndKeysScroll(t *testing.T) {
	// Two grid rows fit on a 12-row screen.
	s, _ := newTestSession(t, 80, 12)
	mouse(s, gridX+1, gridY, tcell.WheelDown, tcell.ModNone)
	if top, _, _ := s.view.ScrollMetrics(); top != 1 {
		t.Fatalf("top = %d after wheel down, want 1", top)
	}
	s.handle(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	if top, _, _ := s.view.ScrollMetrics(); top != 2 {
		t.Fatalf("top = %d after PgDn, want 2", top)
	}
	s.handle(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	if top, _, _ := s.view.ScrollMetrics(); top != 1 {
		t.Errorf("top = %d after k, want 1", top)
	}
}

func TestQuitKeys(t *testing.T) {
	s, _ := newTestSession(t, 80, 24)
	if s.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) != true {
		t.Error("unbound key ended the session")
	}
	if s.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not end the session")
	}
	if s.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not end the session")
	}
}
