package ui

import (
	"github.com/gdamore/tcell/v2"

	"loot-grid/internal/catalog"
	"loot-grid/internal/inventory"
	"loot-grid/internal/render"
)

// Gestures receives the normalized gesture events a pointer produces.
// *inventory.Coordinator implements it.
type Gestures interface {
	OnHoverEnter(id catalog.ID)
	OnHoverLeave()
	OnDragStart(slot int)
	OnDragEnter(t inventory.Target)
	OnDragLeave(t inventory.Target)
	OnDrop(t inventory.Target)
	OnDragEnd()
	OnSlotClick(slot int, modifierHeld bool)
	OnCatalogClick(id catalog.ID, bulkModifierHeld bool) inventory.AcquireResult
}

// Surface is the part of the view the pointer needs. *render.View
// implements it.
type Surface interface {
	HitTest(x, y int) render.Hit
	SlotItem(i int) (catalog.Entry, bool)
	ResetStatus(id catalog.ID)
	SetDragging(e *catalog.Entry, x, y int)
	ScrollBy(n int)
}

// Modifier keys. Many terminals swallow ctrl-click, so alt works for
// deleting too.
const (
	deleteMods = tcell.ModCtrl | tcell.ModAlt
	bulkMods   = tcell.ModShift
)

// pointer turns raw mouse events into hover, click and drag gestures.
// A drag starts when the primary button is pressed on an occupied slot and
// the pointer then leaves that slot with the button still held.
type pointer struct {
	gestures Gestures
	surface  Surface

	held      bool
	press     render.Hit
	pressMods tcell.ModMask
	dragging  bool
	over      render.Hit
}

func newPointer(g Gestures, s Surface) *pointer {
	return &pointer{gestures: g, surface: s}
}

// handle processes one mouse event.
func (p *pointer) handle(ev *tcell.EventMouse) {
	x, y := ev.Position()
	hit := p.surface.HitTest(x, y)
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		p.surface.ScrollBy(-1)
		return
	case buttons&tcell.WheelDown != 0:
		p.surface.ScrollBy(1)
		return
	}

	primary := buttons&tcell.Button1 != 0
	switch {
	case primary && !p.held:
		p.held = true
		p.press = hit
		p.pressMods = ev.Modifiers()
		p.hover(hit)
	case primary && p.held:
		p.drag(hit, x, y)
	case !primary && p.held:
		p.release(hit, ev.Modifiers())
	default:
		p.hover(hit)
	}
}

func (p *pointer) drag(hit render.Hit, x, y int) {
	if !p.dragging {
		if hit == p.press || p.press.Kind != render.HitSlot {
			return
		}
		e, ok := p.surface.SlotItem(p.press.Index)
		if !ok {
			return
		}
		p.hover(render.Hit{})
		p.gestures.OnDragStart(p.press.Index)
		p.dragging = true
		p.surface.SetDragging(&e, x, y)
		p.over = p.press
	}

	e, _ := p.surface.SlotItem(p.press.Index)
	p.surface.SetDragging(&e, x, y)
	if hit == p.over {
		return
	}
	if t, ok := p.over.Target(); ok {
		p.gestures.OnDragLeave(t)
	}
	if t, ok := hit.Target(); ok {
		p.gestures.OnDragEnter(t)
	}
	p.over = hit
}

func (p *pointer) release(hit render.Hit, mods tcell.ModMask) {
	p.held = false
	if p.dragging {
		p.dragging = false
		p.surface.SetDragging(nil, 0, 0)
		if t, ok := hit.Target(); ok {
			p.gestures.OnDrop(t)
		} else {
			p.gestures.OnDragEnd()
		}
		p.over = render.Hit{}
		p.hover(hit)
		return
	}
	if hit == p.press {
		p.click(hit, p.pressMods|mods)
	}
	p.hover(hit)
}

func (p *pointer) click(hit render.Hit, mods tcell.ModMask) {
	switch hit.Kind {
	case render.HitCatalog:
		p.gestures.OnCatalogClick(hit.CatalogID(), mods&bulkMods != 0)
	case render.HitSlot:
		p.gestures.OnSlotClick(hit.Index, mods&deleteMods != 0)
		if _, ok := p.surface.SlotItem(hit.Index); !ok {
			p.over = render.Hit{}
		}
	case render.HitScrollUp:
		p.surface.ScrollBy(-1)
	case render.HitScrollDown:
		p.surface.ScrollBy(1)
	}
}

// hover moves the pointer onto hit, showing or hiding the tooltip. Leaving
// a catalog entry restores its name if a rejection replaced it.
func (p *pointer) hover(hit render.Hit) {
	if hit == p.over {
		return
	}
	switch p.over.Kind {
	case render.HitCatalog:
		p.gestures.OnHoverLeave()
		p.surface.ResetStatus(p.over.CatalogID())
	case render.HitSlot:
		p.gestures.OnHoverLeave()
	}
	p.over = hit
	switch hit.Kind {
	case render.HitCatalog:
		p.gestures.OnHoverEnter(hit.CatalogID())
	case render.HitSlot:
		if e, ok := p.surface.SlotItem(hit.Index); ok {
			p.gestures.OnHoverEnter(e.ID)
		}
	}
}
