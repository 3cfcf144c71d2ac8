package render

import (
	"loot-grid/internal/catalog"
	"loot-grid/internal/inventory"
)

// HitKind names what lies under a screen cell.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitCatalog
	HitSlot
	HitTrash
	HitScrollUp
	HitScrollDown
)

// Hit is the result of a hit test. Index is the catalog id for HitCatalog
// and the slot index for HitSlot.
type Hit struct {
	Kind  HitKind
	Index int
}

// Target converts a slot or trash hit into a drop target.
func (h Hit) Target() (inventory.Target, bool) {
	switch h.Kind {
	case HitSlot:
		return inventory.SlotTarget(h.Index), true
	case HitTrash:
		return inventory.TrashTarget, true
	}
	return inventory.Target{}, false
}

// HitTest reports what is drawn at screen cell (x, y).
func (v *View) HitTest(x, y int) Hit {
	width := v.rowSize * slotWidth
	inGrid := x >= gridX && x < gridX+width

	switch {
	case x < catalogWidth && y >= listTop && y < listTop+v.catalog.Len():
		return Hit{Kind: HitCatalog, Index: y - listTop}
	case inGrid && y == gridTop-1 && v.scroll.CanScrollUp:
		return Hit{Kind: HitScrollUp}
	case inGrid && y >= gridTop && y < v.downY():
		row, ok := v.viewport.ScreenToRow(y - gridTop)
		if !ok {
			return Hit{}
		}
		i := row*v.rowSize + (x-gridX)/slotWidth
		if i >= len(v.slots) {
			return Hit{}
		}
		return Hit{Kind: HitSlot, Index: i}
	case inGrid && y == v.downY() && v.scroll.CanScrollDown:
		return Hit{Kind: HitScrollDown}
	case x >= gridX && x < gridX+trashWidth && y == v.downY()+2:
		return Hit{Kind: HitTrash}
	}
	return Hit{}
}

// CatalogID converts a catalog hit's index into an identifier.
func (h Hit) CatalogID() catalog.ID { return catalog.ID(h.Index) }
