package inventory

import "loot-grid/internal/catalog"

// The On* methods are the normalized gesture events raised by the
// presentation side. Refused operations are logged and dropped; a bad
// gesture never leaves partial state behind.

// OnHoverEnter shows the tooltip for catalog entry id.
func (c *Coordinator) OnHoverEnter(id catalog.ID) {
	e, ok := c.catalog.Entry(id)
	if !ok {
		return
	}
	c.listener.TooltipChanged(&e)
}

// OnHoverLeave hides the tooltip.
func (c *Coordinator) OnHoverLeave() {
	c.listener.TooltipChanged(nil)
}

// OnDragStart arms slot as the drag source.
func (c *Coordinator) OnDragStart(slot int) {
	if err := c.BeginDrag(slot); err != nil {
		c.logger.Warn("drag start refused", "slot", slot, "error", err)
	}
}

// OnDragEnter highlights t when a source is armed.
func (c *Coordinator) OnDragEnter(t Target) {
	if err := c.DragEnter(t); err != nil {
		c.logger.Debug("drag enter ignored", "target", t, "error", err)
	}
}

// OnDragLeave removes t's highlight.
func (c *Coordinator) OnDragLeave(t Target) {
	c.DragLeave(t)
}

// OnDrop completes the armed gesture on t.
func (c *Coordinator) OnDrop(t Target) {
	if err := c.Drop(t); err != nil {
		c.logger.Debug("drop ignored", "target", t, "error", err)
	}
}

// OnDragEnd cancels the gesture.
func (c *Coordinator) OnDragEnd() {
	c.EndDrag()
}

// OnSlotClick deletes the slot's item when the modifier is held. A plain
// click does nothing.
func (c *Coordinator) OnSlotClick(slot int, modifierHeld bool) {
	if !modifierHeld {
		return
	}
	if err := c.Delete(slot); err != nil {
		c.logger.Debug("slot click ignored", "slot", slot, "error", err)
	}
}

// OnCatalogClick acquires one copy of id, or a full row's worth when the
// bulk modifier is held.
func (c *Coordinator) OnCatalogClick(id catalog.ID, bulkModifierHeld bool) AcquireResult {
	count := 1
	if bulkModifierHeld {
		count = c.grid.RowSize()
	}
	res, err := c.Acquire(id, count)
	if err != nil {
		c.logger.Warn("acquire refused", "item", id, "error", err)
	}
	return res
}

// OnGridScroll forwards the grid's scroll position to the scroll
// indicators. Inventory state does not depend on it.
func (c *Coordinator) OnGridScroll(scrollTop, scrollHeight, viewHeight int) {
	c.listener.ScrollChanged(ScrollState{
		CanScrollUp:   scrollTop > 0,
		CanScrollDown: scrollTop < scrollHeight-viewHeight,
	})
}
