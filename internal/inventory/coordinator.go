// Package inventory implements the item grid: capacity accounting, the slot
// grid with its row growth and trim policies, and the coordinator that
// arbitrates every transfer between the catalog, slots and the trash.
//
// All calls are expected from a single event-handling goroutine. A gesture
// runs to completion before the next one starts, so nothing here locks.
package inventory

import (
	"fmt"
	"log/slog"

	"loot-grid/internal/catalog"
)

// Defaults used when Options leaves a field at zero.
const (
	DefaultRowSize   = 10
	DefaultMinRows   = 4
	DefaultMaxVolume = 1000
	DefaultMaxMass   = 5000
)

// Options configures a Coordinator.
type Options struct {
	RowSize   int
	MinRows   int
	MaxVolume int
	MaxMass   int
	Listener  Listener
	Logger    *slog.Logger
}

// AcquireResult reports how many copies were placed and, if the run stopped
// early, which constraint failed.
type AcquireResult struct {
	ID        catalog.ID
	Requested int
	Placed    int
	Reason    Reason
}

// Complete reports whether every requested copy was placed.
func (r AcquireResult) Complete() bool { return r.Reason == ReasonNone }

// Coordinator is the only writer of grid and capacity state.
type Coordinator struct {
	catalog  *catalog.Catalog
	grid     *Grid
	capacity *Capacity
	listener Listener
	logger   *slog.Logger

	armed      int // -1 when idle
	highlights map[Target]bool
}

// NewCoordinator builds an empty inventory over cat.
func NewCoordinator(cat *catalog.Catalog, opts Options) (*Coordinator, error) {
	if opts.RowSize == 0 {
		opts.RowSize = DefaultRowSize
	}
	if opts.MinRows == 0 {
		opts.MinRows = DefaultMinRows
	}
	if opts.MaxVolume == 0 {
		opts.MaxVolume = DefaultMaxVolume
	}
	if opts.MaxMass == 0 {
		opts.MaxMass = DefaultMaxMass
	}
	if opts.Listener == nil {
		opts.Listener = NopListener{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	grid, err := NewGrid(opts.RowSize, opts.MinRows)
	if err != nil {
		return nil, err
	}
	capacity, err := NewCapacity(opts.MaxVolume, opts.MaxMass)
	if err != nil {
		return nil, err
	}
	return &Coordinator{
		catalog:    cat,
		grid:       grid,
		capacity:   capacity,
		listener:   opts.Listener,
		logger:     opts.Logger,
		armed:      -1,
		highlights: make(map[Target]bool),
	}, nil
}

// Catalog returns the shared catalog.
func (c *Coordinator) Catalog() *catalog.Catalog { return c.catalog }

// Rows returns the current row count.
func (c *Coordinator) Rows() int { return c.grid.Rows() }

// RowSize returns the number of slots per row.
func (c *Coordinator) RowSize() int { return c.grid.RowSize() }

// Slots returns a snapshot of every slot.
func (c *Coordinator) Slots() []Slot { return c.grid.Slots() }

// Slot returns a snapshot of slot i.
func (c *Coordinator) Slot(i int) (Slot, error) { return c.grid.Slot(i) }

// Totals returns the capacity snapshot.
func (c *Coordinator) Totals() Totals { return c.capacity.Totals() }

// Armed returns the armed drag source, if any.
func (c *Coordinator) Armed() (int, bool) { return c.armed, c.armed >= 0 }

// Highlighted reports whether t is currently shown as an accept zone.
func (c *Coordinator) Highlighted(t Target) bool { return c.highlights[t] }

// Sync pushes the complete current state to the listener. Call it once the
// presentation side is ready to draw.
func (c *Coordinator) Sync() {
	c.listener.RowsChanged(c.grid.Rows())
	for _, s := range c.grid.Slots() {
		c.listener.SlotChanged(s)
	}
	c.listener.CapacityChanged(c.capacity.Totals())
}

// BeginDrag arms slot as the drag source. Any previously armed source is
// released first.
func (c *Coordinator) BeginDrag(slot int) error {
	s, err := c.grid.Slot(slot)
	if err != nil {
		return err
	}
	if !s.Occupied {
		return fmt.Errorf("%w: cannot drag slot %d", ErrSlotEmpty, slot)
	}
	c.endGesture()
	c.armed = slot
	c.logger.Debug("drag armed", "slot", slot, "item", s.Item)
	return nil
}

// DragEnter marks t as an accept zone. Any slot or the trash is a valid
// target while a source is armed; the source itself is never highlighted.
func (c *Coordinator) DragEnter(t Target) error {
	if c.armed < 0 {
		return ErrNoArmedSource
	}
	if err := c.validTarget(t); err != nil {
		return err
	}
	if !t.Trash && t.Slot == c.armed {
		return nil
	}
	if !c.highlights[t] {
		c.highlights[t] = true
		c.listener.HighlightChanged(t, true)
	}
	return nil
}

// DragLeave removes the accept highlight from t.
func (c *Coordinator) DragLeave(t Target) {
	if c.highlights[t] {
		delete(c.highlights, t)
		c.listener.HighlightChanged(t, false)
	}
}

// Drop completes the armed gesture on t. The trash deletes the source; an
// occupied slot swaps with it; an empty slot receives it.
func (c *Coordinator) Drop(t Target) error {
	if c.armed < 0 {
		c.logger.Warn("drop refused", "error", ErrNoArmedSource)
		return ErrNoArmedSource
	}
	if err := c.validTarget(t); err != nil {
		return err
	}
	src := c.armed

	if t.Trash {
		if err := c.Delete(src); err != nil {
			return err
		}
		c.endGesture()
		return nil
	}

	dst := t.Slot
	if dst == src {
		c.endGesture()
		return nil
	}

	if c.grid.occupied[dst] {
		c.grid.swap(src, dst)
		c.listener.SlotChanged(c.grid.slot(src))
		c.listener.SlotChanged(c.grid.slot(dst))
		c.listener.Transferred(TransferEvent{Kind: TransferSwapped, Item: c.grid.items[dst], From: src, To: dst})
		c.logger.Debug("swapped", "from", src, "to", dst)
	} else {
		id := c.grid.items[src]
		c.grid.place(dst, id)
		c.grid.clear(src)
		c.listener.SlotChanged(c.grid.slot(src))
		c.listener.SlotChanged(c.grid.slot(dst))
		c.trim()
		c.listener.Transferred(TransferEvent{Kind: TransferMoved, Item: id, From: src, To: dst})
		c.logger.Debug("moved", "item", id, "from", src, "to", dst)
	}
	c.endGesture()
	return nil
}

// EndDrag cancels the gesture without touching the grid.
func (c *Coordinator) EndDrag() {
	c.endGesture()
}

// Delete empties slot and releases its entry's volume and mass.
func (c *Coordinator) Delete(slot int) error {
	s, err := c.grid.Slot(slot)
	if err != nil {
		return err
	}
	if !s.Occupied {
		c.logger.Warn("delete refused", "slot", slot, "error", ErrSlotEmpty)
		return fmt.Errorf("%w: cannot delete slot %d", ErrSlotEmpty, slot)
	}
	entry, ok := c.catalog.Entry(s.Item)
	if !ok {
		return fmt.Errorf("%w: slot %d holds %d", ErrUnknownItem, slot, s.Item)
	}
	if err := c.capacity.Release(entry); err != nil {
		c.logger.Warn("delete refused", "slot", slot, "error", err)
		return err
	}
	c.grid.clear(slot)
	if c.armed == slot {
		c.endGesture()
	}

	c.listener.TooltipChanged(nil)
	c.listener.SlotChanged(c.grid.slot(slot))
	c.listener.CapacityChanged(c.capacity.Totals())
	c.trim()
	c.listener.Transferred(TransferEvent{Kind: TransferDeleted, Item: s.Item, From: slot, To: -1})
	c.logger.Debug("deleted", "item", s.Item, "slot", slot)
	return nil
}

// Acquire places count copies of catalog entry id into the first empty
// slots. It stops at the first copy that does not fit, leaving everything
// placed so far in place.
func (c *Coordinator) Acquire(id catalog.ID, count int) (AcquireResult, error) {
	res := AcquireResult{ID: id, Requested: count}
	entry, ok := c.catalog.Entry(id)
	if !ok {
		return res, fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}
	if count < 1 {
		return res, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	for range count {
		if reason := c.capacity.Check(entry); reason != ReasonNone {
			res.Reason = reason
			c.listener.AdmissionRejected(Rejection{ID: id, Reason: reason})
			c.logger.Debug("admission rejected", "item", entry.Name, "reason", reason.String(), "placed", res.Placed)
			return res, nil
		}
		emptyBefore := c.grid.EmptyCount()
		slot, ok := c.grid.FirstEmptySlot()
		if !ok {
			c.logger.Warn("acquire refused", "item", entry.Name, "error", ErrGridFull)
			return res, ErrGridFull
		}
		if err := c.capacity.Admit(entry); err != nil {
			return res, err
		}
		c.grid.place(slot, id)

		c.listener.SlotChanged(c.grid.slot(slot))
		c.listener.CapacityChanged(c.capacity.Totals())
		if c.grid.Grow(emptyBefore) {
			c.listener.RowsChanged(c.grid.Rows())
		}
		res.Placed++
		c.listener.Transferred(TransferEvent{Kind: TransferAcquired, Item: id, From: -1, To: slot})
	}
	c.logger.Debug("acquired", "item", entry.Name, "count", res.Placed)
	return res, nil
}

// trim runs the row-trim policy and reports a row count change.
func (c *Coordinator) trim() {
	if c.grid.Trim() > 0 {
		c.listener.RowsChanged(c.grid.Rows())
	}
}

// endGesture returns to idle and clears every highlight.
func (c *Coordinator) endGesture() {
	for t := range c.highlights {
		delete(c.highlights, t)
		c.listener.HighlightChanged(t, false)
	}
	c.armed = -1
}

func (c *Coordinator) validTarget(t Target) error {
	if t.Trash {
		return nil
	}
	if !c.grid.inRange(t.Slot) {
		return fmt.Errorf("%w: target %d", ErrSlotOutOfRange, t.Slot)
	}
	return nil
}
