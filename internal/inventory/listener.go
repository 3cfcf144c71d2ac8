package inventory

import "loot-grid/internal/catalog"

// Target is a drop destination: a slot, or the trash zone.
type Target struct {
	Slot  int
	Trash bool
}

// SlotTarget returns the target for slot i.
func SlotTarget(i int) Target { return Target{Slot: i} }

// TrashTarget is the trash drop zone.
var TrashTarget = Target{Slot: -1, Trash: true}

// Rejection is emitted when an acquire repetition fails a capacity check.
type Rejection struct {
	ID     catalog.ID
	Reason Reason
}

// TransferKind names a completed transfer.
type TransferKind uint8

const (
	TransferAcquired TransferKind = iota
	TransferMoved
	TransferSwapped
	TransferDeleted
)

func (k TransferKind) String() string {
	switch k {
	case TransferAcquired:
		return "acquired"
	case TransferMoved:
		return "moved"
	case TransferSwapped:
		return "swapped"
	case TransferDeleted:
		return "deleted"
	}
	return "unknown"
}

// TransferEvent describes one completed transfer. From is -1 for acquired
// items; To is -1 for deleted ones.
type TransferEvent struct {
	Kind TransferKind
	Item catalog.ID
	From int
	To   int
}

// ScrollState tells the scroll indicators which way the grid can move.
type ScrollState struct {
	CanScrollUp   bool
	CanScrollDown bool
}

// Listener receives the coordinator's state changes. It is the presentation
// side of the inventory: it owns all visual state and never writes back.
type Listener interface {
	SlotChanged(s Slot)
	RowsChanged(rows int)
	CapacityChanged(t Totals)
	AdmissionRejected(r Rejection)
	HighlightChanged(t Target, on bool)
	TooltipChanged(e *catalog.Entry)
	ScrollChanged(s ScrollState)
	Transferred(ev TransferEvent)
}

// NopListener ignores every notification. Embed it to implement only the
// methods you need.
type NopListener struct{}

func (NopListener) SlotChanged(Slot)              {}
func (NopListener) RowsChanged(int)               {}
func (NopListener) CapacityChanged(Totals)        {}
func (NopListener) AdmissionRejected(Rejection)   {}
func (NopListener) HighlightChanged(Target, bool) {}
func (NopListener) TooltipChanged(*catalog.Entry) {}
func (NopListener) ScrollChanged(ScrollState)     {}
func (NopListener) Transferred(TransferEvent)     {}

// Listeners fans every notification out in order.
type Listeners []Listener

func (ls Listeners) SlotChanged(s Slot) {
	for _, l := range ls {
		l.SlotChanged(s)
	}
}

func (ls Listeners) RowsChanged(rows int) {
	for _, l := range ls {
		l.RowsChanged(rows)
	}
}

func (ls Listeners) CapacityChanged(t Totals) {
	for _, l := range ls {
		l.CapacityChanged(t)
	}
}

func (ls Listeners) AdmissionRejected(r Rejection) {
	for _, l := range ls {
		l.AdmissionRejected(r)
	}
}

func (ls Listeners) HighlightChanged(t Target, on bool) {
	for _, l := range ls {
		l.HighlightChanged(t, on)
	}
}

func (ls Listeners) TooltipChanged(e *catalog.Entry) {
	for _, l := range ls {
		l.TooltipChanged(e)
	}
}

func (ls Listeners) ScrollChanged(s ScrollState) {
	for _, l := range ls {
		l.ScrollChanged(s)
	}
}

func (ls Listeners) Transferred(ev TransferEvent) {
	for _, l := range ls {
		l.Transferred(ev)
	}
}
