package inventory

import "errors"

// Refused operations. Each leaves grid and capacity state untouched.
var (
	ErrInvalidDimensions = errors.New("inventory: row size and minimum rows must be positive")
	ErrInvalidLimits     = errors.New("inventory: capacity limits must be positive")
	ErrSlotOutOfRange    = errors.New("inventory: slot index out of range")
	ErrSlotEmpty         = errors.New("inventory: slot is empty")
	ErrRowNotEmpty       = errors.New("inventory: last row still holds items")
	ErrBelowMinRows      = errors.New("inventory: cannot shrink below minimum rows")
	ErrGridFull          = errors.New("inventory: no empty slot")
	ErrCapacityExceeded  = errors.New("inventory: capacity exceeded")
	ErrNegativeTotals    = errors.New("inventory: release would make totals negative")
	ErrNoArmedSource     = errors.New("inventory: no drag source armed")
	ErrUnknownItem       = errors.New("inventory: unknown catalog item")
	ErrInvalidCount      = errors.New("inventory: acquire count must be at least 1")
)
