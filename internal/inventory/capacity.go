package inventory

import (
	"fmt"

	"loot-grid/internal/catalog"
)

// Reason explains why an entry was not admitted.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonTooLarge
	ReasonTooHeavy
)

func (r Reason) String() string {
	switch r {
	case ReasonTooLarge:
		return "too large"
	case ReasonTooHeavy:
		return "too heavy"
	}
	return "none"
}

// Totals is a read-only snapshot of the capacity state.
type Totals struct {
	VolumeUsed int
	MassUsed   int
	MaxVolume  int
	MaxMass    int
}

// Capacity tracks running volume and mass totals against fixed maxima.
// Totals always equal the sum over occupied slots; only the Coordinator
// calls Admit and Release.
type Capacity struct {
	maxVolume  int
	maxMass    int
	volumeUsed int
	massUsed   int
}

// NewCapacity returns an empty tracker.
func NewCapacity(maxVolume, maxMass int) (*Capacity, error) {
	if maxVolume <= 0 || maxMass <= 0 {
		return nil, fmt.Errorf("%w: volume %d, mass %d", ErrInvalidLimits, maxVolume, maxMass)
	}
	return &Capacity{maxVolume: maxVolume, maxMass: maxMass}, nil
}

// VolumeFits reports whether e's volume fits in what is left.
func (c *Capacity) VolumeFits(e catalog.Entry) bool {
	return c.volumeUsed+e.Volume <= c.maxVolume
}

// MassFits reports whether e's mass fits in what is left.
func (c *Capacity) MassFits(e catalog.Entry) bool {
	return c.massUsed+e.Mass <= c.maxMass
}

// CanAdmit reports whether both constraints accept e.
func (c *Capacity) CanAdmit(e catalog.Entry) bool {
	return c.VolumeFits(e) && c.MassFits(e)
}

// Check returns the first failing constraint for e, volume before mass.
func (c *Capacity) Check(e catalog.Entry) Reason {
	if !c.VolumeFits(e) {
		return ReasonTooLarge
	}
	if !c.MassFits(e) {
		return ReasonTooHeavy
	}
	return ReasonNone
}

// Admit adds e's cost to the totals.
func (c *Capacity) Admit(e catalog.Entry) error {
	if e.Volume < 0 || e.Mass < 0 {
		return fmt.Errorf("%w: %q has negative cost", ErrNegativeTotals, e.Name)
	}
	if !c.CanAdmit(e) {
		return fmt.Errorf("%w: %q is %s", ErrCapacityExceeded, e.Name, c.Check(e))
	}
	c.volumeUsed += e.Volume
	c.massUsed += e.Mass
	return nil
}

// Release subtracts e's cost from the totals.
func (c *Capacity) Release(e catalog.Entry) error {
	if c.volumeUsed-e.Volume < 0 || c.massUsed-e.Mass < 0 {
		return fmt.Errorf("%w: releasing %q from volume %d, mass %d",
			ErrNegativeTotals, e.Name, c.volumeUsed, c.massUsed)
	}
	c.volumeUsed -= e.Volume
	c.massUsed -= e.Mass
	return nil
}

// Totals returns the current snapshot.
func (c *Capacity) Totals() Totals {
	return Totals{
		VolumeUsed: c.volumeUsed,
		MassUsed:   c.massUsed,
		MaxVolume:  c.maxVolume,
		MaxMass:    c.maxMass,
	}
}
