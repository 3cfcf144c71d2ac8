// Package catalog holds the fixed, read-only list of item definitions that
// can be transferred into an inventory. An entry's identifier is its
// position in the list.
package catalog

import (
	"errors"
	"fmt"
)

// DefaultGlyph is drawn for records that do not name one.
const DefaultGlyph = "📦"

// ID identifies a catalog entry by its position.
type ID int

// Record is one item definition as supplied by configuration.
type Record struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Glyph       string `yaml:"glyph"`
	Description string `yaml:"description"`
	Volume      int    `yaml:"volume"`
	Mass        int    `yaml:"mass"`
}

// Entry is an immutable, validated catalog record with its identifier.
type Entry struct {
	ID          ID
	Name        string
	Icon        string
	Glyph       string
	Description string
	Volume      int
	Mass        int
}

// Catalog is an ordered, immutable sequence of entries. It is safe for
// concurrent reads because nothing mutates it after New returns.
type Catalog struct {
	entries []Entry
}

var (
	ErrEmpty         = errors.New("catalog: no records")
	ErrInvalidRecord = errors.New("catalog: invalid record")
)

// New validates records and assigns each its positional identifier.
func New(records []Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	entries := make([]Entry, len(records))
	for i, r := range records {
		switch {
		case r.Name == "":
			return nil, fmt.Errorf("%w: record %d has no name", ErrInvalidRecord, i)
		case r.Volume <= 0:
			return nil, fmt.Errorf("%w: %q volume must be positive, got %d", ErrInvalidRecord, r.Name, r.Volume)
		case r.Mass <= 0:
			return nil, fmt.Errorf("%w: %q mass must be positive, got %d", ErrInvalidRecord, r.Name, r.Mass)
		}
		glyph := r.Glyph
		if glyph == "" {
			glyph = DefaultGlyph
		}
		entries[i] = Entry{
			ID:          ID(i),
			Name:        r.Name,
			Icon:        r.Icon,
			Glyph:       glyph,
			Description: r.Description,
			Volume:      r.Volume,
			Mass:        r.Mass,
		}
	}
	return &Catalog{entries: entries}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entry looks up an entry by identifier.
func (c *Catalog) Entry(id ID) (Entry, bool) {
	if id < 0 || int(id) >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[id], true
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
