package inventory

import (
	"fmt"

	"loot-grid/internal/catalog"
)

// Slot is a snapshot of one grid cell. Index is the row-major position.
type Slot struct {
	Index    int
	Row      int
	Column   int
	Item     catalog.ID
	Occupied bool
}

// Grid is an ordered sequence of fixed-size rows of slots. It never holds
// fewer than minRows rows.
//
// Per-row fill counts and the number of fully empty rows at the tail are
// kept up to date on every place/clear, so the trim policy never rescans
// the grid.
type Grid struct {
	rowSize int
	minRows int

	items    []catalog.ID
	occupied []bool
	rowFill  []int
	empty    int
	trailing int // fully empty rows at the tail, protected region included
}

// NewGrid returns a grid of minRows empty rows.
func NewGrid(rowSize, minRows int) (*Grid, error) {
	if rowSize <= 0 || minRows <= 0 {
		return nil, fmt.Errorf("%w: row size %d, min rows %d", ErrInvalidDimensions, rowSize, minRows)
	}
	g := &Grid{rowSize: rowSize, minRows: minRows}
	for range minRows {
		g.AppendRow()
	}
	return g, nil
}

// RowSize returns the number of slots per row.
func (g *Grid) RowSize() int { return g.rowSize }

// MinRows returns the row count floor.
func (g *Grid) MinRows() int { return g.minRows }

// Rows returns the current row count.
func (g *Grid) Rows() int { return len(g.rowFill) }

// Len returns the number of slots.
func (g *Grid) Len() int { return len(g.occupied) }

// EmptyCount returns the number of empty slots.
func (g *Grid) EmptyCount() int { return g.empty }

// Slot returns a snapshot of slot i.
func (g *Grid) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(g.occupied) {
		return Slot{}, fmt.Errorf("%w: %d of %d", ErrSlotOutOfRange, i, len(g.occupied))
	}
	return g.slot(i), nil
}

func (g *Grid) slot(i int) Slot {
	return Slot{
		Index:    i,
		Row:      i / g.rowSize,
		Column:   i % g.rowSize,
		Item:     g.items[i],
		Occupied: g.occupied[i],
	}
}

// Slots returns snapshots of every slot in row-major order.
func (g *Grid) Slots() []Slot {
	out := make([]Slot, len(g.occupied))
	for i := range g.occupied {
		out[i] = g.slot(i)
	}
	return out
}

// AppendRow adds rowSize empty slots at the end.
func (g *Grid) AppendRow() {
	for range g.rowSize {
		g.items = append(g.items, 0)
		g.occupied = append(g.occupied, false)
	}
	g.rowFill = append(g.rowFill, 0)
	g.empty += g.rowSize
	g.trailing++
}

// RemoveLastRow drops the last row. The row must be empty and the grid must
// stay at or above minRows.
func (g *Grid) RemoveLastRow() error {
	rows := len(g.rowFill)
	if rows <= g.minRows {
		return fmt.Errorf("%w: %d rows", ErrBelowMinRows, rows)
	}
	if g.rowFill[rows-1] != 0 {
		return fmt.Errorf("%w: row %d holds %d", ErrRowNotEmpty, rows-1, g.rowFill[rows-1])
	}
	n := len(g.occupied) - g.rowSize
	g.items = g.items[:n]
	g.occupied = g.occupied[:n]
	g.rowFill = g.rowFill[:rows-1]
	g.empty -= g.rowSize
	g.trailing--
	return nil
}

// FirstEmptySlot returns the lowest empty index in row-major order.
func (g *Grid) FirstEmptySlot() (int, bool) {
	for i, occ := range g.occupied {
		if !occ {
			return i, true
		}
	}
	return 0, false
}

// CountTrailingEmptyRows returns how many fully empty rows sit at the tail,
// never counting rows below index minRows-1.
func (g *Grid) CountTrailingEmptyRows() int {
	return min(g.trailing, len(g.rowFill)-(g.minRows-1))
}

// Trim removes trailing empty rows while at least two are empty and the
// grid is above minRows, leaving one empty row of slack. It returns the
// number of rows removed.
func (g *Grid) Trim() int {
	removed := 0
	for g.CountTrailingEmptyRows() >= 2 && g.Rows() > g.minRows {
		if err := g.RemoveLastRow(); err != nil {
			break
		}
		removed++
	}
	return removed
}

// Grow appends one row when emptyBefore, the empty count measured before an
// insertion, is at most one row's worth.
func (g *Grid) Grow(emptyBefore int) bool {
	if emptyBefore > g.rowSize {
		return false
	}
	g.AppendRow()
	return true
}

// place puts id into the empty slot i.
func (g *Grid) place(i int, id catalog.ID) {
	r := i / g.rowSize
	g.items[i] = id
	g.occupied[i] = true
	g.rowFill[r]++
	g.empty--
	rows := len(g.rowFill)
	if r >= rows-g.trailing {
		g.trailing = rows - 1 - r
	}
}

// clear empties the occupied slot i and returns what it held.
func (g *Grid) clear(i int) catalog.ID {
	r := i / g.rowSize
	id := g.items[i]
	g.items[i] = 0
	g.occupied[i] = false
	g.rowFill[r]--
	g.empty++
	rows := len(g.rowFill)
	if g.rowFill[r] == 0 && r == rows-1-g.trailing {
		for g.trailing < rows && g.rowFill[rows-1-g.trailing] == 0 {
			g.trailing++
		}
	}
	return id
}

// swap exchanges the occupants of two occupied slots.
func (g *Grid) swap(a, b int) {
	g.items[a], g.items[b] = g.items[b], g.items[a]
}

func (g *Grid) inRange(i int) bool { return i >= 0 && i < len(g.occupied) }
