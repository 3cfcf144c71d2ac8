// Package render draws the loot list and inventory grid on a tcell screen.
// View implements inventory.Listener: it keeps a copy of everything the
// coordinator pushes and redraws from that copy, never reading inventory
// state directly.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"loot-grid/internal/catalog"
	"loot-grid/internal/inventory"
)

// Fixed layout metrics, in terminal cells.
const (
	catalogWidth = 28
	listTop      = 2
	gridX        = catalogWidth + 2
	gridTop      = 3
	slotWidth    = 4
	trashWidth   = 10
	footerRows   = 7 // scroll-down, capacity, trash, blank, three tooltip lines
)

// Status texts shown in place of a catalog entry's name after a rejection.
const (
	statusTooLarge = "This is too large"
	statusTooHeavy = "This is too heavy"
)

// View is the terminal presentation of one inventory session.
type View struct {
	screen  tcell.Screen
	catalog *catalog.Catalog
	rowSize int

	slots     []inventory.Slot
	totals    inventory.Totals
	status    map[catalog.ID]string
	highlight map[inventory.Target]bool
	tooltip   *catalog.Entry
	scroll    inventory.ScrollState
	viewport  Viewport

	drag  *catalog.Entry
	dragX int
	dragY int
}

// NewView creates a View for a grid with rowSize slots per row.
func NewView(screen tcell.Screen, cat *catalog.Catalog, rowSize int) *View {
	v := &View{
		screen:    screen,
		catalog:   cat,
		rowSize:   rowSize,
		status:    make(map[catalog.ID]string),
		highlight: make(map[inventory.Target]bool),
	}
	v.Resize()
	return v
}

// Resize recomputes how many grid rows fit on the screen.
func (v *View) Resize() {
	_, h := v.screen.Size()
	v.viewport.SetViewRows(h - gridTop - footerRows)
}

// ScrollBy scrolls the grid area by n rows.
func (v *View) ScrollBy(n int) { v.viewport.ScrollBy(n) }

// ScrollMetrics returns the scroll position, total height and visible
// height of the grid, in rows.
func (v *View) ScrollMetrics() (top, height, view int) {
	return v.viewport.Top, v.viewport.Rows, v.viewport.ViewRows
}

// ResetStatus restores a catalog entry's name after a rejection message.
func (v *View) ResetStatus(id catalog.ID) { delete(v.status, id) }

// SetDragging draws e's glyph under the pointer at (x, y); nil stops it.
func (v *View) SetDragging(e *catalog.Entry, x, y int) {
	v.drag, v.dragX, v.dragY = e, x, y
}

// SlotItem returns the catalog entry held by slot i, as last reported.
func (v *View) SlotItem(i int) (catalog.Entry, bool) {
	if i < 0 || i >= len(v.slots) || !v.slots[i].Occupied {
		return catalog.Entry{}, false
	}
	return v.catalog.Entry(v.slots[i].Item)
}

// ─── inventory.Listener ─────────────────────────────────────────────────────

func (v *View) SlotChanged(s inventory.Slot) {
	if s.Index >= len(v.slots) {
		v.resizeSlots((s.Index/v.rowSize + 1) * v.rowSize)
	}
	v.slots[s.Index] = s
}

func (v *View) RowsChanged(rows int) {
	v.resizeSlots(rows * v.rowSize)
	v.viewport.SetRows(rows)
}

func (v *View) CapacityChanged(t inventory.Totals) { v.totals = t }

func (v *View) AdmissionRejected(r inventory.Rejection) {
	switch r.Reason {
	case inventory.ReasonTooLarge:
		v.status[r.ID] = statusTooLarge
	case inventory.ReasonTooHeavy:
		v.status[r.ID] = statusTooHeavy
	}
}

func (v *View) HighlightChanged(t inventory.Target, on bool) {
	if on {
		v.highlight[t] = true
	} else {
		delete(v.highlight, t)
	}
}

func (v *View) TooltipChanged(e *catalog.Entry)       { v.tooltip = e }
func (v *View) ScrollChanged(s inventory.ScrollState) { v.scroll = s }
func (v *View) Transferred(inventory.TransferEvent)   {}

func (v *View) resizeSlots(n int) {
	if n <= len(v.slots) {
		v.slots = v.slots[:n]
		return
	}
	for i := len(v.slots); i < n; i++ {
		v.slots = append(v.slots, inventory.Slot{Index: i, Row: i / v.rowSize, Column: i % v.rowSize})
	}
}

// ─── drawing ────────────────────────────────────────────────────────────────

// Draw renders the whole view and shows it.
func (v *View) Draw() {
	v.screen.Clear()
	v.drawCatalog()
	v.drawGrid()
	v.drawFooter()
	if v.drag != nil {
		v.putGlyph(v.dragX, v.dragY, v.drag.Glyph, styleText)
	}
	v.screen.Show()
}

func (v *View) drawCatalog() {
	v.drawText(0, 0, "LOOT", styleTitle)
	v.drawHLine(0, catalogWidth, 1, styleFrame)
	for _, e := range v.catalog.Entries() {
		y := listTop + int(e.ID)
		v.putGlyph(1, y, e.Glyph, styleText)
		text, style := e.Name, styleText
		if msg, ok := v.status[e.ID]; ok {
			text, style = msg, styleError
		}
		v.drawText(4, y, runewidth.Truncate(text, catalogWidth-5, "…"), style)
	}
}

func (v *View) drawGrid() {
	width := v.rowSize * slotWidth
	v.drawText(gridX, 0, "INVENTORY", styleTitle)
	v.drawHLine(gridX, gridX+width, 1, styleFrame)

	if v.scroll.CanScrollUp {
		v.screen.SetContent(gridX+width/2, gridTop-1, glyphScrollUp, nil, styleIndicator)
	}
	for i, s := range v.slots {
		off, ok := v.viewport.Visible(s.Row)
		if !ok {
			continue
		}
		x := gridX + s.Column*slotWidth
		y := gridTop + off
		frame := styleFrame
		if v.highlight[inventory.SlotTarget(i)] {
			frame = styleAccept
		}
		v.screen.SetContent(x, y, '[', nil, frame)
		v.screen.SetContent(x+1, y, ' ', nil, frame)
		v.screen.SetContent(x+2, y, ' ', nil, frame)
		if e, ok := v.SlotItem(i); ok {
			v.putGlyph(x+1, y, e.Glyph, frame)
		}
		v.screen.SetContent(x+3, y, ']', nil, frame)
	}
	if v.scroll.CanScrollDown {
		v.screen.SetContent(gridX+width/2, v.downY(), glyphScrollDown, nil, styleIndicator)
	}
}

func (v *View) drawFooter() {
	y := v.downY() + 1
	line := fmt.Sprintf("Volume %d / %d   Mass %d / %d",
		v.totals.VolumeUsed, v.totals.MaxVolume, v.totals.MassUsed, v.totals.MaxMass)
	v.drawText(gridX, y, line, styleText)

	trash := styleFrame
	if v.highlight[inventory.TrashTarget] {
		trash = styleAccept
	}
	y++
	v.screen.SetContent(gridX, y, '[', nil, trash)
	x := v.putGlyph(gridX+1, y, glyphTrash, trash)
	x = v.drawText(x+1, y, "Trash", trash)
	for ; x < gridX+trashWidth-1; x++ {
		v.screen.SetContent(x, y, ' ', nil, trash)
	}
	v.screen.SetContent(gridX+trashWidth-1, y, ']', nil, trash)

	if v.tooltip != nil {
		v.drawTooltip(y + 2)
	}
}

func (v *View) drawTooltip(y int) {
	w, _ := v.screen.Size()
	e := v.tooltip
	v.drawText(0, y, e.Glyph+" "+e.Name, styleTitle)
	v.drawText(0, y+1, runewidth.Truncate(e.Description, w, "…"), styleTooltip)
	v.drawText(0, y+2, fmt.Sprintf("Volume: %d  Mass: %d", e.Volume, e.Mass), styleDim)
}

func (v *View) downY() int { return gridTop + v.viewport.Height() }

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y) and
// returns the column after it.
func (v *View) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return x
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	v.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		v.screen.SetContent(x+1, y, ' ', nil, style)
		return x + 2
	}
	return x + 1
}

// drawText writes text from (x, y) and returns the column after it.
func (v *View) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		v.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

func (v *View) drawHLine(x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		v.screen.SetContent(x, y, '─', nil, style)
	}
}
