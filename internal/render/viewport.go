package render

// Viewport tracks which grid rows are on screen. The grid scrolls one whole
// row at a time.
type Viewport struct {
	Top      int // first visible row
	ViewRows int // rows that fit on screen
	Rows     int // rows in the grid
}

// SetRows records a new grid row count. Growth scrolls down by one row so
// the freshly added row comes into view.
func (v *Viewport) SetRows(rows int) {
	grew := rows > v.Rows && v.Rows > 0
	v.Rows = rows
	if grew {
		v.ScrollBy(1)
		return
	}
	v.clamp()
}

// SetViewRows records how many rows fit on screen.
func (v *Viewport) SetViewRows(n int) {
	if n < 1 {
		n = 1
	}
	v.ViewRows = n
	v.clamp()
}

// ScrollBy moves the viewport by n rows, clamped to the grid.
func (v *Viewport) ScrollBy(n int) {
	v.Top += n
	v.clamp()
}

// Visible reports whether grid row r is on screen, and its offset from the
// top of the grid area.
func (v *Viewport) Visible(r int) (offset int, ok bool) {
	offset = r - v.Top
	return offset, offset >= 0 && offset < v.ViewRows && r < v.Rows
}

// ScreenToRow converts an offset from the top of the grid area to a row.
func (v *Viewport) ScreenToRow(offset int) (int, bool) {
	r := v.Top + offset
	return r, offset >= 0 && offset < v.ViewRows && r < v.Rows
}

// Height returns the number of screen rows the grid occupies.
func (v *Viewport) Height() int {
	return min(v.ViewRows, v.Rows)
}

func (v *Viewport) maxTop() int {
	return max(v.Rows-v.ViewRows, 0)
}

func (v *Viewport) clamp() {
	v.Top = min(max(v.Top, 0), v.maxTop())
}
