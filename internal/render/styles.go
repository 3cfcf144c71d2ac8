package render

import "github.com/gdamore/tcell/v2"

// Styles used by the inventory view. Emoji carry their own colours, so only
// frames and text are tinted.
var (
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleError     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFrame     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAccept    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleIndicator = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleTooltip   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

const (
	glyphTrash      = "🗑"
	glyphScrollUp   = '▲'
	glyphScrollDown = '▼'
)
