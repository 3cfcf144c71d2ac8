// Package ui runs one interactive inventory session on a tcell screen: it
// polls terminal events, turns mouse input into gestures for the
// coordinator and redraws the view after each one.
package ui

import (
	"cmp"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"loot-grid/internal/catalog"
	"loot-grid/internal/inventory"
	"loot-grid/internal/render"
)

// Session owns one screen, one inventory and its view.
type Session struct {
	screen  tcell.Screen
	coord   *inventory.Coordinator
	view    *render.View
	pointer *pointer
	logger  *slog.Logger
}

// New wires a coordinator to a view on screen. opts.Listener, if set, is
// notified alongside the view.
func New(screen tcell.Screen, cat *catalog.Catalog, opts inventory.Options) (*Session, error) {
	view := render.NewView(screen, cat, cmp.Or(opts.RowSize, inventory.DefaultRowSize))
	if opts.Listener != nil {
		opts.Listener = inventory.Listeners{view, opts.Listener}
	} else {
		opts.Listener = view
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	coord, err := inventory.NewCoordinator(cat, opts)
	if err != nil {
		return nil, err
	}
	screen.EnableMouse()
	s := &Session{
		screen:  screen,
		coord:   coord,
		view:    view,
		pointer: newPointer(coord, view),
		logger:  opts.Logger,
	}
	coord.Sync()
	s.refresh()
	return s, nil
}

// Coordinator returns the session's coordinator.
func (s *Session) Coordinator() *inventory.Coordinator { return s.coord }

// Run processes events until the user quits or the screen closes.
func (s *Session) Run() {
	defer s.screen.Fini()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if !s.handle(ev) {
			s.logger.Debug("session closed", "rows", s.coord.Rows(), "volume", s.coord.Totals().VolumeUsed)
			return
		}
		s.refresh()
	}
}

// handle processes one event and reports whether the session continues.
func (s *Session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.view.Resize()
	case *tcell.EventKey:
		switch keyToAction(ev) {
		case ActionQuit:
			return false
		case ActionScrollUp:
			s.view.ScrollBy(-1)
		case ActionScrollDown:
			s.view.ScrollBy(1)
		}
	case *tcell.EventMouse:
		s.pointer.handle(ev)
	}
	return true
}

// refresh reports the grid scroll position and redraws.
func (s *Session) refresh() {
	s.coord.OnGridScroll(s.view.ScrollMetrics())
	s.view.Draw()
}
