// Package ssh adapts a gliderlabs SSH session into a terminal that tcell
// can draw an inventory on.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of one SSH channel. Keyboard and
// mouse input arrive on the channel's stdin; rendered frames go to stdout.
type SessionTty struct {
	session gossh.Session

	mu       sync.Mutex
	window   gossh.Window
	winCh    <-chan gossh.Window
	onResize func()
	watching bool
}

// NewSessionTty wraps s. pty carries the initial window size and winCh the
// window-change requests that follow.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the SSH handler, and writes are not buffered.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to run after every window change. The first
// call starts the goroutine that drains window changes until the client
// disconnects; later calls only replace cb.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
