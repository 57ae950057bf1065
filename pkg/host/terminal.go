package host

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Terminal puts stdin into raw mode and delivers every byte read on a
// channel. Only the stepping loop should consume the channel.
type Terminal struct {
	in           *os.File
	fd           int
	keys         chan byte
	stopCh       chan struct{}
	stopped      sync.Once
	oldTermState *term.State
}

// NewTerminal creates a terminal reader for in, normally os.Stdin.
func NewTerminal(in *os.File) *Terminal {
	return &Terminal{
		in:     in,
		fd:     int(in.Fd()),
		keys:   make(chan byte, 16),
		stopCh: make(chan struct{}),
	}
}

// IsTerminal reports whether the input is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// Start switches the terminal to raw mode and begins reading. Call Stop to
// restore the previous mode.
func (t *Terminal) Start() error {
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.oldTermState = oldState

	go t.readLoop(t.in)
	return nil
}

// Keys returns the channel of raw input bytes. It is closed when the input
// reaches EOF or fails.
func (t *Terminal) Keys() <-chan byte {
	return t.keys
}

// Size returns the terminal dimensions in character cells.
func (t *Terminal) Size() (width, height int, err error) {
	return term.GetSize(t.fd)
}

// Stop ends delivery and restores the terminal. A read already blocked on
// the input is abandoned.
func (t *Terminal) Stop() {
	t.stopped.Do(func() {
		close(t.stopCh)
	})
	if t.oldTermState != nil {
		_ = term.Restore(t.fd, t.oldTermState)
		t.oldTermState = nil
	}
}

func (t *Terminal) readLoop(r io.Reader) {
	defer close(t.keys)
	buf := make([]byte, 16)

	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case t.keys <- b:
			case <-t.stopCh:
				return
			}
		}
		if err != nil {
			return
		}
	}
}
