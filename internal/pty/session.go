package pty

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// DefaultKeyDelay separates keys written by Send. Terminal programs read
// input in chunks; a lone escape byte followed too quickly by another key
// is parsed as an escape sequence.
const DefaultKeyDelay = 30 * time.Millisecond

// ErrExited is returned by WaitFor when the program exits before the text
// appears.
var ErrExited = errors.New("program exited")

// keyBytes maps key names, spelled the way Bubble Tea reports them, to the
// bytes a terminal sends.
var keyBytes = map[string][]byte{
	"enter":     {'\r'},
	"backspace": {0x7f},
	"tab":       {'\t'},
	"shift+tab": {0x1b, '[', 'Z'},
	"space":     {' '},
	"up":        {0x1b, '[', 'A'},
	"down":      {0x1b, '[', 'B'},
	"right":     {0x1b, '[', 'C'},
	"left":      {0x1b, '[', 'D'},
	"esc":       {0x1b},
	"ctrl+c":    {0x03},
	"ctrl+d":    {0x04},
	"ctrl+s":    {0x13},
}

// KeyBytes returns the terminal encoding of a named key. Anything that is
// not a known name is sent as literal text.
func KeyBytes(name string) []byte {
	if b, ok := keyBytes[name]; ok {
		return b
	}
	return []byte(name)
}

// Session is a running program and everything it has written so far.
type Session struct {
	// KeyDelay is the pause after each key written by Send.
	KeyDelay time.Duration

	runner Runner
	cmd    *exec.Cmd
	term   io.ReadWriteCloser

	mu      sync.Mutex
	out     bytes.Buffer
	changed chan struct{}
	done    chan struct{}
}

// Start runs cmd in a terminal from r and begins collecting its output.
func Start(ctx context.Context, r Runner, cmd *exec.Cmd, size Size) (*Session, error) {
	term, err := r.Start(ctx, cmd, size)
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	s := &Session{
		KeyDelay: DefaultKeyDelay,
		runner:   r,
		cmd:      cmd,
		term:     term,
		changed:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.read()
	return s, nil
}

// read copies terminal output into the buffer until the program side
// closes. On Linux that surfaces as EIO rather than EOF, so any error ends
// the loop.
func (s *Session) read() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.term.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			close(s.changed)
			s.changed = make(chan struct{})
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Raw returns all output so far, escape sequences included.
func (s *Session) Raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// Output returns all output so far with escape sequences removed.
func (s *Session) Output() string {
	return ansi.Strip(s.Raw())
}

// Send writes each key in order, pausing KeyDelay after each one.
func (s *Session) Send(keys ...string) error {
	for _, k := range keys {
		if _, err := s.term.Write(KeyBytes(k)); err != nil {
			return fmt.Errorf("failed to send %q: %w", k, err)
		}
		if s.KeyDelay > 0 {
			time.Sleep(s.KeyDelay)
		}
	}
	return nil
}

// Type sends text one character at a time.
func (s *Session) Type(text string) error {
	keys := make([]string, 0, len(text))
	for _, r := range text {
		keys = append(keys, string(r))
	}
	return s.Send(keys...)
}

// WaitFor blocks until the stripped output contains text, the program
// exits, or ctx is done.
func (s *Session) WaitFor(ctx context.Context, text string) error {
	for {
		s.mu.Lock()
		found := strings.Contains(ansi.Strip(s.out.String()), text)
		changed := s.changed
		s.mu.Unlock()
		if found {
			return nil
		}

		select {
		case <-changed:
		case <-s.done:
			if strings.Contains(s.Output(), text) {
				return nil
			}
			return fmt.Errorf("waiting for %q: %w", text, ErrExited)
		case <-ctx.Done():
			return fmt.Errorf("waiting for %q: %w", text, ctx.Err())
		}
	}
}

// Resize changes the terminal size. The program sees a window change.
func (s *Session) Resize(size Size) error {
	return s.runner.Resize(s.term, size)
}

// Wait blocks until the program closes its terminal, then reaps the
// process if one was started.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.cmd.Process == nil {
		return nil
	}
	return s.cmd.Wait()
}

// Close releases the terminal. A program still running sees a hangup.
func (s *Session) Close() error {
	return s.term.Close()
}
