// Package pty drives a program inside a pseudo-terminal. It is used to run
// the cleanselect binary end to end: keys go in as terminal bytes, and the
// rendered screen comes back as text.
package pty

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns and resizes a terminal. Implementations can be swapped
// (creack/pty, or an in-memory pipe for tests).
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// DefaultTerm is the TERM a program sees when CreackPTY.Term is empty.
// Bubble Tea picks its color profile and key decoding from it.
const DefaultTerm = "xterm-256color"

// CreackPTY implements Runner using github.com/creack/pty. The child gets
// its command environment (the parent's when unset) with TERM set to Term
// and Env applied on top.
type CreackPTY struct {
	Term string
	Env  []string
}

var _ Runner = (*CreackPTY)(nil)

// environ builds the child environment from base. Later entries win, which
// is how os/exec resolves duplicate keys.
func (c *CreackPTY) environ(base []string) []string {
	term := c.Term
	if term == "" {
		term = DefaultTerm
	}
	env := make([]string, 0, len(base)+len(c.Env)+1)
	env = append(env, base...)
	env = append(env, "TERM="+term)
	return append(env, c.Env...)
}

// Start implements Runner. It spawns cmd attached to a new terminal of the
// given size and returns the controlling side. The process is killed when
// ctx is done.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	cmd.Env = c.environ(cmd.Env)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	if done := ctx.Done(); done != nil {
		proc := cmd.Process
		go func() {
			<-done
			_ = proc.Kill()
		}()
	}
	return f, nil
}

// Resize implements Runner. The rwc must be the *os.File returned by Start;
// other types are a no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
