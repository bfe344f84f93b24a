// Package progress draws simple text progress bars for long sampling
// loops.
//
// Bars nest: a loop over curves may contain a loop over parameters,
// each with its own Bar. Only the outermost active bar draws, the inner
// ones count silently, so nested loops never garble the output line.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-isatty"
)

var (
	depth    atomic.Int32
	disabled atomic.Bool
)

// SetDefault globally enables or disables drawing of progress bars.
func SetDefault(enabled bool) { disabled.Store(!enabled) }

// Active returns the number of bars currently open.
func Active() int { return int(depth.Load()) }

// A Bar tracks progress through total steps.
type Bar struct {
	Desc  string
	Total int

	n       int
	w       io.Writer
	forced  bool
	enabled *bool
	width   int
	draw    bool
	closed  bool
	model   progress.Model
}

// Option configures a Bar.
type Option func(*Bar)

// WithOutput makes the bar draw to w even if w is not a terminal.
func WithOutput(w io.Writer) Option {
	return func(b *Bar) {
		b.w = w
		b.forced = true
	}
}

// Enabled forces drawing on or off, independent of SetDefault and of
// whether the output is a terminal. Nested bars stay silent.
func Enabled(on bool) Option {
	return func(b *Bar) { b.enabled = &on }
}

// WithWidth sets the width of the bar in cells.
func WithWidth(width int) Option {
	return func(b *Bar) { b.width = width }
}

// New opens a bar. Every bar must be closed with Done.
func New(desc string, total int, opts ...Option) *Bar {
	b := &Bar{Desc: desc, Total: total, w: os.Stderr, width: 30}
	for _, o := range opts {
		o(b)
	}
	outermost := depth.Add(1) == 1
	switch {
	case !outermost:
	case b.enabled != nil:
		b.draw = *b.enabled
	default:
		b.draw = !disabled.Load() && (b.forced || isTerminal(b.w))
	}
	if b.draw {
		b.model = progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(b.width),
			progress.WithoutPercentage(),
		)
		b.render()
	}
	return b
}

// Drawing reports whether b produces output.
func (b *Bar) Drawing() bool { return b.draw }

// N returns the number of completed steps.
func (b *Bar) N() int { return b.n }

// Incr marks one more step as done.
func (b *Bar) Incr() {
	b.n++
	if b.draw {
		b.render()
	}
}

// Done closes b. It is safe to call Done more than once.
func (b *Bar) Done() {
	if b.closed {
		return
	}
	b.closed = true
	depth.Add(-1)
	if b.draw {
		b.render()
		fmt.Fprintln(b.w)
	}
}

func (b *Bar) fraction() float64 {
	if b.Total <= 0 {
		return 1
	}
	f := float64(b.n) / float64(b.Total)
	if f > 1 {
		f = 1
	}
	return f
}

func (b *Bar) render() {
	fmt.Fprintf(b.w, "\r%s %s %d/%d", b.Desc, b.model.ViewAs(b.fraction()), b.n, b.Total)
}

// Each calls fn for every item and advances a bar named desc. It stops
// at the first error.
func Each[T any](desc string, items []T, fn func(i int, item T) error, opts ...Option) error {
	bar := New(desc, len(items), opts...)
	defer bar.Done()
	for i, item := range items {
		if err := fn(i, item); err != nil {
			return err
		}
		bar.Incr()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
