package search

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultDepthLimit bounds DepthFirst when no WithDepthLimit option is given.
const DefaultDepthLimit = 10

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by all strategies.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// DepthLimit is the maximum depth DepthFirst pushes; other strategies ignore it.
	DepthLimit int

	// OnFringe receives the frontier size once per iteration, before the pop.
	OnFringe func(size int)

	// OnExpand is called once per expansion (Successors call).
	OnExpand func()

	// Logger receives start and finish events at debug level.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - DepthLimit = DefaultDepthLimit
//   - no-op observers
//   - a disabled logger
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: DefaultDepthLimit,
		OnFringe:   func(int) {},
		OnExpand:   func() {},
		Logger:     zerolog.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthLimit sets the DepthFirst depth bound.
//
//	d >= 0: nodes deeper than d are never pushed (d == 0 tests only the start)
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithFringeObserver registers fn to receive the frontier size before every pop.
// Observers registered by repeated options are all called, in order.
func WithFringeObserver(fn func(size int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnFringe
		o.OnFringe = func(size int) {
			prev(size)
			fn(size)
		}
	}
}

// WithExpansionObserver registers fn to be called at every expansion.
// Observers registered by repeated options are all called, in order.
func WithExpansionObserver(fn func()) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnExpand
		o.OnExpand = func() {
			prev()
			fn()
		}
	}
}

// WithLogger routes start/finish events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
