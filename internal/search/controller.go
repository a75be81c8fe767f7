// Package search turns the keystrokes of one input field into debounced
// queries and hands each outcome to a renderer.
//
// A Controller owns its own timer and cancellation token, so several
// searchable fields can live side by side without interfering. Only the
// debounce timer is cancelled by keystrokes; a request that has been issued
// runs to completion, but its response is rendered only while it is the
// latest one issued for the field.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"k8s.io/utils/clock"
)

// DefaultDelay is the settle duration used when none is configured.
const DefaultDelay = 500 * time.Millisecond

// Fetcher runs one query against the backing service.
type Fetcher[T any] func(ctx context.Context, query string) ([]T, error)

// Renderer projects controller outcomes onto a render target. Methods are
// called while the controller lock is held and must not call back into the
// controller.
type Renderer[T any] interface {
	Clear()
	Loading(query string)
	Results(query string, items []T)
	Empty(query string)
	Failed(query string, err error)
}

type State int

const (
	Idle State = iota
	Waiting
	Fetching
	RenderedEmpty
	RenderedResults
	RenderedError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Waiting:
		return "waiting"
	case Fetching:
		return "fetching"
	case RenderedEmpty:
		return "rendered-empty"
	case RenderedResults:
		return "rendered-results"
	case RenderedError:
		return "rendered-error"
	default:
		return "unknown"
	}
}

type Option func(*options)

type options struct {
	delay  time.Duration
	clock  clock.WithDelayedExecution
	logger zerolog.Logger
	ctx    context.Context
}

func WithDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.delay = d
		}
	}
}

func WithClock(c clock.WithDelayedExecution) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithContext sets the parent of the context handed to the fetcher.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type Controller[T any] struct {
	name   string
	delay  time.Duration
	clock  clock.WithDelayedExecution
	fetch  Fetcher[T]
	render Renderer[T]
	logger zerolog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      State
	timer      clock.Timer
	armed      uint64
	generation uint64
	closed     bool
}

// New returns a controller for the field called name. The name labels logs
// and metrics.
func New[T any](name string, fetch Fetcher[T], render Renderer[T], opts ...Option) *Controller[T] {
	o := options{
		delay:  DefaultDelay,
		clock:  clock.RealClock{},
		logger: zerolog.Nop(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(o.ctx)
	return &Controller[T]{
		name:   name,
		delay:  o.delay,
		clock:  o.clock,
		fetch:  fetch,
		render: render,
		logger: o.logger.With().Str("component", "search").Str("field", name).Logger(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Normalize trims surrounding whitespace. Queries are otherwise compared and
// sent exactly as typed.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

func (c *Controller[T]) Name() string {
	return c.name
}

func (c *Controller[T]) Delay() time.Duration {
	return c.delay
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Input handles the current value of the field after a keystroke.
func (c *Controller[T]) Input(raw string) {
	query := Normalize(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if c.stopTimerLocked() {
		debouncedTotal.WithLabelValues(c.name).Inc()
	}

	if query == "" {
		// Clearing also retires whatever request is still in flight.
		c.generation++
		c.state = Idle
		c.render.Clear()
		return
	}

	c.armed++
	token := c.armed
	c.state = Waiting
	c.timer = c.clock.AfterFunc(c.delay, func() {
		go c.fire(token, query)
	})
}

// Close stops the pending timer and cancels requests still in flight.
// Nothing is rendered after Close returns.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimerLocked()
	c.cancel()
}

func (c *Controller[T]) stopTimerLocked() bool {
	if c.timer == nil {
		return false
	}
	stopped := c.timer.Stop()
	c.timer = nil
	return stopped
}

func (c *Controller[T]) fire(token uint64, query string) {
	c.mu.Lock()
	if c.closed || token != c.armed || c.timer == nil {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.generation++
	generation := c.generation
	c.state = Fetching
	c.render.Loading(query)
	c.mu.Unlock()

	requestsTotal.WithLabelValues(c.name).Inc()
	c.logger.Debug().Str("query", query).Uint64("generation", generation).Msg("search issued")
	items, err := c.fetch(c.ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if generation != c.generation {
		staleTotal.WithLabelValues(c.name).Inc()
		c.logger.Debug().Str("query", query).Uint64("generation", generation).Msg("dropping stale response")
		return
	}

	var outcome State
	switch {
	case err != nil:
		outcome = RenderedError
		c.logger.Warn().Err(err).Str("query", query).Msg("search failed")
		c.render.Failed(query, err)
	case len(items) == 0:
		outcome = RenderedEmpty
		c.render.Empty(query)
	default:
		outcome = RenderedResults
		c.render.Results(query, items)
	}
	if c.timer == nil {
		c.state = outcome
	}
}
