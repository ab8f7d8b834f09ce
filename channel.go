package csp

import (
	"context"
	"sync"

	"github.com/ezex-io/gopkg/csp/internal/csputil"
	"github.com/ezex-io/gopkg/csp/internal/errors"
	"github.com/ezex-io/gopkg/csp/internal/logger"
)

// Channel is a shared, typed conduit between independently scheduled
// producers and consumers. It supports optional bounded buffering, a
// per-value transform, tail values delivered only after Close, and a
// three-stage lifecycle (Open, Closed, Ended).
//
// A Channel's methods are safe for concurrent use by multiple
// goroutines.
type Channel[T any] struct {
	mu sync.Mutex

	name      string
	transform Transform[T]
	buf       Buffer[T] // nil means unbuffered: puts rendezvous directly with takes

	puts  *deque[producerRecord[T]]
	tails *deque[producerRecord[T]]
	takes *deque[takeRecord[T]]

	state       State
	shouldClose bool

	consuming bool
	producing bool

	pipeline   []*Channel[T]
	pipeCancel context.CancelFunc

	ctx    context.Context
	cancel context.CancelFunc

	log       logger.Logger
	errorSink ErrorSink
	metrics   *channelMetrics
}

// Option configures a Channel at construction time.
type Option[T any] func(*channelConfig[T])

type channelConfig[T any] struct {
	name      string
	capacity  int
	buffer    Buffer[T]
	transform Transform[T]
	logger    logger.Logger
	errorSink ErrorSink
	metrics   *channelMetrics
}

// WithName sets a human-readable name used in log lines and metric
// labels. If omitted, a random name is generated.
func WithName[T any](name string) Option[T] {
	return func(c *channelConfig[T]) {
		c.name = name
	}
}

// WithCapacity makes the Channel buffered with room for n pending
// values. A capacity of zero (the default) makes the Channel
// unbuffered: a Put only succeeds once a matching Take is waiting.
func WithCapacity[T any](n int) Option[T] {
	return func(c *channelConfig[T]) {
		if n < 0 {
			logger.Global().Warn(errors.ErrNegativeCapacity.Error(), "capacity", n)
			n = 0
		}
		c.capacity = n
	}
}

// WithBuffer installs a custom Buffer implementation in place of the
// default RingBuffer. Supplying a buffer always makes the Channel
// buffered, regardless of WithCapacity.
func WithBuffer[T any](b Buffer[T]) Option[T] {
	return func(c *channelConfig[T]) {
		c.buffer = b
	}
}

// WithTransform installs a per-value transform applied to every put
// value before it becomes available to takers. The default is Identity.
func WithTransform[T any](t Transform[T]) Option[T] {
	return func(c *channelConfig[T]) {
		c.transform = t
	}
}

// WithLogger overrides the Channel's logger. The default logs through
// the package-level global logger.
func WithLogger[T any](l logger.Logger) Option[T] {
	return func(c *channelConfig[T]) {
		c.logger = l
	}
}

// WithErrorSink overrides how the Channel reports errors returned by a
// Produce loop's Producer or a Consume loop's Consumer. The default logs
// at Error level.
func WithErrorSink[T any](sink ErrorSink) Option[T] {
	return func(c *channelConfig[T]) {
		c.errorSink = sink
	}
}

// WithMetrics attaches Prometheus instrumentation to the Channel. See
// RegisterMetrics.
func WithMetrics[T any](m *channelMetrics) Option[T] {
	return func(c *channelConfig[T]) {
		c.metrics = m
	}
}

// New constructs an Open Channel. With no options it is unbuffered and
// passes values through unchanged.
func New[T any](options ...Option[T]) *Channel[T] {
	cfg := &channelConfig[T]{}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.name == "" {
		name, err := csputil.GenerateRandomCode(8, csputil.AlphaNumeric)
		if err != nil {
			name = "channel"
		}
		cfg.name = name
	}

	if cfg.transform == nil {
		cfg.transform = Identity[T]()
	}

	var buf Buffer[T]
	switch {
	case cfg.buffer != nil:
		buf = cfg.buffer
	case cfg.capacity > 0:
		buf = NewRingBuffer[T](cfg.capacity)
	}

	log := cfg.logger
	if log == nil {
		log = logger.Global()
	}

	sink := cfg.errorSink
	if sink == nil {
		sink = defaultErrorSink(log)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Channel[T]{
		name:        cfg.name,
		transform:   cfg.transform,
		buf:         buf,
		puts:        newDeque[producerRecord[T]](),
		tails:       newDeque[producerRecord[T]](),
		takes:       newDeque[takeRecord[T]](),
		state:       Open,
		ctx:         ctx,
		cancel:      cancel,
		log:         log,
		errorSink:   sink,
		metrics:     cfg.metrics,
	}
}

// FromSlice constructs an already-Closed Channel pre-loaded with
// values, equivalent to creating a Channel, putting every element, then
// closing it. Unlike the chain of calls it replaces, it never blocks.
func FromSlice[T any](values []T, options ...Option[T]) *Channel[T] {
	ch := New[T](options...)

	ch.mu.Lock()
	for _, v := range values {
		ch.puts.push(producerRecord[T]{value: v, result: nil})
	}
	ch.state = Closed
	ch.slideLocked()
	ch.mu.Unlock()

	return ch
}

// Name reports the Channel's name, as set by WithName or generated by
// New.
func (c *Channel[T]) Name() string {
	return c.name
}

// State reports the Channel's current lifecycle stage.
func (c *Channel[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Empty reports whether the Channel currently holds no buffered or
// pending-put values.
func (c *Channel[T]) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.emptyLocked()
}

func (c *Channel[T]) emptyLocked() bool {
	if c.buf != nil && !c.buf.Empty() {
		return false
	}

	return c.puts.empty() && c.tails.empty()
}

// Length reports the number of values currently buffered or pending
// delivery (not counting waiting takers).
func (c *Channel[T]) Length() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.puts.length() + c.tails.length()
	if c.buf != nil {
		n += c.buf.Length()
	}

	return n
}

// Size reports the Channel's buffering capacity. Zero means unbuffered,
// or buffered with a Buffer whose Size is zero (unbounded).
func (c *Channel[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buf == nil {
		return 0
	}

	return c.buf.Size()
}

// Done returns a channel that is closed once the Channel reaches the
// Ended state. It never fires more than once.
func (c *Channel[T]) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Put delivers v to the Channel. It blocks until v is accepted by the
// buffer (or matched with a waiting Take, if unbuffered) or ctx is
// cancelled; a put already queued when the Channel closes is still
// delivered. The returned bool reports acceptance: false means the
// Channel was already Closed or Ended when Put was called, or ctx was
// cancelled before v was accepted, in which case v is withdrawn.
func (c *Channel[T]) Put(ctx context.Context, v T) bool {
	c.mu.Lock()

	if c.state != Open {
		c.mu.Unlock()

		return false
	}

	rec := producerRecord[T]{value: v, result: make(chan bool, 1)}
	c.puts.push(rec)
	c.slideLocked()
	c.mu.Unlock()

	select {
	case ok := <-rec.result:
		return ok
	case <-ctx.Done():
		c.mu.Lock()
		removed := c.puts.removeFirst(func(r producerRecord[T]) bool { return r.result == rec.result })
		if removed {
			c.slideLocked()
		}
		c.mu.Unlock()

		if !removed {
			return <-rec.result
		}

		return false
	case <-c.ctx.Done():
		return false
	}
}

// Tail delivers v for delivery after Close but before the Channel
// reaches Ended. Tail values are drained strictly after every
// already-pending put. Calling Tail after the Channel has left the Open
// state always reports false.
func (c *Channel[T]) Tail(ctx context.Context, v T) bool {
	c.mu.Lock()

	if c.state != Open {
		c.mu.Unlock()

		return false
	}

	rec := producerRecord[T]{value: v, result: make(chan bool, 1)}
	c.tails.push(rec)
	c.slideLocked()
	c.mu.Unlock()

	select {
	case ok := <-rec.result:
		return ok
	case <-ctx.Done():
		return false
	case <-c.ctx.Done():
		return false
	}
}

// Take retrieves the next value, blocking until one is available, the
// Channel reaches Ended, or ctx is cancelled. The bool reports whether
// a value was actually delivered; false means the Channel ended or ctx
// was cancelled first.
func (c *Channel[T]) Take(ctx context.Context) (T, bool) {
	c.mu.Lock()

	if c.state == Ended {
		c.mu.Unlock()

		var zero T

		return zero, false
	}

	rec := takeRecord[T]{result: make(chan takeResult[T], 1)}
	c.takes.push(rec)
	c.slideLocked()
	c.mu.Unlock()

	select {
	case res := <-rec.result:
		return res.value, res.ok
	case <-ctx.Done():
		c.mu.Lock()
		removed := c.takes.removeFirst(func(r takeRecord[T]) bool { return r.result == rec.result })
		c.mu.Unlock()

		if !removed {
			res := <-rec.result

			return res.value, res.ok
		}

		var zero T

		return zero, false
	}
}

// Close transitions the Channel out of Open. No further Put or Tail
// calls succeed. Values already queued (including tails) continue to
// drain to waiting takers until the Channel reaches Ended. Close is
// idempotent.
func (c *Channel[T]) Close() {
	c.closeImpl(false)
}

// CloseAll is Close with the pipeline-propagating flag set: once the
// Channel has drained and reached Ended, its registered pipeline
// children (see Pipe) are closed too, after every already-queued value
// has been forwarded to them.
func (c *Channel[T]) CloseAll() {
	c.closeImpl(true)
}

func (c *Channel[T]) closeImpl(all bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Open {
		return
	}

	c.shouldClose = all
	c.state = Closed
	c.log.Debug("channel closed", "name", c.name, "propagate", all)
	c.slideLocked()
}
