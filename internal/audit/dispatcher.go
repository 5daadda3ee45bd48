package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Event struct {
	RequestID string
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Recorder accepts audit events without blocking the caller.
type Recorder interface {
	Dispatch(ev Event)
}

// Discard is a Recorder that drops every event.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Dispatch(Event) {}

const (
	queueSize    = 100
	writeTimeout = 5 * time.Second
)

type Dispatcher struct {
	logger *Logger
	log    *slog.Logger
	queue  chan Event

	onDrop func()

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

type DispatcherOption func(*Dispatcher)

// WithDropHook is called every time an event is discarded because the
// queue is full or the dispatcher is closed.
func WithDropHook(fn func()) DispatcherOption {
	return func(d *Dispatcher) { d.onDrop = fn }
}

func NewDispatcher(logger *Logger, log *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, queueSize),
		onDrop: func() {},
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.logger.Log(ctx, ev); err != nil {
			d.log.Error("audit write failed",
				"action", ev.Action,
				"entity", ev.Entity,
				"error", err,
			)
		}
		cancel()
	}
}

// Dispatch never blocks: a full queue drops the event so the API keeps
// answering.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ev, "closed")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.drop(ev, "queue_full")
	}
}

func (d *Dispatcher) drop(ev Event, reason string) {
	d.onDrop()
	d.log.Warn("audit event dropped",
		"action", ev.Action,
		"entity", ev.Entity,
		"reason", reason,
	)
}

// Close stops accepting events and waits until the queue is drained or ctx
// is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
