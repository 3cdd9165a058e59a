package realtime

import (
	"context"
	"errors"
	"sync"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultBuffer = 32

// ErrUnauthenticated is returned when subscribing without a known actor.
var ErrUnauthenticated = errors.New("observer must be authenticated")

// Recorder receives hub activity. *metrics.Metrics implements it.
type Recorder interface {
	SetObservers(n int)
	EventPublished(name string)
	EventDropped(name string)
}

// Hub is an in-process observer registry. Publish never blocks: an observer
// whose buffer is full misses the event and is expected to re-fetch state
// when it notices the gap in Seq.
type Hub struct {
	mu        sync.Mutex
	observers map[*Subscription]struct{}
	seq       uint64
	buffer    int
	recorder  Recorder
	log       *zap.Logger
}

var _ interfaces.IEventPublisher = (*Hub)(nil)

type Option func(*Hub)

func WithBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(h *Hub) { h.recorder = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(h *Hub) { h.log = l.Named("realtime.hub") }
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		observers: make(map[*Subscription]struct{}),
		buffer:    defaultBuffer,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscription is one connected observer.
type Subscription struct {
	Actor  entities.Actor
	events chan entities.Event
	hub    *Hub
	once   sync.Once
}

// Events is closed when the subscription is closed.
func (s *Subscription) Events() <-chan entities.Event { return s.events }

// Close unregisters the observer. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}

// Subscribe registers an observer for actor.
func (h *Hub) Subscribe(actor entities.Actor) (*Subscription, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	s := &Subscription{Actor: actor, events: make(chan entities.Event, h.buffer), hub: h}

	h.mu.Lock()
	h.observers[s] = struct{}{}
	n := len(h.observers)
	h.mu.Unlock()

	h.log.Debug("observer connected", zap.String("actor_id", actor.ID), zap.Int("observers", n))
	h.record(func(r Recorder) { r.SetObservers(n) })
	return s, nil
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	delete(h.observers, s)
	close(s.events)
	n := len(h.observers)
	h.mu.Unlock()

	h.log.Debug("observer disconnected", zap.String("actor_id", s.Actor.ID), zap.Int("observers", n))
	h.record(func(r Recorder) { r.SetObservers(n) })
}

// Publish assigns the next sequence number and offers e to every observer.
// Sequence numbers follow the order in which Publish is called.
func (h *Hub) Publish(_ context.Context, e entities.Event) {
	h.mu.Lock()
	h.seq++
	e.Seq = h.seq
	dropped := 0
	for s := range h.observers {
		select {
		case s.events <- e:
		default:
			dropped++
		}
	}
	h.mu.Unlock()

	h.record(func(r Recorder) {
		r.EventPublished(e.Name)
		for i := 0; i < dropped; i++ {
			r.EventDropped(e.Name)
		}
	})
	if dropped > 0 {
		h.log.Warn("slow observers missed event", zap.String("event", e.Name), zap.Uint64("seq", e.Seq), zap.Int("dropped", dropped))
	}
}

// ObserverCount returns the number of connected observers.
func (h *Hub) ObserverCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

func (h *Hub) record(fn func(Recorder)) {
	if h.recorder != nil {
		fn(h.recorder)
	}
}
