package realtime

import (
	"context"
	"sync"
	"testing"

	"salesops/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = entities.Actor{ID: "u-1", Name: "Alice", Role: entities.RoleSalesExecutive}

type fakeRecorder struct {
	mu        sync.Mutex
	observers int
	published map[string]int
	dropped   map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{published: map[string]int{}, dropped: map[string]int{}}
}

func (f *fakeRecorder) SetObservers(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = n
}

func (f *fakeRecorder) EventPublished(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published[name]++
}

func (f *fakeRecorder) EventDropped(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dropped[name]++
}

func TestHub_Subscribe(t *testing.T) {
	t.Run("rejects anonymous observer", func(t *testing.T) {
		h := NewHub()
		sub, err := h.Subscribe(entities.Actor{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Nil(t, sub)
		assert.Equal(t, 0, h.ObserverCount())
	})

	t.Run("close is idempotent and closes the channel", func(t *testing.T) {
		rec := newFakeRecorder()
		h := NewHub(WithRecorder(rec))
		sub, err := h.Subscribe(alice)
		require.NoError(t, err)
		assert.Equal(t, 1, h.ObserverCount())
		assert.Equal(t, 1, rec.observers)

		sub.Close()
		sub.Close()
		_, open := <-sub.Events()
		assert.False(t, open)
		assert.Equal(t, 0, h.ObserverCount())
		assert.Equal(t, 0, rec.observers)
	})
}

func TestHub_Publish(t *testing.T) {
	t.Run("no observers is a no-op", func(t *testing.T) {
		h := NewHub()
		h.Publish(context.Background(), entities.Event{Name: entities.EventSaleUpdated})
	})

	t.Run("fan-out with monotonic sequence", func(t *testing.T) {
		h := NewHub()
		a, _ := h.Subscribe(alice)
		b, _ := h.Subscribe(entities.Actor{ID: "u-2"})
		defer a.Close()
		defer b.Close()

		h.Publish(context.Background(), entities.Event{Name: entities.EventSaleHandover})
		h.Publish(context.Background(), entities.Event{Name: entities.EventNewProject})

		for _, sub := range []*Subscription{a, b} {
			first := <-sub.Events()
			second := <-sub.Events()
			assert.Equal(t, entities.EventSaleHandover, first.Name)
			assert.Equal(t, entities.EventNewProject, second.Name)
			assert.Equal(t, first.Seq+1, second.Seq)
		}
	})

	t.Run("slow observer drops without blocking", func(t *testing.T) {
		rec := newFakeRecorder()
		h := NewHub(WithBuffer(1), WithRecorder(rec))
		sub, _ := h.Subscribe(alice)
		defer sub.Close()

		for i := 0; i < 3; i++ {
			h.Publish(context.Background(), entities.Event{Name: entities.EventPaymentAdded})
		}

		got := <-sub.Events()
		assert.Equal(t, uint64(1), got.Seq)
		assert.Equal(t, 3, rec.published[entities.EventPaymentAdded])
		assert.Equal(t, 2, rec.dropped[entities.EventPaymentAdded])
	})

	t.Run("concurrent publish keeps per-observer order", func(t *testing.T) {
		h := NewHub(WithBuffer(256))
		sub, _ := h.Subscribe(alice)
		defer sub.Close()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 16; j++ {
					h.Publish(context.Background(), entities.Event{Name: entities.EventSaleUpdated})
				}
			}()
		}
		wg.Wait()

		var last uint64
		for i := 0; i < 128; i++ {
			e := <-sub.Events()
			assert.Greater(t, e.Seq, last)
			last = e.Seq
		}
	})
}
