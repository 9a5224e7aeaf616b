package sim

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
)

// WallClock broadcasts the current time on a fixed interval for display.
// It never touches dispatch state.
type WallClock struct {
	interval time.Duration
	clock    clockz.Clock

	mu   sync.Mutex
	subs map[uuid.UUID]chan time.Time
}

func NewWallClock(interval time.Duration) *WallClock {
	return &WallClock{
		interval: interval,
		clock:    clockz.RealClock,
		subs:     make(map[uuid.UUID]chan time.Time),
	}
}

func (w *WallClock) WithClock(clock clockz.Clock) *WallClock {
	w.clock = clock
	return w
}

// Subscribe returns a channel that always holds the latest tick.
func (w *WallClock) Subscribe() (<-chan time.Time, func()) {
	id := uuid.New()
	ch := make(chan time.Time, 1)

	w.mu.Lock()
	w.subs[id] = ch
	w.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if _, ok := w.subs[id]; ok {
				delete(w.subs, id)
				close(ch)
			}
		})
	}
}

func (w *WallClock) Run(ctx context.Context) error {
	defer w.closeAll()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.clock.After(w.interval):
			w.broadcast(w.clock.Now())
		}
	}
}

func (w *WallClock) broadcast(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		select {
		case <-ch:
		default:
		}
		ch <- now
	}
}

func (w *WallClock) closeAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, ch := range w.subs {
		close(ch)
		delete(w.subs, id)
	}
}
