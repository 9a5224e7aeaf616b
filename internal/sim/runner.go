package sim

import (
	"ambulance-dispatch-service/internal/dispatch"
	"context"
	"errors"
	"log"
	"time"

	"github.com/zoobzio/clockz"
)

// Ticker advances the position simulation by one step.
// *dispatch.Store satisfies it.
type Ticker interface {
	Tick(ctx context.Context) (bool, error)
}

// Runner drives position ticks on a fixed interval.
type Runner struct {
	ticker   Ticker
	interval time.Duration
	clock    clockz.Clock
}

func NewRunner(ticker Ticker, interval time.Duration) *Runner {
	return &Runner{ticker: ticker, interval: interval, clock: clockz.RealClock}
}

// WithClock swaps the time source, for tests.
func (r *Runner) WithClock(clock clockz.Clock) *Runner {
	r.clock = clock
	return r
}

// Run ticks until ctx is canceled or the store stops.
func (r *Runner) Run(ctx context.Context) error {
	log.Printf("op=sim.run interval=%s", r.interval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.clock.After(r.interval):
		}

		if _, err := r.ticker.Tick(ctx); err != nil {
			if ctx.Err() != nil || errors.Is(err, dispatch.ErrStoreClosed) {
				return nil
			}
			log.Printf("op=sim.tick err=%q", err)
		}
	}
}
