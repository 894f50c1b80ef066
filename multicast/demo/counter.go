package demo

import (
	"github.com/google/uuid"

	"github.com/krew-solutions/multicast-go/multicast/signals"
)

// ThresholdReachedEvent is delivered to ThresholdReached subscribers.
// Each raise carries a fresh event ID.
type ThresholdReachedEvent struct {
	EventID   uuid.UUID
	Total     int
	Threshold int
}

// Counter owns a ThresholdReached notification slot. Subscribers see
// the slot only through signals.Signal, so they can attach and detach
// but never raise it; raising happens inside Add.
type Counter struct {
	total            int
	threshold        int
	thresholdReached *signals.SignalImp[ThresholdReachedEvent]
}

func NewCounter(threshold int) *Counter {
	return &Counter{
		threshold:        threshold,
		thresholdReached: signals.NewSignal[ThresholdReachedEvent](),
	}
}

func (c *Counter) ThresholdReached() signals.Signal[ThresholdReachedEvent] {
	return c.thresholdReached
}

func (c *Counter) Total() int {
	return c.total
}

// Add advances the counter and raises ThresholdReached when the running
// total crosses the threshold. Raising with no subscribers is a no-op.
func (c *Counter) Add(n int) error {
	crossed := c.total < c.threshold && c.total+n >= c.threshold
	c.total += n
	if !crossed {
		return nil
	}
	return c.thresholdReached.Notify(ThresholdReachedEvent{
		EventID:   uuid.New(),
		Total:     c.total,
		Threshold: c.threshold,
	})
}
