package world

import (
	"context"

	"github.com/pixil98/go-log"
)

// Clock advances the world by one turn at a time: each tick fires every
// room's tick hook and every living actor's brain exactly once. It
// satisfies the driver's Ticker interface.
type Clock struct {
	reg *Registry
}

// NewClock creates a Clock over the given registry.
func NewClock(reg *Registry) *Clock {
	return &Clock{reg: reg}
}

// Tick runs one turn.
func (c *Clock) Tick(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	fired := 0
	for _, e := range c.reg.All() {
		switch e.Kind {
		case KindRoom:
			if e.Room.Tick != nil {
				e.Room.Tick.TickRoom(e)
				fired++
			}
		case KindActor:
			if e.Alive() && e.Actor.Brain != nil {
				e.Actor.Brain.Act(e)
				fired++
			}
		}
	}

	logger.Infof("world tick: %d hooks fired", fired)
	return nil
}
