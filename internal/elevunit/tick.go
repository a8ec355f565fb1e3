package elevunit

import (
	"context"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simevent"
)

// Tick advances the unit by one simulated step: move at most one level,
// let passengers out, let waiting passengers in, pick the next direction.
func (u *Unit) Tick(ctx context.Context) {
	u.mu.Lock()
	u.rederiveDestinations()

	if u.dests.len() == 0 {
		u.direction, u.pending = simconsts.Idle, simconsts.Idle
		level := u.level
		u.mu.Unlock()

		Log.Debug().Msgf("Elevator #%d is idle", u.index)
		u.events.Push(simevent.Idled(u.index, level))
		return
	}

	moved := u.advance()
	level := u.level
	leaving := u.takeLeaving(level)
	u.dests.remove(level)
	if u.dests.len() == 0 {
		u.direction, u.pending = simconsts.Idle, simconsts.Idle
	}
	heading := u.direction
	u.mu.Unlock()

	if moved {
		Log.Debug().Msgf("Elevator #%d goes %+d to level %d", u.index, heading.Sign(), level)
		u.events.Push(simevent.Moved(u.index, level))
	}

	for _, p := range leaving {
		u.events.Push(simevent.Alighted(u.index, level, p))
		Log.Info().Msgf("A passenger left the elevator #%d at level %d", u.index, level)
		u.dwell(ctx)
	}

	boarded := u.queues.Board(level, func(p *passenger.Passenger) bool {
		return u.admit(level, heading, p)
	})
	for _, p := range boarded {
		u.events.Push(simevent.Boarded(u.index, level, p))
		Log.Info().Msgf("A passenger heading for level %d entered elevator #%d at level %d", p.Destination, u.index, level)
		u.dwell(ctx)
	}

	u.mu.Lock()
	u.decideDirection()
	u.mu.Unlock()
}

// rederiveDestinations makes sure every onboard passenger's level is a stop.
func (u *Unit) rederiveDestinations() {
	for _, p := range u.onboard {
		u.dests.add(p.Destination)
	}
}

// advance moves one level in the current direction and reports whether the
// level changed. A changing or waking unit stays where it is.
func (u *Unit) advance() bool {
	next := u.level + u.direction.Sign()
	if next == u.level || next < 1 || next > u.maxLevel {
		return false
	}
	u.level = next
	return true
}

func (u *Unit) takeLeaving(level int) []*passenger.Passenger {
	var leaving []*passenger.Passenger
	staying := u.onboard[:0]
	for _, p := range u.onboard {
		if p.Destination == level {
			leaving = append(leaving, p)
		} else {
			staying = append(staying, p)
		}
	}
	for i := len(staying); i < len(u.onboard); i++ {
		u.onboard[i] = nil
	}
	u.onboard = staying
	return leaving
}

// admit runs under the building lock for every waiting passenger at level.
// A full car turns passengers away; they stay queued. A moving car only
// takes passengers travelling its way.
func (u *Unit) admit(level int, heading simconsts.Direction, p *passenger.Passenger) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.onboard) >= u.capacity {
		Log.Debug().Msgf("Elevator #%d is full, passenger %v keeps waiting", u.index, p)
		return false
	}
	if heading != simconsts.Idle && p.Direction() != heading {
		return false
	}
	u.onboard = append(u.onboard, p)
	u.dests.add(p.Destination)
	return true
}

func (u *Unit) decideDirection() {
	switch {
	case u.dests.len() == 0:
		u.direction, u.pending = simconsts.Idle, simconsts.Idle

	case u.direction == simconsts.Idle:
		// reversing or waking up
		next := u.pending
		u.pending = simconsts.Idle
		if next == simconsts.Idle || !u.dests.ahead(u.level, next) {
			next = u.heading()
		}
		u.direction = next

	case u.level == u.maxLevel:
		u.direction = simconsts.Down

	case u.level == 1:
		u.direction = simconsts.Up

	case u.dests.ahead(u.level, u.direction):
		// keep going

	default:
		u.pending = u.direction.Opposite()
		u.direction = simconsts.Idle
	}
}

// heading picks the way to the remaining destinations. Idle means the only
// stop left is the current level.
func (u *Unit) heading() simconsts.Direction {
	switch {
	case u.dests.ahead(u.level, simconsts.Up):
		return simconsts.Up
	case u.dests.ahead(u.level, simconsts.Down):
		return simconsts.Down
	default:
		return simconsts.Idle
	}
}

// dwell charges one passenger's door time. Once the context is done the
// remaining dwell is skipped but the tick still completes.
func (u *Unit) dwell(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := pace(ctx, u.passInterval); err != nil {
		Log.Warn().Err(err).Msgf("Elevator #%d dwell cut short", u.index)
	}
}
