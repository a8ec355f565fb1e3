package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/building"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/elevunit"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
)

var Log = logger.GetLogger()

var (
	ErrInvalidRequest = errors.New("invalid passenger request")
	ErrNoBuilding     = errors.New("no building has been created")
	ErrNothingWaiting = errors.New("no passenger waiting")
)

// Assignment records which unit was told to pick a passenger up.
type Assignment struct {
	Passenger *passenger.Passenger
	Unit      int
	Cost      int
	Strategy  simconsts.Strategy
}

type Option func(*Dispatcher)

func WithTieBreaker(tb TieBreaker) Option {
	return func(d *Dispatcher) {
		if tb != nil {
			d.tieBreaker = tb
		}
	}
}

func WithStrategy(strategy simconsts.Strategy) Option {
	return func(d *Dispatcher) {
		if strategy.Valid() {
			d.strategy = strategy
		}
	}
}

// Dispatcher scores every unit for each new request and commits the pickup
// to the cheapest one. Assignment is immediate; travel happens in the unit
// loops.
type Dispatcher struct {
	mu         sync.RWMutex
	building   *building.Building
	strategy   simconsts.Strategy
	tieBreaker TieBreaker
}

// New creates a dispatcher. b may be nil until CreateBuilding is called.
func New(b *building.Building, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		building:   b,
		strategy:   simconsts.SpeedFirst,
		tieBreaker: newTimeSeededCoin(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateBuilding replaces the building. The caller owns starting the new
// building's units and stopping the old ones.
func (d *Dispatcher) CreateBuilding(cfg building.Config) (*building.Building, error) {
	b, err := building.New(cfg)
	if err != nil {
		Log.Error().Err(err).Msg("Refusing to create building")
		return nil, err
	}

	d.mu.Lock()
	d.building = b
	d.mu.Unlock()
	return b, nil
}

func (d *Dispatcher) Building() *building.Building {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.building
}

// SetStrategy applies to requests made after it returns.
func (d *Dispatcher) SetStrategy(strategy simconsts.Strategy) error {
	if !strategy.Valid() {
		return fmt.Errorf("%w: %d", simconsts.ErrUnknownStrategy, strategy)
	}

	d.mu.Lock()
	d.strategy = strategy
	d.mu.Unlock()

	Log.Info().Msgf("Dispatching strategy set to %s", strategy)
	return nil
}

func (d *Dispatcher) Strategy() simconsts.Strategy {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.strategy
}

// AddPassenger queues a passenger at from and commits from as a stop on the
// chosen unit.
func (d *Dispatcher) AddPassenger(from, to int) (Assignment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.building == nil {
		return Assignment{}, ErrNoBuilding
	}
	levels := d.building.Levels()
	if from < 1 || from > levels || to < 1 || to > levels {
		return Assignment{}, fmt.Errorf("%w: levels %d -> %d not in [1, %d]", ErrInvalidRequest, from, to, levels)
	}
	if from == to {
		return Assignment{}, fmt.Errorf("%w: origin and destination are both %d", ErrInvalidRequest, from)
	}

	p := passenger.New(from, to)
	if err := d.building.Enqueue(p); err != nil {
		return Assignment{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return d.assign(p)
}

// Redispatch scores the units again for the oldest passenger waiting at
// level. Nothing calls it on its own: a passenger left behind by a full
// car waits until someone asks.
func (d *Dispatcher) Redispatch(level int) (Assignment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.building == nil {
		return Assignment{}, ErrNoBuilding
	}
	if level < 1 || level > d.building.Levels() {
		return Assignment{}, fmt.Errorf("%w: level %d not in [1, %d]", ErrInvalidRequest, level, d.building.Levels())
	}

	waiting := d.building.Waiting(level)
	if len(waiting) == 0 {
		return Assignment{}, fmt.Errorf("%w: level %d", ErrNothingWaiting, level)
	}
	return d.assign(waiting[0])
}

func (d *Dispatcher) assign(p *passenger.Passenger) (Assignment, error) {
	snaps := d.building.Snapshots()
	index, cost := Choose(d.strategy, snaps, p.Origin, p.Destination, d.building.Levels(), d.tieBreaker)

	if err := d.building.Unit(index).AddDestination(p.Origin); err != nil {
		return Assignment{}, err
	}

	Log.Info().Msgf("Passenger %v assigned to elevator #%d (cost %s, %s)", p, index, costString(cost), d.strategy)
	return Assignment{Passenger: p, Unit: index, Cost: cost, Strategy: d.strategy}, nil
}

// Choose returns the index and cost of the cheapest unit. Each tie flips
// tb between the current best and the challenger. Under PowerSaving, when
// every unit is excluded, the first idle unit is woken up.
func Choose(strategy simconsts.Strategy, snaps []elevunit.Snapshot, from, to, levels int, tb TieBreaker) (int, int) {
	if len(snaps) == 0 {
		return -1, Unreachable
	}

	best, bestCost := 0, Cost(strategy, snaps[0], from, to, levels)
	for i := 1; i < len(snaps); i++ {
		cost := Cost(strategy, snaps[i], from, to, levels)
		switch {
		case cost < bestCost:
			best, bestCost = i, cost
		case cost == bestCost && tb.Flip():
			best = i
		}
	}

	if strategy == simconsts.PowerSaving && bestCost == Unreachable {
		for i, s := range snaps {
			if s.Idle() {
				Log.Debug().Msgf("Every running elevator is full or idle, waking elevator #%d", i)
				return i, Cost(simconsts.SpeedFirst, s, from, to, levels)
			}
		}
	}
	return best, bestCost
}

func costString(cost int) string {
	if cost == Unreachable {
		return "unreachable"
	}
	return fmt.Sprint(cost)
}
