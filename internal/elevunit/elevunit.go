package elevunit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simevent"
)

var Log = logger.GetLogger()

var (
	ErrInterruptedTick  = errors.New("tick interrupted")
	ErrLevelOutOfRange  = errors.New("level out of range")
	ErrUnitNotIdle      = errors.New("elevator is not idle")
	ErrInvalidUnitShape = errors.New("invalid elevator configuration")
)

// LevelQueues gives a unit exclusive access to the passengers waiting at a
// level. Board offers every waiting passenger, in queue order, to accept and
// removes the ones it takes.
type LevelQueues interface {
	Board(level int, accept func(p *passenger.Passenger) bool) []*passenger.Passenger
}

type EventSink interface {
	Push(e simevent.Event)
}

type Config struct {
	Index         int
	MaxLevel      int
	Capacity      int
	FloorInterval time.Duration
	PassInterval  time.Duration
}

// Unit is one elevator car. Its own loop mutates it every tick; the
// dispatcher only ever adds destinations.
type Unit struct {
	index         int
	maxLevel      int
	capacity      int
	floorInterval time.Duration
	passInterval  time.Duration

	queues LevelQueues
	events EventSink

	mu        sync.Mutex
	level     int
	direction simconsts.Direction
	pending   simconsts.Direction //only meaningful while changing direction
	dests     *floorSet
	onboard   []*passenger.Passenger
}

func NewUnit(cfg Config, queues LevelQueues, events EventSink) (*Unit, error) {
	if cfg.MaxLevel < 1 || cfg.Capacity < 1 || cfg.Index < 0 {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidUnitShape, cfg)
	}
	if queues == nil || events == nil {
		return nil, fmt.Errorf("%w: level queues and event sink are required", ErrInvalidUnitShape)
	}

	return &Unit{
		index:         cfg.Index,
		maxLevel:      cfg.MaxLevel,
		capacity:      cfg.Capacity,
		floorInterval: cfg.FloorInterval,
		passInterval:  cfg.PassInterval,
		queues:        queues,
		events:        events,
		level:         1,
		direction:     simconsts.Idle,
		pending:       simconsts.Idle,
		dests:         newFloorSet(cfg.MaxLevel),
		onboard:       make([]*passenger.Passenger, 0, cfg.Capacity),
	}, nil
}

func (u *Unit) Index() int {
	return u.index
}

func (u *Unit) Capacity() int {
	return u.capacity
}

// Start runs the unit loop until ctx is cancelled. The loop leaves at the
// next tick boundary.
func (u *Unit) Start(ctx context.Context, waitGroup *sync.WaitGroup) {
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		Log.Info().Msgf("Elevator #%d starting", u.index)
		for {
			if err := pace(ctx, u.floorInterval); err != nil {
				Log.Warn().Err(err).Msgf("Elevator #%d skipped a tick", u.index)
			}
			select {
			case <-ctx.Done():
				Log.Warn().Msgf("Elevator #%d Go routine has been signaled to stop", u.index)
				return
			default:
			}
			u.Tick(ctx)
		}
	}()
}

// AddDestination commits a stop at level. Adding a stop to an idle unit
// wakes it: its next tick services the current level in place and then
// heads for its destinations.
func (u *Unit) AddDestination(level int) error {
	if level < 1 || level > u.maxLevel {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrLevelOutOfRange, level, u.maxLevel)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.dests.add(level) {
		Log.Debug().Msgf("Elevator #%d will stop at level %d", u.index, level)
	}
	return nil
}

// Place moves an idle unit straight to level.
func (u *Unit) Place(level int) error {
	if level < 1 || level > u.maxLevel {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrLevelOutOfRange, level, u.maxLevel)
	}

	u.mu.Lock()
	if u.stateLocked() != simconsts.StateIdle {
		u.mu.Unlock()
		return fmt.Errorf("%w: elevator #%d", ErrUnitNotIdle, u.index)
	}
	moved := u.level != level
	u.level = level
	u.mu.Unlock()

	if moved {
		u.events.Push(simevent.Moved(u.index, level))
	}
	return nil
}

// Carries reports whether the passenger is on board.
func (u *Unit) Carries(id uuid.UUID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.onboard {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (u *Unit) Snapshot() Snapshot {
	u.mu.Lock()
	view := Snapshot{
		Index:        u.index,
		Capacity:     u.capacity,
		MaxLevel:     u.maxLevel,
		Level:        u.level,
		Direction:    u.direction,
		Pending:      u.pending,
		State:        u.stateLocked(),
		Destinations: u.dests.levels(),
		Onboard:      u.onboard,
	}

	var snap Snapshot
	err := deepcopy.Copy(&snap, &view)
	u.mu.Unlock()

	if err != nil {
		Log.Error().Err(err).Msgf("Failed to deepcopy elevator #%d state", u.index)
		view.Onboard = append([]*passenger.Passenger(nil), view.Onboard...)
		return view
	}
	return snap
}

func (u *Unit) stateLocked() simconsts.UnitState {
	switch {
	case u.dests.len() == 0:
		return simconsts.StateIdle
	case u.direction == simconsts.Idle:
		return simconsts.StateChanging
	default:
		return simconsts.StateMoving
	}
}

// pace waits d or until ctx is done.
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrInterruptedTick, ctx.Err())
	case <-timer.C:
		return nil
	}
}
