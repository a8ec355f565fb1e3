package building

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/elevunit"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simevent"
)

var Log = logger.GetLogger()

var ErrInvalidConfiguration = errors.New("invalid building configuration")

type Config struct {
	Levels             int
	Elevators          int
	Capacity           int
	FloorInterval      time.Duration
	PassInterval       time.Duration
	EventWarnThreshold int
}

func (c Config) Validate() error {
	switch {
	case c.Levels < simconsts.MIN_LEVELS || c.Levels > simconsts.MAX_LEVELS:
		return fmt.Errorf("%w: levels %d not in [%d, %d]", ErrInvalidConfiguration, c.Levels, simconsts.MIN_LEVELS, simconsts.MAX_LEVELS)
	case c.Elevators < simconsts.MIN_ELEVATORS || c.Elevators > simconsts.MAX_ELEVATORS:
		return fmt.Errorf("%w: elevators %d not in [%d, %d]", ErrInvalidConfiguration, c.Elevators, simconsts.MIN_ELEVATORS, simconsts.MAX_ELEVATORS)
	case c.Capacity < simconsts.MIN_CAPACITY || c.Capacity > simconsts.MAX_CAPACITY:
		return fmt.Errorf("%w: capacity %d not in [%d, %d]", ErrInvalidConfiguration, c.Capacity, simconsts.MIN_CAPACITY, simconsts.MAX_CAPACITY)
	case c.FloorInterval <= 0:
		return fmt.Errorf("%w: floor interval must be positive, got %v", ErrInvalidConfiguration, c.FloorInterval)
	case c.PassInterval < 0:
		return fmt.Errorf("%w: pass interval must not be negative, got %v", ErrInvalidConfiguration, c.PassInterval)
	}
	return nil
}

// Building owns the level queues, the units and the event stream. Its shape
// never changes after New. One lock guards every level queue.
type Building struct {
	levels   int
	capacity int

	mu     sync.Mutex
	queues []LevelQueue //index 0 unused

	units  []*elevunit.Unit
	events *simevent.Stream
}

func New(cfg Config) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Building{
		levels:   cfg.Levels,
		capacity: cfg.Capacity,
		queues:   make([]LevelQueue, cfg.Levels+1),
		units:    make([]*elevunit.Unit, 0, cfg.Elevators),
		events:   simevent.NewStream(cfg.EventWarnThreshold),
	}

	for i := 0; i < cfg.Elevators; i++ {
		unit, err := elevunit.NewUnit(elevunit.Config{
			Index:         i,
			MaxLevel:      cfg.Levels,
			Capacity:      cfg.Capacity,
			FloorInterval: cfg.FloorInterval,
			PassInterval:  cfg.PassInterval,
		}, b, b.events)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		b.units = append(b.units, unit)
	}

	Log.Info().Msgf("Building created with %d levels, %d elevators of capacity %d", cfg.Levels, cfg.Elevators, cfg.Capacity)
	return b, nil
}

// Start launches one loop per unit.
func (b *Building) Start(ctx context.Context, waitGroup *sync.WaitGroup) {
	for _, unit := range b.units {
		unit.Start(ctx, waitGroup)
	}
}

func (b *Building) Levels() int {
	return b.levels
}

func (b *Building) Elevators() int {
	return len(b.units)
}

func (b *Building) Capacity() int {
	return b.capacity
}

func (b *Building) Unit(index int) *elevunit.Unit {
	if index < 0 || index >= len(b.units) {
		return nil
	}
	return b.units[index]
}

func (b *Building) Units() []*elevunit.Unit {
	return append([]*elevunit.Unit(nil), b.units...)
}

func (b *Building) Events() *simevent.Stream {
	return b.events
}

func (b *Building) Snapshots() []elevunit.Snapshot {
	snaps := make([]elevunit.Snapshot, 0, len(b.units))
	for _, unit := range b.units {
		snaps = append(snaps, unit.Snapshot())
	}
	return snaps
}

func (b *Building) validLevel(level int) bool {
	return level >= 1 && level <= b.levels
}

// Enqueue puts p at the back of the queue at its origin level.
func (b *Building) Enqueue(p *passenger.Passenger) error {
	if !b.validLevel(p.Origin) {
		return fmt.Errorf("origin level %d not in [1, %d]", p.Origin, b.levels)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.queues[p.Origin].push(p)
	return nil
}

// Board implements elevunit.LevelQueues.
func (b *Building) Board(level int, accept func(p *passenger.Passenger) bool) []*passenger.Passenger {
	if !b.validLevel(level) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queues[level].take(accept)
}

// Waiting returns a copy of the queue at level, oldest first.
func (b *Building) Waiting(level int) []*passenger.Passenger {
	if !b.validLevel(level) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queues[level].list()
}

// WaitingCount returns the number of waiting passengers per level; index 0 is unused.
func (b *Building) WaitingCount() []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	counts := make([]int, b.levels+1)
	for level := 1; level <= b.levels; level++ {
		counts[level] = b.queues[level].len()
	}
	return counts
}

type Whereabouts int

const (
	Gone Whereabouts = iota
	Waiting
	Riding
)

func (w Whereabouts) String() string {
	switch w {
	case Waiting:
		return "Waiting"
	case Riding:
		return "Riding"
	default:
		return "Gone"
	}
}

// Location says where a passenger is. Holders counts every container that
// holds the passenger and is never more than one.
type Location struct {
	Whereabouts Whereabouts
	Level       int
	Unit        int
	Holders     int
}

// Locate finds a passenger. Boarding moves passengers while holding the
// building lock, so a passenger is never seen in two places or in none
// while it is being boarded.
func (b *Building) Locate(id uuid.UUID) Location {
	b.mu.Lock()
	defer b.mu.Unlock()

	loc := Location{Whereabouts: Gone, Unit: -1}
	for level := 1; level <= b.levels; level++ {
		if b.queues[level].contains(id) {
			loc.Whereabouts, loc.Level = Waiting, level
			loc.Holders++
		}
	}
	for _, unit := range b.units {
		if unit.Carries(id) {
			loc.Whereabouts, loc.Unit = Riding, unit.Index()
			loc.Holders++
		}
	}
	return loc
}
