package simulator

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/dispatch"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/elevunit"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconfig"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simevent"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simmeta"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simutils"
)

var Log = logger.GetLogger()

const TEST_CASE_DRAWS = 10

var ErrStopped = errors.New("simulator is stopped")

type Simulator struct {
	MetaData *simmeta.MetaData //describes the current building

	config     simconfig.Config
	dispatcher *dispatch.Dispatcher

	mu      sync.Mutex
	rng     *rand.Rand
	running bool

	//used for graceful shutdown
	waitGroupArray []*sync.WaitGroup
	cancelArray    []context.CancelFunc
}

// NewSimulator prepares a simulator without a building. cfg supplies the
// timing and the initial strategy; the shape comes with CreateBuilding.
func NewSimulator(cfg simconfig.Config, identifier string, opts ...dispatch.Option) *Simulator {
	strategy := cfg.StrategyValue()
	opts = append([]dispatch.Option{dispatch.WithStrategy(strategy)}, opts...)

	metaData := simmeta.New(simutils.GetGitHash(), identifier)
	metaData.Strategy = strategy.String()

	return &Simulator{
		MetaData:   metaData,
		config:     cfg,
		dispatcher: dispatch.New(nil, opts...),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateBuilding replaces the building and restarts the elevator loops. On
// error the previous building keeps running.
func (s *Simulator) CreateBuilding(levels, elevators, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config.BuildingConfig()
	cfg.Levels, cfg.Elevators, cfg.Capacity = levels, elevators, capacity

	b, err := s.dispatcher.CreateBuilding(cfg)
	if err != nil {
		return err
	}

	s.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	waitGroup := &sync.WaitGroup{}
	s.waitGroupArray = append(s.waitGroupArray, waitGroup)
	b.Start(ctx, waitGroup)
	s.cancelArray = append(s.cancelArray, cancel)
	s.running = true

	s.MetaData.Levels, s.MetaData.Elevators, s.MetaData.Capacity = levels, elevators, capacity
	Log.Info().Msgf("Building created: %v", s.MetaData.String())
	return nil
}

// AddPassenger fails with ErrStopped once Stop has run: no loop is left to
// pick the passenger up.
func (s *Simulator) AddPassenger(from, to int) (dispatch.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acceptingLocked(); err != nil {
		return dispatch.Assignment{}, err
	}
	return s.dispatcher.AddPassenger(from, to)
}

// AddRandomPassenger adds one passenger between two distinct random levels.
func (s *Simulator) AddRandomPassenger() (dispatch.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acceptingLocked(); err != nil {
		return dispatch.Assignment{}, err
	}

	levels := s.dispatcher.Building().Levels()
	from := s.rng.Intn(levels) + 1
	to := s.rng.Intn(levels-1) + 1
	if to >= from {
		to++
	}
	return s.dispatcher.AddPassenger(from, to)
}

// AddTestCase floods the building with passengers: for every level from 2
// up, a few riders from random lower levels and a few towards random levels.
func (s *Simulator) AddTestCase() ([]dispatch.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acceptingLocked(); err != nil {
		return nil, err
	}

	levels := s.dispatcher.Building().Levels()
	draws := make([]int, TEST_CASE_DRAWS)
	for i := range draws {
		draws[i] = s.rng.Intn(levels-1) + 1
	}
	Log.Info().Msgf("Adding test-case passengers with draws %v", draws)

	var assignments []dispatch.Assignment
	add := func(from, to int) error {
		if from == to {
			return nil
		}
		assignment, err := s.dispatcher.AddPassenger(from, to)
		if err != nil {
			return err
		}
		assignments = append(assignments, assignment)
		return nil
	}

	half := TEST_CASE_DRAWS / 2
	for level := 2; level <= levels; level++ {
		for j := 0; j < min(level, half); j++ {
			if err := add(draws[j], level); err != nil {
				return assignments, err
			}
		}
		for j := half; j < min(level+half, TEST_CASE_DRAWS); j++ {
			if err := add(level, draws[j]); err != nil {
				return assignments, err
			}
		}
	}
	return assignments, nil
}

func (s *Simulator) acceptingLocked() error {
	if s.dispatcher.Building() == nil {
		return dispatch.ErrNoBuilding
	}
	if !s.running {
		return ErrStopped
	}
	return nil
}

func (s *Simulator) SetStrategy(strategy simconsts.Strategy) error {
	if err := s.dispatcher.SetStrategy(strategy); err != nil {
		return err
	}
	s.mu.Lock()
	s.MetaData.Strategy = strategy.String()
	s.mu.Unlock()
	return nil
}

func (s *Simulator) Strategy() simconsts.Strategy {
	return s.dispatcher.Strategy()
}

// PollEvents drains every event produced since the previous call.
func (s *Simulator) PollEvents() []simevent.Event {
	b := s.dispatcher.Building()
	if b == nil {
		return nil
	}
	return b.Events().Drain()
}

func (s *Simulator) Redispatch(level int) (dispatch.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acceptingLocked(); err != nil {
		return dispatch.Assignment{}, err
	}
	return s.dispatcher.Redispatch(level)
}

// RedispatchAll redispatches the oldest passenger of every level that still
// has someone waiting. It does nothing once the simulator is stopped.
func (s *Simulator) RedispatchAll() []dispatch.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acceptingLocked(); err != nil {
		Log.Warn().Err(err).Msg("Nothing redispatched")
		return nil
	}

	var assignments []dispatch.Assignment
	for level, count := range s.dispatcher.Building().WaitingCount() {
		if count == 0 {
			continue
		}
		assignment, err := s.dispatcher.Redispatch(level)
		if err != nil {
			if !errors.Is(err, dispatch.ErrNothingWaiting) {
				Log.Warn().Err(err).Msgf("Redispatch at level %d failed", level)
			}
			continue
		}
		assignments = append(assignments, assignment)
	}
	return assignments
}

// Randomize places every idle elevator at a random level below the top one.
// Busy elevators are left where they are.
func (s *Simulator) Randomize() {
	b := s.dispatcher.Building()
	if b == nil {
		return
	}

	for _, unit := range b.Units() {
		s.mu.Lock()
		level := s.rng.Intn(b.Levels()-1) + 1
		s.mu.Unlock()

		if err := unit.Place(level); err != nil {
			Log.Debug().Err(err).Msgf("Elevator #%d not placed", unit.Index())
		}
	}
}

func (s *Simulator) Snapshot() []elevunit.Snapshot {
	b := s.dispatcher.Building()
	if b == nil {
		return nil
	}
	return b.Snapshots()
}

// Waiting returns the number of passengers queued per level, index 0 unused.
func (s *Simulator) Waiting() []int {
	b := s.dispatcher.Building()
	if b == nil {
		return nil
	}
	return b.WaitingCount()
}

func (s *Simulator) Levels() int {
	if b := s.dispatcher.Building(); b != nil {
		return b.Levels()
	}
	return 0
}

func (s *Simulator) Elevators() int {
	if b := s.dispatcher.Building(); b != nil {
		return b.Elevators()
	}
	return 0
}

func (s *Simulator) Capacity() int {
	if b := s.dispatcher.Building(); b != nil {
		return b.Capacity()
	}
	return 0
}

// Stop cancels every elevator loop and waits for them. Calling it again is
// a no-op. Afterwards new passengers are refused with ErrStopped until the
// next CreateBuilding.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Simulator) stopLocked() {
	if !s.running {
		Log.Debug().Msg("Simulator not running, nothing to stop")
		return
	}

	Log.Debug().Msg("Stopping Simulator")

	//Gracefully shutdown all threads one by one
	for i := len(s.cancelArray) - 1; i >= 0; i-- {
		s.cancelArray[i]()
		s.waitGroupArray[i].Wait()
	}
	s.cancelArray = nil
	s.waitGroupArray = nil

	Log.Debug().Msg("Stopped Simulator")
	s.running = false
}
