package elevunit

import (
	"fmt"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
)

// Snapshot is a detached copy of a unit's state. The dispatcher scores
// snapshots, never live units.
type Snapshot struct {
	Index        int
	Capacity     int
	MaxLevel     int
	Level        int
	Direction    simconsts.Direction
	Pending      simconsts.Direction
	State        simconsts.UnitState
	Destinations []int //ascending
	Onboard      []*passenger.Passenger
}

func (s Snapshot) Full() bool {
	return len(s.Onboard) >= s.Capacity
}

func (s Snapshot) Idle() bool {
	return s.State == simconsts.StateIdle
}

func (s Snapshot) OnboardCount() int {
	return len(s.Onboard)
}

func (s Snapshot) PendingStops() int {
	return len(s.Destinations)
}

// MaxDestination is the highest level the unit still has to reach, 0 if none.
func (s Snapshot) MaxDestination() int {
	highest := 0
	for _, p := range s.Onboard {
		if p.Destination > highest {
			highest = p.Destination
		}
	}
	for _, level := range s.Destinations {
		if level > highest {
			highest = level
		}
	}
	return highest
}

// MinDestination is the lowest level the unit still has to reach, MaxLevel if none.
func (s Snapshot) MinDestination() int {
	lowest := s.MaxLevel
	for _, p := range s.Onboard {
		if p.Destination < lowest {
			lowest = p.Destination
		}
	}
	for _, level := range s.Destinations {
		if level < lowest {
			lowest = level
		}
	}
	return lowest
}

func (s Snapshot) String() string {
	return fmt.Sprintf("#%d level=%d dirn=%s state=%s load=%d/%d stops=%v",
		s.Index, s.Level, s.Direction, s.State, len(s.Onboard), s.Capacity, s.Destinations)
}
