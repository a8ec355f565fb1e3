package simconsts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MIN_LEVELS    = 2
	MAX_LEVELS    = 20
	MIN_ELEVATORS = 1
	MAX_ELEVATORS = 10
	MIN_CAPACITY  = 1
	MAX_CAPACITY  = 20

	FLOOR_INTERVAL = 500 * time.Millisecond // time to travel one level
	PASS_INTERVAL  = 200 * time.Millisecond // time for one passenger to enter or leave
)

var ErrUnknownStrategy = errors.New("unknown dispatching strategy")

// Direction is the heading of a unit. Idle doubles as "changing direction":
// a unit that is reversing stands still for one tick.
type Direction uint8

const (
	Idle Direction = iota
	Up
	Down
)

// Sign projects the direction onto -1, 0 or +1 for the cost formulas.
func (d Direction) Sign() int {
	switch d {
	case Up:
		return 1
	case Down:
		return -1
	default:
		return 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	default:
		return Idle
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Idle:
		return "Idle"
	default:
		return "Undefined"
	}
}

// DirectionOf returns the direction needed to travel from one level to another.
func DirectionOf(from, to int) Direction {
	switch {
	case to > from:
		return Up
	case to < from:
		return Down
	default:
		return Idle
	}
}

type Strategy uint8

const (
	SpeedFirst Strategy = iota
	LoadBalancing
	PowerSaving
)

func (s Strategy) String() string {
	switch s {
	case SpeedFirst:
		return "SpeedFirst"
	case LoadBalancing:
		return "LoadBalancing"
	case PowerSaving:
		return "PowerSaving"
	default:
		return "Undefined"
	}
}

func (s Strategy) Valid() bool {
	return s <= PowerSaving
}

// ParseStrategy accepts the strategy names case-insensitively, with or
// without separators ("speed-first", "SpeedFirst", "speed_first").
func ParseStrategy(name string) (Strategy, error) {
	normalised := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	switch normalised {
	case "speedfirst", "speed":
		return SpeedFirst, nil
	case "loadbalancing", "load":
		return LoadBalancing, nil
	case "powersaving", "power":
		return PowerSaving, nil
	}
	return SpeedFirst, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

type UnitState uint8

const (
	StateIdle UnitState = iota
	StateMoving
	StateChanging
)

func (us UnitState) String() string {
	switch us {
	case StateIdle:
		return "US_Idle"
	case StateMoving:
		return "US_Moving"
	case StateChanging:
		return "US_Changing"
	default:
		return "US_UNDEFINED"
	}
}
