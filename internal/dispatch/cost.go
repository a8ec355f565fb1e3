package dispatch

import (
	"math"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/elevunit"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
)

// Unreachable is the cost of a unit the strategy refuses to use.
const Unreachable = math.MaxInt

// Cost estimates how long unit s needs before it can pick up a passenger
// travelling from -> to in a building with the given number of levels.
func Cost(strategy simconsts.Strategy, s elevunit.Snapshot, from, to, levels int) int {
	if s.Full() {
		return Unreachable
	}
	if strategy == simconsts.PowerSaving && s.Idle() {
		return Unreachable
	}

	// load balancing charges every passenger already inside
	extra := 0
	if strategy == simconsts.LoadBalancing {
		extra = s.OnboardCount()
	}

	sign := s.Direction.Sign()
	if sign*(to-from) >= 0 {
		notPassed := (sign >= 0 && from >= s.Level) || (sign <= 0 && from <= s.Level)
		if notPassed {
			return abs(from-s.Level) + s.PendingStops() + extra
		}
		// round trip to the far end and back
		return 2*levels - abs(from-s.Level) + extra
	}

	// finish the current sweep, then reverse
	if s.Direction == simconsts.Up {
		return 2*s.MaxDestination() - s.Level - from + 2 + s.PendingStops() + extra
	}
	return s.MinDestination() + from + s.PendingStops() + extra
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
