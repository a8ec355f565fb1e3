package passenger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
)

// Passenger is a single trip request. It never changes after creation and is
// held by exactly one level queue or one unit at a time.
type Passenger struct {
	ID          uuid.UUID `json:"id"`
	Origin      int       `json:"origin"`
	Destination int       `json:"destination"`
}

func New(origin, destination int) *Passenger {
	return &Passenger{
		ID:          uuid.New(),
		Origin:      origin,
		Destination: destination,
	}
}

// Direction is the way the passenger wants to travel from its origin.
func (p *Passenger) Direction() simconsts.Direction {
	return simconsts.DirectionOf(p.Origin, p.Destination)
}

func (p *Passenger) String() string {
	return fmt.Sprintf("%s(%d->%d)", p.ID.String()[:8], p.Origin, p.Destination)
}
