package simevent

import (
	"fmt"
	"time"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
)

type EventKind int

const (
	PassengerBoarded EventKind = iota
	PassengerAlighted
	FloorChanged
	UnitIdle
)

func (k EventKind) String() string {
	switch k {
	case PassengerBoarded:
		return "PassengerBoarded"
	case PassengerAlighted:
		return "PassengerAlighted"
	case FloorChanged:
		return "FloorChanged"
	case UnitIdle:
		return "UnitIdle"
	default:
		return "UnknownEvent"
	}
}

// Event is a fact about something a unit already did.
type Event struct {
	Kind      EventKind
	Elevator  int
	Floor     int
	Passenger *passenger.Passenger //only set for boarding and alighting
	Time      time.Time
}

func (e *Event) EventType() string {
	return e.Kind.String()
}

func (e *Event) String() string {
	switch e.Kind {
	case PassengerBoarded:
		return fmt.Sprintf("passenger %v entered elevator #%d at level %d", e.Passenger, e.Elevator, e.Floor)
	case PassengerAlighted:
		return fmt.Sprintf("passenger %v left elevator #%d at level %d", e.Passenger, e.Elevator, e.Floor)
	case FloorChanged:
		return fmt.Sprintf("elevator #%d goes to level %d", e.Elevator, e.Floor)
	case UnitIdle:
		return fmt.Sprintf("elevator #%d is idle at level %d", e.Elevator, e.Floor)
	default:
		return "unknown event"
	}
}

func Boarded(elevator, floor int, p *passenger.Passenger) Event {
	return Event{Kind: PassengerBoarded, Elevator: elevator, Floor: floor, Passenger: p, Time: time.Now()}
}

func Alighted(elevator, floor int, p *passenger.Passenger) Event {
	return Event{Kind: PassengerAlighted, Elevator: elevator, Floor: floor, Passenger: p, Time: time.Now()}
}

func Moved(elevator, floor int) Event {
	return Event{Kind: FloorChanged, Elevator: elevator, Floor: floor, Time: time.Now()}
}

func Idled(elevator, floor int) Event {
	return Event{Kind: UnitIdle, Elevator: elevator, Floor: floor, Time: time.Now()}
}
