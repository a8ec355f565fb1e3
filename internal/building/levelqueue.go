package building

import (
	"github.com/google/uuid"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
)

// LevelQueue holds the passengers waiting at one level in arrival order.
// It is not safe on its own; the Building lock guards it.
type LevelQueue struct {
	waiting []*passenger.Passenger
}

func (q *LevelQueue) push(p *passenger.Passenger) {
	q.waiting = append(q.waiting, p)
}

// take removes and returns the passengers accept agrees to, keeping the
// order of the ones left behind.
func (q *LevelQueue) take(accept func(p *passenger.Passenger) bool) []*passenger.Passenger {
	var taken []*passenger.Passenger
	left := q.waiting[:0]
	for _, p := range q.waiting {
		if accept(p) {
			taken = append(taken, p)
		} else {
			left = append(left, p)
		}
	}
	for i := len(left); i < len(q.waiting); i++ {
		q.waiting[i] = nil
	}
	q.waiting = left
	return taken
}

func (q *LevelQueue) list() []*passenger.Passenger {
	return append([]*passenger.Passenger(nil), q.waiting...)
}

func (q *LevelQueue) len() int {
	return len(q.waiting)
}

func (q *LevelQueue) contains(id uuid.UUID) bool {
	for _, p := range q.waiting {
		if p.ID == id {
			return true
		}
	}
	return false
}
