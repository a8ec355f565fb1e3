package simevent

import (
	"sync"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
)

var Log = logger.GetLogger()

// Stream is an unbounded FIFO of events. Units push, a single observer drains.
// Nothing is ever dropped; when more than warnThreshold events sit undrained
// a warning is logged once until the stream is drained again.
type Stream struct {
	mu            sync.Mutex
	events        []Event
	warnThreshold int
	warned        bool
}

// NewStream creates a stream. A warnThreshold of zero disables the warning.
func NewStream(warnThreshold int) *Stream {
	return &Stream{warnThreshold: warnThreshold}
}

func (s *Stream) Push(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, e)
	if s.warnThreshold > 0 && !s.warned && len(s.events) > s.warnThreshold {
		s.warned = true
		Log.Warn().Msgf("Event stream holds %d undrained events, is anyone polling?", len(s.events))
	}
}

// Drain pops every event currently present, oldest first.
func (s *Stream) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	drained := s.events
	s.events = nil
	s.warned = false
	return drained
}

func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
