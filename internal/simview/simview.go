package simview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/elevunit"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simevent"
)

var Log = logger.GetLogger()

type EventSource interface {
	PollEvents() []simevent.Event
}

// Console drains an event source on a fixed interval, logs every event and
// remembers the level each elevator was last reported at.
type Console struct {
	source   EventSource
	interval time.Duration

	mu     sync.Mutex
	floors map[int]int
	counts map[simevent.EventKind]int
}

func NewConsole(source EventSource, interval time.Duration) *Console {
	return &Console{
		source:   source,
		interval: interval,
		floors:   map[int]int{},
		counts:   map[simevent.EventKind]int{},
	}
}

func (c *Console) Start(ctx context.Context, waitGroup *sync.WaitGroup) {
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				c.Process(c.source.PollEvents())
				Log.Warn().Msgf("Console Go routine has been signaled to stop")
				return
			case <-ticker.C:
				c.Process(c.source.PollEvents())
			}
		}
	}()
}

func (c *Console) Process(events []simevent.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range events {
		e := &events[i]
		c.counts[e.Kind]++
		switch e.Kind {
		case simevent.FloorChanged, simevent.UnitIdle:
			c.floors[e.Elevator] = e.Floor
			if e.Kind == simevent.UnitIdle {
				Log.Debug().Msgf("Console: %v", e.String())
				continue
			}
		}
		Log.Info().Msgf("Console: %v", e.String())
	}
}

// Floor returns the last level reported for elevator, 1 if none yet.
func (c *Console) Floor(elevator int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if floor, ok := c.floors[elevator]; ok {
		return floor
	}
	return 1
}

func (c *Console) Count(kind simevent.EventKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[kind]
}

// FormatState renders one line per elevator, with the level this console
// last saw reported next to the live one, then the event totals and the
// non-empty level queues.
func (c *Console) FormatState(snaps []elevunit.Snapshot, waiting []int) string {
	var sb strings.Builder
	for _, s := range snaps {
		fmt.Fprintf(&sb, "%v shown=%d\n", s, c.Floor(s.Index))
	}
	fmt.Fprintf(&sb, "boarded=%d alighted=%d moves=%d\n",
		c.Count(simevent.PassengerBoarded), c.Count(simevent.PassengerAlighted), c.Count(simevent.FloorChanged))

	var queued []string
	for level, count := range waiting {
		if count > 0 {
			queued = append(queued, fmt.Sprintf("L%d:%d", level, count))
		}
	}
	if len(queued) == 0 {
		sb.WriteString("nobody waiting\n")
	} else {
		fmt.Fprintf(&sb, "waiting %s\n", strings.Join(queued, " "))
	}
	return sb.String()
}
