package simview

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/elevunit"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/passenger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simevent"
)

type fakeSource struct {
	stream *simevent.Stream
}

func (f *fakeSource) PollEvents() []simevent.Event {
	return f.stream.Drain()
}

func TestProcessTracksFloors(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c := NewConsole(&fakeSource{simevent.NewStream(0)}, time.Millisecond)

	p := passenger.New(1, 3)
	c.Process([]simevent.Event{
		simevent.Boarded(0, 1, p),
		simevent.Moved(0, 2),
		simevent.Moved(1, 6),
		simevent.Moved(0, 3),
		simevent.Alighted(0, 3, p),
		simevent.Idled(1, 6),
	})

	if c.Floor(0) != 3 || c.Floor(1) != 6 || c.Floor(2) != 1 {
		t.Errorf("Floors are %d, %d, %d, expected 3, 6, 1", c.Floor(0), c.Floor(1), c.Floor(2))
	}
	if c.Count(simevent.FloorChanged) != 3 || c.Count(simevent.PassengerBoarded) != 1 || c.Count(simevent.UnitIdle) != 1 {
		t.Errorf("Unexpected event counts")
	}
}

func TestStartDrainsSource(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	source := &fakeSource{simevent.NewStream(0)}
	c := NewConsole(source, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	waitGroup := &sync.WaitGroup{}
	c.Start(ctx, waitGroup)

	source.stream.Push(simevent.Moved(0, 4))
	deadline := time.Now().Add(2 * time.Second)
	for c.Floor(0) != 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if c.Floor(0) != 4 {
		t.Errorf("Console never saw the move to level 4")
	}

	// events pushed right before the stop are still drained
	source.stream.Push(simevent.Moved(0, 5))
	cancel()
	waitGroup.Wait()
	if c.Floor(0) != 5 || source.stream.Len() != 0 {
		t.Errorf("Console left events behind at shutdown")
	}
}

func TestFormatState(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c := NewConsole(&fakeSource{simevent.NewStream(0)}, time.Millisecond)
	p := passenger.New(1, 4)
	c.Process([]simevent.Event{
		simevent.Boarded(0, 1, p),
		simevent.Moved(0, 2),
	})

	snaps := []elevunit.Snapshot{
		{Index: 0, Capacity: 4, MaxLevel: 5, Level: 3, Direction: simconsts.Up, State: simconsts.StateMoving, Destinations: []int{4}, Onboard: []*passenger.Passenger{p}},
		{Index: 1, Capacity: 4, MaxLevel: 5, Level: 1, State: simconsts.StateIdle},
	}
	out := c.FormatState(snaps, []int{0, 2, 0, 1, 0, 0})

	for _, expected := range []string{
		"#0 level=3",
		"stops=[4] shown=2",
		"#1 level=1",
		"stops=[] shown=1",
		"boarded=1 alighted=0 moves=1",
		"waiting L1:2 L3:1",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("FormatState() = %q, missing %q", out, expected)
		}
	}

	if out := c.FormatState(nil, []int{0, 0}); !strings.Contains(out, "nobody waiting") {
		t.Errorf("FormatState() with empty queues = %q", out)
	}
}
