package dispatch

import (
	"math/rand"
	"sync"
	"time"
)

// TieBreaker settles equal costs. Flip reports whether the challenger
// replaces the current best. Production behaviour is deliberately random.
type TieBreaker interface {
	Flip() bool
}

type TieBreakerFunc func() bool

func (f TieBreakerFunc) Flip() bool {
	return f()
}

// Always and Never make tie resolution deterministic in tests.
var (
	Always TieBreaker = TieBreakerFunc(func() bool { return true })
	Never  TieBreaker = TieBreakerFunc(func() bool { return false })
)

// coin is a fair coin safe for concurrent use.
type coin struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewCoin(seed int64) TieBreaker {
	return &coin{rng: rand.New(rand.NewSource(seed))}
}

func newTimeSeededCoin() TieBreaker {
	return NewCoin(time.Now().UnixNano())
}

func (c *coin) Flip() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(2) == 1
}
