package snapgrid

import (
	"math/rand"
	"time"
)

// Option configures puzzle behavior.
type Option func(*config)

type config struct {
	gridSize     int
	rng          *rand.Rand
	slowInterval time.Duration
	fastInterval time.Duration
}

func defaultConfig() *config {
	return &config{
		gridSize:     3,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		slowInterval: DefaultSolveInterval,
		fastInterval: FastSolveInterval,
	}
}

// WithGridSize sets the grid side length. Only 3 and 4 are supported;
// anything else makes New return ErrBadGridSize.
func WithGridSize(n int) Option {
	return func(c *config) {
		c.gridSize = n
	}
}

// WithSeed seeds the scatter randomness deterministically.
// Useful for tests; the default is time-seeded.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSolveIntervals overrides the auto-solve pacing: slow is the rate
// every run starts at, fast the rate SpeedUpSolve switches to.
func WithSolveIntervals(slow, fast time.Duration) Option {
	return func(c *config) {
		if slow > 0 {
			c.slowInterval = slow
		}
		if fast > 0 {
			c.fastInterval = fast
		}
	}
}
