package qflip

import (
	"fmt"
	"math"
	"time"
)

type Config struct {
	// Presentation pacing. The simulation itself never waits.
	RevealDelay time.Duration
	RoundDelay  time.Duration
	RevealTTL   time.Duration

	MaxRounds    int
	SweepSteps   int
	DefaultTheta float64
	DefaultShots int
	MinShots     int
	MaxShots     int
}

func NewConfig() *Config {
	return &Config{
		RevealDelay:  500 * time.Millisecond,
		RoundDelay:   1500 * time.Millisecond,
		RevealTTL:    time.Minute,
		MaxRounds:    10,
		SweepSteps:   DefaultSweepSteps,
		DefaultTheta: math.Pi / 2,
		DefaultShots: 1024,
		MinShots:     1,
		MaxShots:     4096,
	}
}

// Validate reports the first setting that cannot drive a session or explorer.
func (c *Config) Validate() error {
	switch {
	case c.RevealDelay < 0 || c.RoundDelay < 0:
		return fmt.Errorf("delays must not be negative: %w", ErrInvalidArgument)
	case c.MaxRounds <= 0:
		return fmt.Errorf("max rounds must be positive, got %d: %w", c.MaxRounds, ErrInvalidArgument)
	case c.SweepSteps <= 0:
		return fmt.Errorf("sweep steps must be positive, got %d: %w", c.SweepSteps, ErrInvalidArgument)
	case c.MinShots < 0 || c.MinShots > c.MaxShots:
		return fmt.Errorf("shot range [%d, %d] is empty: %w", c.MinShots, c.MaxShots, ErrInvalidArgument)
	case c.DefaultShots < c.MinShots || c.DefaultShots > c.MaxShots:
		return fmt.Errorf("default shots %d outside [%d, %d]: %w", c.DefaultShots, c.MinShots, c.MaxShots, ErrInvalidArgument)
	case c.DefaultTheta < 0 || c.DefaultTheta > math.Pi:
		return fmt.Errorf("default theta %g outside [0, π]: %w", c.DefaultTheta, ErrInvalidArgument)
	}

	return nil
}
