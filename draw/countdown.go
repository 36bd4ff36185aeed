// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"context"
	"time"

	"github.com/danielhkuo/hr-toolkit/random"
)

const (
	DefaultTicks     = 30
	DefaultBaseDelay = 50 * time.Millisecond
	DefaultStepDelay = 5 * time.Millisecond
)

// Countdown plays the cosmetic name reveals before a winner lands.
// It has no influence on who wins.
type Countdown interface {
	Run(ctx context.Context, names []string, reveal func(name string)) error
}

// Timed reveals Ticks random names, waiting Base + i*Step after the i-th
// reveal so the roll slows down towards the end
type Timed struct {
	Ticks int
	Base  time.Duration
	Step  time.Duration
	Rand  random.Source
}

func NewTimed(ticks int) Timed {
	return Timed{
		Ticks: ticks,
		Base:  DefaultBaseDelay,
		Step:  DefaultStepDelay,
		Rand:  random.Default,
	}
}

func (c Timed) Run(ctx context.Context, names []string, reveal func(name string)) error {
	rng := c.Rand
	if rng == nil {
		rng = random.Default
	}

	for i := 1; i <= c.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if name, ok := random.Pick(rng, names); ok {
			reveal(name)
		}
		if i == c.Ticks {
			break
		}

		delay := c.Base + time.Duration(i)*c.Step
		if delay <= 0 {
			continue
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return ctx.Err()
}

// Total is the time a full run waits
func (c Timed) Total() time.Duration {
	var total time.Duration
	for i := 1; i < c.Ticks; i++ {
		total += c.Base + time.Duration(i)*c.Step
	}
	return total
}

// Instant skips the countdown entirely, for headless use and tests
type Instant struct{}

func (Instant) Run(ctx context.Context, _ []string, _ func(string)) error {
	return ctx.Err()
}
