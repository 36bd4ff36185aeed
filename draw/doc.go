// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draw implements the lucky draw engine.

# States

The engine moves between three states:

	idle ──Start──▶ spinning ──Finalize──▶ landed
	  ▲                │                     │
	  └──Abort/Sync/Reset┘◀────────Start─────┘

Start fails with ErrEmptyPool when no eligible participant is left and with
ErrDrawInProgress while another spin is running.

# Repeat Mode

With repeat disabled (the default) a winner is removed from the pool, so
every participant wins at most once until Reset or a roster change. With
repeat enabled the whole roster is eligible on every draw and the pool is
left untouched.

# Countdown

A Countdown plays cosmetic name reveals between Start and Finalize:

	spin, err := engine.Start(ctx)
	err = draw.NewTimed(30).Run(spin.Context(), spin.Names(), show)
	winner, err := engine.Finalize(spin)

Timed waits 50ms + i*5ms after the i-th reveal. Instant skips the wait.
Neither affects the selection, which is a uniform pick made in Finalize.

# Cancellation

Sync (roster changed) and Reset cancel the in-flight spin. Its context is
done and Finalize returns ErrDrawCancelled, so a draw never lands on a pool
that no longer matches the roster.
*/
package draw
