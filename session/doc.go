// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session ties the roster, the draw engine and the group generator
together behind one lock.

# Lifecycle

main loads the session once at startup and hands it to the handlers:

	sess, err := session.Load(ctx, store,
		session.WithCountdown(draw.NewTimed(cfg.SpinTicks)),
	)

Every roster mutation (Ingest, LoadDemo, Remove, Clear, RemoveDuplicates)
re-syncs the draw pool with the new roster and saves the roster to the
store. A save failure is returned to the caller; the in-memory change is
kept.

# Draws

Draw starts a spin, plays the countdown without holding the lock, then
picks the winner. A roster change during the countdown cancels the spin
and Draw returns draw.ErrDrawCancelled.

# Groups

GenerateGroups replaces the previously generated groups wholesale. Groups
returns ErrNoGroups until a non-empty generation happened.
*/
package session
