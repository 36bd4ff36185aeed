// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/random"
)

var (
	ErrEmptyPool      = errors.New("everyone in the pool has already won")
	ErrDrawInProgress = errors.New("a draw is already in progress")
	ErrDrawCancelled  = errors.New("draw cancelled")
)

// Spin is one in-flight draw between Start and Finalize
type Spin struct {
	ctx    context.Context
	cancel context.CancelFunc
	names  []string
}

// Context is done when the spin is cancelled
func (s *Spin) Context() context.Context { return s.ctx }

// Names are the roster names available for cosmetic reveals
func (s *Spin) Names() []string { return s.names }

// Engine runs single-winner draws over a roster snapshot.
// Not safe for concurrent use.
type Engine struct {
	rng         random.Source
	roster      []models.Participant
	pool        []models.Participant
	history     []models.Participant // most recent first
	winner      *models.Participant
	state       string
	allowRepeat bool
	spin        *Spin
}

func NewEngine(roster []models.Participant, rng random.Source) *Engine {
	e := &Engine{rng: rng, state: models.StateIdle}
	e.roster = clone(roster)
	e.pool = clone(roster)
	return e
}

// Start begins a draw. The returned spin is cancelled when parent is done,
// when the roster changes, or on Reset.
func (e *Engine) Start(parent context.Context) (*Spin, error) {
	if e.state == models.StateSpinning {
		return nil, ErrDrawInProgress
	}
	if len(e.pool) == 0 {
		return nil, ErrEmptyPool
	}

	ctx, cancel := context.WithCancel(parent)
	e.spin = &Spin{
		ctx:    ctx,
		cancel: cancel,
		names:  lo.Map(e.roster, func(p models.Participant, _ int) string { return p.Name }),
	}
	e.state = models.StateSpinning
	e.winner = nil
	return e.spin, nil
}

// Finalize picks the winner for spin. In repeat mode every roster entry is
// eligible; otherwise only the remaining pool is, and the winner leaves it.
func (e *Engine) Finalize(spin *Spin) (models.Participant, error) {
	if spin == nil || spin != e.spin {
		return models.Participant{}, ErrDrawCancelled
	}
	if err := spin.ctx.Err(); err != nil {
		e.endSpin(models.StateIdle)
		return models.Participant{}, ErrDrawCancelled
	}

	candidates := e.pool
	if e.allowRepeat {
		candidates = e.roster
	}

	winner, ok := random.Pick(e.rng, candidates)
	if !ok {
		// Nothing to pick: pool and history stay as they are
		e.endSpin(models.StateIdle)
		return models.Participant{}, ErrEmptyPool
	}

	e.history = append([]models.Participant{winner}, e.history...)
	if !e.allowRepeat {
		e.pool = lo.Filter(e.pool, func(p models.Participant, _ int) bool {
			return p.ID != winner.ID
		})
	}
	e.winner = &winner
	e.endSpin(models.StateLanded)

	return winner, nil
}

// Abort ends spin without picking a winner
func (e *Engine) Abort(spin *Spin) {
	if spin != nil && spin == e.spin {
		e.endSpin(models.StateIdle)
	}
}

// Reset refills the pool from the roster and clears the winner history
func (e *Engine) Reset() {
	e.cancelSpin()
	e.pool = clone(e.roster)
	e.history = nil
	e.winner = nil
	e.state = models.StateIdle
}

// Sync replaces the roster snapshot after the roster changed. The pool is
// refilled, so earlier no-repeat exclusions are lost, and an in-flight
// spin is cancelled.
func (e *Engine) Sync(roster []models.Participant) {
	e.cancelSpin()
	e.roster = clone(roster)
	e.pool = clone(roster)
}

// SetRepeat toggles whether previous winners can be drawn again
func (e *Engine) SetRepeat(allow bool) {
	e.allowRepeat = allow
}

func (e *Engine) AllowRepeat() bool { return e.allowRepeat }

func (e *Engine) State() string { return e.state }

func (e *Engine) Pool() []models.Participant { return clone(e.pool) }

func (e *Engine) History() []models.Participant { return clone(e.history) }

// Winner is the most recent winner, nil before the first landing
// or after a reset
func (e *Engine) Winner() *models.Participant {
	if e.winner == nil {
		return nil
	}
	w := *e.winner
	return &w
}

func (e *Engine) cancelSpin() {
	if e.spin != nil {
		e.endSpin(models.StateIdle)
	}
}

func (e *Engine) endSpin(state string) {
	if e.spin != nil {
		e.spin.cancel()
		e.spin = nil
	}
	e.state = state
}

func clone(list []models.Participant) []models.Participant {
	out := make([]models.Participant, len(list))
	copy(out, list)
	return out
}
