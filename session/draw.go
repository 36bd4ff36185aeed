// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/hr-toolkit/draw"
	"github.com/danielhkuo/hr-toolkit/models"
)

// DrawResult is the outcome of one completed draw
type DrawResult struct {
	Winner  models.Participant
	Reveals []string
	History []models.Participant
}

// DrawState is a snapshot of the draw engine
type DrawState struct {
	State       string
	AllowRepeat bool
	Winner      *models.Participant
	Pool        []models.Participant
	History     []models.Participant
}

// Draw runs one full draw: start, countdown, finalize. The lock is released
// during the countdown so other requests are served; a roster change in that
// window cancels the draw with draw.ErrDrawCancelled.
func (s *Session) Draw(ctx context.Context) (DrawResult, error) {
	s.mu.Lock()
	spin, err := s.engine.Start(ctx)
	s.mu.Unlock()
	if err != nil {
		return DrawResult{}, err
	}

	var reveals []string
	cdErr := s.countdown.Run(spin.Context(), spin.Names(), func(name string) {
		reveals = append(reveals, name)
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if cdErr != nil {
		s.engine.Abort(spin)
		slog.Info("draw cancelled during countdown", "reason", cdErr)
		return DrawResult{}, fmt.Errorf("%w: %v", draw.ErrDrawCancelled, cdErr)
	}

	winner, err := s.engine.Finalize(spin)
	if err != nil {
		return DrawResult{}, err
	}

	slog.Info("winner drawn",
		"participant_id", winner.ID,
		"allow_repeat", s.engine.AllowRepeat(),
		"remaining", len(s.engine.Pool()),
	)

	return DrawResult{
		Winner:  winner,
		Reveals: reveals,
		History: s.engine.History(),
	}, nil
}

// ResetDraw refills the pool and clears the winner history
func (s *Session) ResetDraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Reset()
	slog.Info("draw pool reset")
}

// SetRepeat toggles whether previous winners may win again
func (s *Session) SetRepeat(allow bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.SetRepeat(allow)
	slog.Info("draw repeat mode changed", "allow_repeat", allow)
}

func (s *Session) DrawState() DrawState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return DrawState{
		State:       s.engine.State(),
		AllowRepeat: s.engine.AllowRepeat(),
		Winner:      s.engine.Winner(),
		Pool:        s.engine.Pool(),
		History:     s.engine.History(),
	}
}
