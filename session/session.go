// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/hr-toolkit/draw"
	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/random"
	"github.com/danielhkuo/hr-toolkit/roster"
	"github.com/danielhkuo/hr-toolkit/storage"
)

var ErrNoGroups = errors.New("no groups have been generated")

// DemoNames is the sample roster offered by the demo loader
var DemoNames = []string{
	"王大明", "李小華", "張美玲", "陳冠廷", "Emma Wang",
	"林志明", "黃雅婷", "Jason Chen", "劉淑芬", "郭大為",
	"張美玲", "周杰倫", "蔡依林", "林俊傑", "王力宏",
	"李小華", "Sophia Lin", "David Ho", "Sarah Wu", "Kevin Zhang",
}

// Session owns the roster, the draw engine and the latest groups.
// All methods are safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	slot      storage.Store
	roster    *roster.Roster
	engine    *draw.Engine
	groups    []models.Group
	groupSize int
	rng       random.Source
	countdown draw.Countdown
}

type Option func(*Session)

// WithRand sets the source used for draws and grouping
func WithRand(rng random.Source) Option {
	return func(s *Session) { s.rng = rng }
}

// WithCountdown sets the cosmetic countdown played before a winner lands
func WithCountdown(c draw.Countdown) Option {
	return func(s *Session) { s.countdown = c }
}

// WithIDFunc sets the participant id generator
func WithIDFunc(fn roster.IDFunc) Option {
	return func(s *Session) { s.roster.WithIDFunc(fn) }
}

// Load restores the roster from slot. A corrupt slot is logged and the
// session starts with an empty roster.
func Load(ctx context.Context, slot storage.Store, opts ...Option) (*Session, error) {
	r, dropped, err := roster.Load(ctx, slot)
	switch {
	case errors.Is(err, roster.ErrCorruptState):
		slog.Warn("ignoring corrupt persisted roster", "key", roster.SlotKey, "error", err)
		r = roster.New(nil)
	case err != nil:
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if dropped > 0 {
		slog.Warn("dropped invalid roster entries", "count", dropped)
	}

	s := &Session{
		slot:      slot,
		roster:    r,
		rng:       random.Default,
		countdown: draw.Instant{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = draw.NewEngine(r.Participants(), s.rng)

	slog.Info("roster loaded", "participants", r.Len())
	return s, nil
}

// Participants returns the roster in insertion order
func (s *Session) Participants() []models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Participants()
}

// DuplicateNames lists names that appear more than once
func (s *Session) DuplicateNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.DuplicateNames()
}

// Ingest adds every name in raw. Blank input is a no-op and returns
// roster.ErrEmptyInput.
func (s *Session) Ingest(ctx context.Context, raw string) ([]models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.roster.Ingest(raw)
	if err != nil {
		return nil, err
	}
	slog.Info("participants imported", "count", len(added), "total", s.roster.Len())
	return added, s.changed(ctx)
}

// LoadDemo replaces the roster with DemoNames
func (s *Session) LoadDemo(ctx context.Context) ([]models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.roster.Replace(DemoNames)
	if err != nil {
		return nil, err
	}
	slog.Info("demo roster loaded", "count", len(list))
	return list, s.changed(ctx)
}

// Remove deletes one participant; reports whether it existed
func (s *Session) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.roster.RemoveByID(id) {
		return false, nil
	}
	slog.Info("participant removed", "participant_id", id)
	return true, s.changed(ctx)
}

// Clear empties the roster
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.Clear()
	slog.Info("roster cleared")
	return s.changed(ctx)
}

// RemoveDuplicates keeps the first participant of every name
func (s *Session) RemoveDuplicates(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.roster.RemoveDuplicates()
	if removed == 0 {
		return 0, nil
	}
	slog.Info("duplicate names removed", "removed", removed)
	return removed, s.changed(ctx)
}

// changed re-syncs derived state and persists the roster.
// Callers hold s.mu.
func (s *Session) changed(ctx context.Context) error {
	s.engine.Sync(s.roster.Participants())
	if err := s.roster.Save(ctx, s.slot); err != nil {
		slog.Error("failed to persist roster", "error", err)
		return err
	}
	return nil
}
