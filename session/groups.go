// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"

	"github.com/danielhkuo/hr-toolkit/grouping"
	"github.com/danielhkuo/hr-toolkit/models"
)

// GenerateGroups partitions the current roster and replaces the stored
// groups. The size is clamped to at least 2.
func (s *Session) GenerateGroups(size int) (int, []models.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size = grouping.ClampSize(size)
	s.groups = grouping.Generate(s.roster.Participants(), size, s.rng)
	s.groupSize = size

	slog.Info("groups generated", "groups", len(s.groups), "group_size", size, "participants", s.roster.Len())
	return size, cloneGroups(s.groups)
}

// Groups returns the latest generated groups.
// Returns ErrNoGroups before the first generation or when it was empty.
func (s *Session) Groups() (int, []models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.groups) == 0 {
		return 0, nil, ErrNoGroups
	}
	return s.groupSize, cloneGroups(s.groups), nil
}

func cloneGroups(groups []models.Group) []models.Group {
	out := make([]models.Group, len(groups))
	for i, g := range groups {
		members := make([]models.Participant, len(g.Members))
		copy(members, g.Members)
		out[i] = models.Group{ID: g.ID, Members: members}
	}
	return out
}
