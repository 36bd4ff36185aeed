// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/danielhkuo/hr-toolkit/auth"
	"github.com/danielhkuo/hr-toolkit/models"
)

var (
	ErrEmptyInput  = errors.New("no names in input")
	ErrIDExhausted = errors.New("could not generate a unique participant id")
)

const (
	idBytes    = 8
	idAttempts = 8
)

// IDFunc generates participant ids
type IDFunc func() (string, error)

// Roster is the ordered participant list
type Roster struct {
	participants []models.Participant
	newID        IDFunc
}

// New creates a roster holding a copy of the given participants
func New(participants []models.Participant) *Roster {
	return &Roster{
		participants: clone(participants),
		newID:        func() (string, error) { return auth.GenerateID(idBytes) },
	}
}

// WithIDFunc replaces the id generator
func (r *Roster) WithIDFunc(fn IDFunc) *Roster {
	r.newID = fn
	return r
}

// Participants returns a copy of the roster in insertion order
func (r *Roster) Participants() []models.Participant {
	return clone(r.participants)
}

func (r *Roster) Len() int {
	return len(r.participants)
}

// SplitNames splits raw text on commas and line breaks and trims each name.
// Empty tokens are dropped.
func SplitNames(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(c rune) bool {
		return c == ',' || c == '\n' || c == '\r'
	})
	return lo.FilterMap(tokens, func(token string, _ int) (string, bool) {
		name := strings.TrimFunc(token, isTrimmable)
		return name, name != ""
	})
}

// Browsers count the zero width no-break space as whitespace when trimming
func isTrimmable(c rune) bool {
	return unicode.IsSpace(c) || c == '\uFEFF'
}

// Ingest appends every name found in raw with a fresh id.
// Returns ErrEmptyInput when raw holds no names; the roster is unchanged.
func (r *Roster) Ingest(raw string) ([]models.Participant, error) {
	names := SplitNames(raw)
	if len(names) == 0 {
		return nil, ErrEmptyInput
	}

	added, err := r.build(names)
	if err != nil {
		return nil, err
	}

	r.participants = append(r.participants, added...)
	return clone(added), nil
}

// Replace swaps the whole roster for the given names
func (r *Roster) Replace(names []string) ([]models.Participant, error) {
	saved := r.participants
	r.participants = nil

	list, err := r.build(names)
	if err != nil {
		r.participants = saved
		return nil, err
	}

	r.participants = list
	return clone(list), nil
}

func (r *Roster) build(names []string) ([]models.Participant, error) {
	taken := make(map[string]struct{}, len(r.participants)+len(names))
	for _, p := range r.participants {
		taken[p.ID] = struct{}{}
	}

	list := make([]models.Participant, 0, len(names))
	for _, name := range names {
		id, err := r.uniqueID(taken)
		if err != nil {
			return nil, err
		}
		taken[id] = struct{}{}
		list = append(list, models.Participant{ID: id, Name: name})
	}
	return list, nil
}

func (r *Roster) uniqueID(taken map[string]struct{}) (string, error) {
	for i := 0; i < idAttempts; i++ {
		id, err := r.newID()
		if err != nil {
			return "", fmt.Errorf("failed to generate participant id: %w", err)
		}
		if _, dup := taken[id]; !dup && id != "" {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// RemoveByID removes the participant with the given id.
// Reports whether an entry was removed; an unknown id is not an error.
func (r *Roster) RemoveByID(id string) bool {
	_, idx, ok := lo.FindIndexOf(r.participants, func(p models.Participant) bool {
		return p.ID == id
	})
	if !ok {
		return false
	}
	r.participants = append(r.participants[:idx:idx], r.participants[idx+1:]...)
	return true
}

// Clear empties the roster
func (r *Roster) Clear() {
	r.participants = nil
}

// DuplicateNames lists names that occur more than once, by exact match,
// in order of first occurrence
func (r *Roster) DuplicateNames() []string {
	names := lo.Map(r.participants, func(p models.Participant, _ int) string {
		return p.Name
	})
	return lo.FindDuplicates(names)
}

// RemoveDuplicates keeps the first participant of every name and
// returns how many entries were dropped
func (r *Roster) RemoveDuplicates() int {
	unique := lo.UniqBy(r.participants, func(p models.Participant) string {
		return p.Name
	})
	removed := len(r.participants) - len(unique)
	r.participants = unique
	return removed
}

func clone(list []models.Participant) []models.Participant {
	out := make([]models.Participant, len(list))
	copy(out, list)
	return out
}
