// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/storage"
)

// SlotKey is the key-value slot holding the serialized roster
const SlotKey = "hr-toolkit-names"

var ErrCorruptState = errors.New("persisted roster is corrupt")

// Save writes the full roster as a JSON array of {id, name}
func (r *Roster) Save(ctx context.Context, slot storage.Store) error {
	data, err := json.Marshal(r.Participants())
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	if err := slot.Put(ctx, SlotKey, data); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

// Load reads the persisted roster. A missing slot yields an empty roster.
// Undecodable data returns ErrCorruptState; entries without an id or name,
// and repeated ids, are dropped.
func Load(ctx context.Context, slot storage.Store) (*Roster, int, error) {
	data, err := slot.Get(ctx, SlotKey)
	if errors.Is(err, storage.ErrNotFound) {
		return New(nil), 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	var saved []models.Participant
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	seen := make(map[string]struct{}, len(saved))
	valid := make([]models.Participant, 0, len(saved))
	for _, p := range saved {
		if p.ID == "" || strings.TrimFunc(p.Name, isTrimmable) == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		valid = append(valid, p)
	}

	return New(valid), len(saved) - len(valid), nil
}
