// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grouping

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/random"
)

const (
	MinSize     = 2
	DefaultSize = 4
)

// ClampSize raises sizes below MinSize to MinSize
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	return size
}

// ParseSize turns a loosely typed group size (JSON number, numeric string)
// into a valid size. A missing size means DefaultSize; anything else that is
// unusable becomes MinSize.
func ParseSize(v any) int {
	switch n := v.(type) {
	case nil:
		return DefaultSize
	case float64:
		if math.IsNaN(n) || n < MinSize {
			return MinSize
		}
		if n > math.MaxInt32 {
			return math.MaxInt32
		}
		return int(n)
	case int:
		return ClampSize(n)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return ClampSize(i)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ParseSize(f)
		}
		return MinSize
	}
	return MinSize
}

// Generate shuffles participants and cuts them into groups of size; the
// last group holds the remainder. Group ids start at 1.
func Generate(participants []models.Participant, size int, rng random.Source) []models.Group {
	size = ClampSize(size)

	shuffled := make([]models.Participant, len(participants))
	copy(shuffled, participants)
	random.Shuffle(rng, shuffled)

	chunks := lo.Chunk(shuffled, size)
	return lo.Map(chunks, func(members []models.Participant, i int) models.Group {
		return models.Group{ID: i + 1, Members: members}
	})
}

// Label is the display name of a group, as used in exports
func Label(g models.Group) string {
	return fmt.Sprintf("第 %d 組", g.ID)
}
