// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/hr-toolkit/models"
)

func names(list []models.Participant) []string {
	return lo.Map(list, func(p models.Participant, _ int) string { return p.Name })
}

// sequentialIDs returns p1, p2, ... so tests can assert exact ids
func sequentialIDs() IDFunc {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("p%d", n), nil
	}
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma and newline", "Alice, Bob\nCarol", []string{"Alice", "Bob", "Carol"}},
		{"windows line endings", "Alice\r\nBob\r\n", []string{"Alice", "Bob"}},
		{"old mac line endings", "Alice\rBob", []string{"Alice", "Bob"}},
		{"empty tokens dropped", ",,Alice,, ,\n\n Bob ,", []string{"Alice", "Bob"}},
		{"whitespace only", "  \n\t , \r\n", []string{}},
		{"empty", "", []string{}},
		{"inner spaces kept", "Emma Wang, Jason  Chen", []string{"Emma Wang", "Jason  Chen"}},
		{"byte order mark trimmed", "\uFEFF王大明,李小華", []string{"王大明", "李小華"}},
		{"full width space trimmed", "\u3000張美玲\u3000", []string{"張美玲"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitNames(tt.raw)
			require.Equal(t, tt.want, append([]string{}, got...))
		})
	}
}

func TestIngest(t *testing.T) {
	req := require.New(t)
	r := New(nil).WithIDFunc(sequentialIDs())

	added, err := r.Ingest("Alice, Bob\nCarol")
	req.NoError(err)
	req.Equal([]models.Participant{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Carol"},
	}, added)

	// Appends preserve order
	_, err = r.Ingest("Dave")
	req.NoError(err)
	req.Equal([]string{"Alice", "Bob", "Carol", "Dave"}, names(r.Participants()))

	// Blank input is a no-op
	added, err = r.Ingest(" \n , ")
	req.ErrorIs(err, ErrEmptyInput)
	req.Empty(added)
	req.Equal(4, r.Len())
}

func TestIngest_NeverProducesBlankNames(t *testing.T) {
	inputs := []string{
		"a,b,c",
		" , ,\n\r\n",
		"x\n\n\ny",
		"  lead, trail  ,\tmid\t",
		strings.Repeat("n,", 50),
	}

	for _, raw := range inputs {
		r := New(nil)
		added, _ := r.Ingest(raw)

		tokens := 0
		for _, tok := range strings.FieldsFunc(raw, func(c rune) bool { return c == ',' || c == '\n' || c == '\r' }) {
			if strings.TrimSpace(tok) != "" {
				tokens++
			}
		}

		require.Len(t, added, tokens, "input %q", raw)
		for _, p := range added {
			require.NotEmpty(t, strings.TrimSpace(p.Name))
		}
	}
}

func TestIngest_IDsUnique(t *testing.T) {
	r := New([]models.Participant{{ID: "p1", Name: "Existing"}})

	// Generator collides with the existing id and with itself before moving on
	ids := []string{"p1", "p2", "p2", "p3"}
	i := 0
	r.WithIDFunc(func() (string, error) {
		id := ids[i]
		i++
		return id, nil
	})

	added, err := r.Ingest("A,B")
	require.NoError(t, err)
	require.Equal(t, []string{"p2", "p3"}, lo.Map(added, func(p models.Participant, _ int) string { return p.ID }))

	all := r.Participants()
	require.Len(t, lo.UniqBy(all, func(p models.Participant) string { return p.ID }), len(all))
}

func TestIngest_IDGeneratorExhausted(t *testing.T) {
	r := New([]models.Participant{{ID: "same", Name: "Existing"}}).
		WithIDFunc(func() (string, error) { return "same", nil })

	_, err := r.Ingest("A")
	require.ErrorIs(t, err, ErrIDExhausted)
	require.Equal(t, 1, r.Len())
}

func TestIngest_IDGeneratorFailure(t *testing.T) {
	boom := errors.New("entropy unavailable")
	r := New(nil).WithIDFunc(func() (string, error) { return "", boom })

	_, err := r.Ingest("A,B")
	require.ErrorIs(t, err, boom)
	require.Zero(t, r.Len())
}

func TestDefaultIDs(t *testing.T) {
	r := New(nil)
	added, err := r.Ingest(strings.Repeat("x\n", 200))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range added {
		require.Len(t, p.ID, 16)
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestRemoveByID(t *testing.T) {
	req := require.New(t)
	r := New([]models.Participant{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
		{ID: "3", Name: "C"},
	})

	req.True(r.RemoveByID("2"))
	req.Equal([]string{"A", "C"}, names(r.Participants()))

	req.False(r.RemoveByID("missing"))
	req.Equal(2, r.Len())

	req.True(r.RemoveByID("1"))
	req.True(r.RemoveByID("3"))
	req.Zero(r.Len())
}

func TestRemoveByID_DoesNotAliasSnapshots(t *testing.T) {
	r := New([]models.Participant{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}, {ID: "3", Name: "C"}})
	before := r.Participants()

	r.RemoveByID("1")

	require.Equal(t, []string{"A", "B", "C"}, names(before))
}

func TestClear(t *testing.T) {
	r := New([]models.Participant{{ID: "1", Name: "A"}})
	r.Clear()
	require.Zero(t, r.Len())
	require.Empty(t, r.Participants())
}

func TestDuplicateNames(t *testing.T) {
	r := New([]models.Participant{
		{ID: "1", Name: "張美玲"},
		{ID: "2", Name: "Alice"},
		{ID: "3", Name: "alice"},
		{ID: "4", Name: "李小華"},
		{ID: "5", Name: "張美玲"},
		{ID: "6", Name: "李小華"},
		{ID: "7", Name: "李小華"},
	})

	// Case-sensitive, ordered by first occurrence
	require.Equal(t, []string{"張美玲", "李小華"}, r.DuplicateNames())

	require.Empty(t, New(nil).DuplicateNames())
}

func TestRemoveDuplicates(t *testing.T) {
	req := require.New(t)
	r := New([]models.Participant{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
		{ID: "3", Name: "A"},
		{ID: "4", Name: "C"},
		{ID: "5", Name: "B"},
	})

	req.Equal(2, r.RemoveDuplicates())
	once := r.Participants()
	req.Equal([]models.Participant{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
		{ID: "4", Name: "C"},
	}, once)
	req.Empty(r.DuplicateNames())

	// Idempotent
	req.Zero(r.RemoveDuplicates())
	req.Equal(once, r.Participants())
}

func TestReplace(t *testing.T) {
	req := require.New(t)
	r := New([]models.Participant{{ID: "old", Name: "Old"}}).WithIDFunc(sequentialIDs())

	list, err := r.Replace([]string{"X", "Y"})
	req.NoError(err)
	req.Equal([]models.Participant{{ID: "p1", Name: "X"}, {ID: "p2", Name: "Y"}}, list)
	req.Equal(list, r.Participants())

	// A failing generator leaves the roster untouched
	r.WithIDFunc(func() (string, error) { return "", errors.New("nope") })
	_, err = r.Replace([]string{"Z"})
	req.Error(err)
	req.Equal(list, r.Participants())
}
