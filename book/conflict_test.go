package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictBackToBack(t *testing.T) {
	b := New()
	first := at(t, "first", 10*time.Hour, 11*time.Hour)
	require.NoError(t, b.AddMeeting(first))

	backToBack := at(t, "second", 11*time.Hour, 12*time.Hour)

	hit, _ := b.Conflict(backToBack, 0)
	assert.False(t, hit, "with zero gap, e1 == s2 does not conflict")

	hit, violator := b.Conflict(backToBack, time.Minute)
	assert.True(t, hit, "any positive gap makes back-to-back conflict")
	require.NotNil(t, violator)
	assert.Equal(t, "first", violator.Title)
}

func TestConflictMinimumGap(t *testing.T) {
	b := New()
	m1 := at(t, "m1", 10*time.Hour, 11*time.Hour)
	require.NoError(t, b.AddMeeting(m1))

	// 15 minutes of slack against a 30 minute minimum gap.
	m2 := at(t, "m2", 11*time.Hour+15*time.Minute, 12*time.Hour)
	hit, violator := b.Conflict(m2, 30*time.Minute)
	assert.True(t, hit)
	require.NotNil(t, violator)
	assert.True(t, violator.SameIdentity(m1))

	// Exactly the required gap does not conflict (strict-< boundary).
	m3 := at(t, "m3", 11*time.Hour+30*time.Minute, 12*time.Hour)
	hit, _ = b.Conflict(m3, 30*time.Minute)
	assert.False(t, hit)

	// Plain overlap with zero gap.
	m4 := at(t, "m4", 10*time.Hour+30*time.Minute, 11*time.Hour+30*time.Minute)
	hit, _ = b.Conflict(m4, 0)
	assert.True(t, hit)
}

func TestConflictFirstViolatorInInsertionOrder(t *testing.T) {
	b := New()
	// Later start time inserted first: insertion order, not time order,
	// decides which violator is reported.
	late := at(t, "late", 14*time.Hour, 15*time.Hour)
	early := at(t, "early", 10*time.Hour, 11*time.Hour)
	require.NoError(t, b.AddMeeting(late))
	require.NoError(t, b.AddMeeting(early))

	candidate := at(t, "all-day", 9*time.Hour, 16*time.Hour)
	hit, violator := b.Conflict(candidate, 0)
	require.True(t, hit)
	assert.Equal(t, "late", violator.Title)

	b.SortMeetings()
	hit, violator = b.Conflict(candidate, 0)
	require.True(t, hit)
	assert.Equal(t, "early", violator.Title, "after an explicit sort the canonical order changed")
}

func TestConflictExcludesSelf(t *testing.T) {
	b := New()
	m := at(t, "solo", 10*time.Hour, 11*time.Hour)
	require.NoError(t, b.AddMeeting(m))

	hit, _ := b.Conflict(m, time.Hour)
	assert.False(t, hit, "a meeting never conflicts with itself")

	// An edited copy of a stored meeting keeps its identity and is still
	// excluded while being checked against everything else.
	edited := m.Clone()
	edited.Start = day.Add(10*time.Hour + 5*time.Minute)
	hit, _ = b.Conflict(edited, 0)
	assert.False(t, hit)
}

func TestSpansConflictTruthTable(t *testing.T) {
	s := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		gap            time.Duration
		want           bool
	}{
		{"disjoint", s(1), s(2), s(5), s(6), 0, false},
		{"overlap", s(1), s(3), s(2), s(4), 0, true},
		{"contained", s(1), s(6), s(2), s(3), 0, true},
		{"touching no gap", s(1), s(2), s(2), s(3), 0, false},
		{"touching with gap", s(1), s(2), s(2), s(3), time.Minute, true},
		{"gap just satisfied", s(1), s(2), s(3), s(4), time.Hour, false},
		{"gap violated", s(1), s(2), s(3), s(4), 2 * time.Hour, true},
		{"symmetric", s(3), s(4), s(1), s(2), 2 * time.Hour, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spansConflict(tt.s1, tt.e1, tt.s2, tt.e2, tt.gap))
		})
	}
}
