package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recurringFixture(t *testing.T, rule string) Meeting {
	t.Helper()
	m, err := NewMeeting("weekly sync", base, base.Add(time.Hour))
	require.NoError(t, err)
	r := NewRecurrence(rule)
	m.Recurrence = &r
	return m
}

func TestOccurrencesExpandsRule(t *testing.T) {
	m := recurringFixture(t, "FREQ=DAILY;COUNT=3")

	occ, err := m.Occurrences(10)
	require.NoError(t, err)
	require.Len(t, occ, 3, "COUNT in the rule bounds the expansion")

	for i, inst := range occ {
		assert.True(t, inst.Start.Equal(base.AddDate(0, 0, i)), "occurrence %d start", i)
		assert.Equal(t, time.Hour, inst.Duration(), "duration preserved")
		assert.True(t, inst.Recurrence.SameLineage(*m.Recurrence), "lineage shared")
		assert.NotEqual(t, m.ID, inst.ID, "each instance gets a fresh identity")
	}
	assert.NotEqual(t, occ[0].ID, occ[1].ID)
}

func TestOccurrencesCapsUnboundedRules(t *testing.T) {
	m := recurringFixture(t, "FREQ=DAILY")

	occ, err := m.Occurrences(4)
	require.NoError(t, err)
	assert.Len(t, occ, 4, "count caps an unbounded rule")
	assert.True(t, occ[0].Start.Equal(base), "DTSTART is the first occurrence")
}

func TestOccurrencesRejectsBadInput(t *testing.T) {
	m := recurringFixture(t, "FREQ=DAILY;COUNT=3")

	_, err := m.Occurrences(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = m.Occurrences(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	bad := recurringFixture(t, "FREQ=SOMETIMES")
	_, err = bad.Occurrences(2)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	plain, err := NewMeeting("one-off", base, base.Add(time.Hour))
	require.NoError(t, err)
	_, err = plain.Occurrences(2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
