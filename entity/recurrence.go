package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// maxOccurrences caps recurrence expansion so an unbounded rule cannot
// flood the store.
const maxOccurrences = 1000

// Recurrence links a meeting to its recurrence lineage. Every instance
// generated from one recurring definition carries the same Lineage key;
// deleting any instance of the group removes the whole group.
//
// Rule is an iCalendar RRULE body (e.g. "FREQ=WEEKLY;COUNT=4") interpreted
// relative to the meeting's start time.
type Recurrence struct {
	Lineage uuid.UUID `json:"lineage"`
	Rule    string    `json:"rule"`
}

// NewRecurrence creates a recurrence descriptor with a fresh lineage key.
func NewRecurrence(rule string) Recurrence {
	return Recurrence{Lineage: uuid.New(), Rule: rule}
}

// SameLineage reports whether two descriptors belong to the same group.
func (r Recurrence) SameLineage(other Recurrence) bool { return r.Lineage == other.Lineage }

// Occurrences expands a recurring meeting definition into at most count
// concrete meeting instances. Each instance receives a fresh identifier,
// keeps the definition's duration, title, location and participants, and
// shares the definition's recurrence lineage. The definition's own start
// time acts as DTSTART, so it is normally the first occurrence returned.
//
// Fails with ErrInvalidArgument if the meeting has no recurrence descriptor,
// count is not a positive integer, or the rule does not parse.
func (m Meeting) Occurrences(count int) ([]Meeting, error) {
	if m.Recurrence == nil {
		return nil, fmt.Errorf("%w: meeting %q is not recurring", ErrInvalidArgument, m.Title)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: occurrence count must be a positive integer, got %d", ErrInvalidArgument, count)
	}
	if count > maxOccurrences {
		count = maxOccurrences
	}

	rule, err := rrule.StrToRRule(m.Recurrence.Rule)
	if err != nil {
		return nil, fmt.Errorf("%w: recurrence rule %q: %v", ErrInvalidArgument, m.Recurrence.Rule, err)
	}
	rule.DTStart(m.Start)

	duration := m.Duration()
	next := rule.Iterator()
	out := make([]Meeting, 0, count)
	for len(out) < count {
		start, ok := next()
		if !ok {
			break
		}
		inst := m.Clone()
		inst.ID = uuid.New()
		inst.Start = start
		inst.End = start.Add(duration)
		out = append(out, inst)
	}
	return out, nil
}
