package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Meeting is a scheduled event referencing zero or more Person identifiers
// as participants. Participant entries are references into the address
// book's person index, never owned copies; the store repairs them when a
// person is deleted.
//
// Invariant: Start < End, enforced by NewMeeting and expected to hold for
// every Meeting handed to the store.
type Meeting struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Start        time.Time   `json:"start"`
	End          time.Time   `json:"end"`
	Location     string      `json:"location,omitempty"`
	Recurrence   *Recurrence `json:"recurrence,omitempty"`
	Participants []uuid.UUID `json:"participants,omitempty"`
}

// NewMeeting creates a meeting with a freshly assigned identifier. It fails
// with ErrInvalidArgument unless start is strictly before end.
func NewMeeting(title string, start, end time.Time, participants ...uuid.UUID) (Meeting, error) {
	if !start.Before(end) {
		return Meeting{}, fmt.Errorf("%w: meeting start %s must be before end %s",
			ErrInvalidArgument, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Meeting{ID: uuid.New(), Title: title, Start: start, End: end, Participants: participants}, nil
}

// SameIdentity reports whether m and other refer to the same logical entity.
func (m Meeting) SameIdentity(other Meeting) bool { return m.ID == other.ID }

// Equal reports full structural equality, identity and recurrence included.
func (m Meeting) Equal(other Meeting) bool {
	if m.ID != other.ID ||
		m.Title != other.Title ||
		!m.Start.Equal(other.Start) ||
		!m.End.Equal(other.End) ||
		m.Location != other.Location ||
		!slices.Equal(m.Participants, other.Participants) {
		return false
	}
	switch {
	case m.Recurrence == nil && other.Recurrence == nil:
		return true
	case m.Recurrence == nil || other.Recurrence == nil:
		return false
	default:
		return *m.Recurrence == *other.Recurrence
	}
}

// Duration returns the span covered by the meeting.
func (m Meeting) Duration() time.Duration { return m.End.Sub(m.Start) }

// HasParticipant reports whether the meeting references the given person ID.
func (m Meeting) HasParticipant(id uuid.UUID) bool {
	return slices.Contains(m.Participants, id)
}

// WithoutParticipant returns an edited copy with every reference to the
// given person ID removed. The receiver is left untouched.
func (m Meeting) WithoutParticipant(id uuid.UUID) Meeting {
	clone := m.Clone()
	clone.Participants = slices.DeleteFunc(clone.Participants, func(p uuid.UUID) bool {
		return p == id
	})
	return clone
}

// Clone returns a deep copy safe for independent mutation.
func (m Meeting) Clone() Meeting {
	clone := m
	clone.Participants = slices.Clone(m.Participants)
	if m.Recurrence != nil {
		r := *m.Recurrence
		clone.Recurrence = &r
	}
	return clone
}
