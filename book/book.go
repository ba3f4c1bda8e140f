package book

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwortmann/meetbook/entity"
)

// Book is the canonical in-memory store of persons and meetings. It owns a
// person index keyed by identifier plus an insertion-ordered person list,
// and an insertion-ordered meeting list. Sort order by start time is a
// maintenance operation (SortMeetings), not a standing invariant.
//
// All accessors return defensive copies so callers can never mutate internal
// state. Guarded by an RWMutex; under the single command-dispatch thread the
// lock is uncontended and exists as the coarse-grained safety discipline for
// any future concurrent adaptation.
type Book struct {
	mu       sync.RWMutex
	persons  map[uuid.UUID]entity.Person
	order    []uuid.UUID // person insertion order
	meetings []entity.Meeting
	version  uint64
}

// New constructs an empty book.
func New() *Book {
	return &Book{persons: make(map[uuid.UUID]entity.Person)}
}

// Version returns the mutation counter. Every successful mutating call bumps
// it, including whole-state resets and re-sorts.
func (b *Book) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// AddPerson inserts a person. Fails with ErrDuplicateEntity if the identity
// is already present.
func (b *Book) AddPerson(p entity.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.persons[p.ID]; ok {
		return fmt.Errorf("%w: person %s (%s)", entity.ErrDuplicateEntity, p.Name, p.ID)
	}
	b.persons[p.ID] = p.Clone()
	b.order = append(b.order, p.ID)
	b.version++
	return nil
}

// HasPerson reports whether the person's identity is present.
func (b *Book) HasPerson(p entity.Person) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.persons[p.ID]
	return ok
}

// Person looks up a person by identifier.
func (b *Book) Person(id uuid.UUID) (entity.Person, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.persons[id]
	if !ok {
		return entity.Person{}, false
	}
	return p.Clone(), true
}

// RemovePerson deletes a person and detaches them from every meeting that
// references their identifier. The cascade runs in two phases: a read-only
// scan collecting affected meetings, then a substitution pass, so the
// meeting list is never mutated while being iterated. No dangling
// participant reference survives the call.
func (b *Book) RemovePerson(p entity.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.persons[p.ID]; !ok {
		return fmt.Errorf("%w: person %s", entity.ErrEntityNotFound, p.ID)
	}
	delete(b.persons, p.ID)
	for i, id := range b.order {
		if id == p.ID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	affected := make([]int, 0)
	for i, m := range b.meetings {
		if m.HasParticipant(p.ID) {
			affected = append(affected, i)
		}
	}
	for _, i := range affected {
		b.meetings[i] = b.meetings[i].WithoutParticipant(p.ID)
	}
	b.version++
	return nil
}

// SetPerson replaces target with edited. After the swap every meeting
// referencing the person is refreshed with a fresh copy of itself so derived
// display data recomputes; this reattachment pass substitutes values without
// changing them, unlike the deletion cascade.
//
// Fails with ErrEntityNotFound if target is absent, or ErrDuplicateEntity if
// edited carries a different identifier that is already taken.
func (b *Book) SetPerson(target, edited entity.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.persons[target.ID]; !ok {
		return fmt.Errorf("%w: person %s", entity.ErrEntityNotFound, target.ID)
	}
	if edited.ID != target.ID {
		if _, ok := b.persons[edited.ID]; ok {
			return fmt.Errorf("%w: person %s", entity.ErrDuplicateEntity, edited.ID)
		}
		delete(b.persons, target.ID)
		for i, id := range b.order {
			if id == target.ID {
				b.order[i] = edited.ID
				break
			}
		}
	}
	b.persons[edited.ID] = edited.Clone()
	b.reattachLocked(edited.ID)
	b.version++
	return nil
}

// ReattachDependentMeetings refreshes every meeting referencing the given
// person so views re-render data derived from the person's current fields.
func (b *Book) ReattachDependentMeetings(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reattachLocked(id)
	b.version++
}

// reattachLocked substitutes a copy for every meeting referencing id.
// Caller must hold the write lock.
func (b *Book) reattachLocked(id uuid.UUID) {
	affected := make([]int, 0)
	for i, m := range b.meetings {
		if m.HasParticipant(id) {
			affected = append(affected, i)
		}
	}
	for _, i := range affected {
		b.meetings[i] = b.meetings[i].Clone()
	}
}

// AddMeeting appends a meeting to the canonical list. Conflict checking is a
// separate query (Conflict); whether a conflicting meeting may still be
// added is the caller's policy. Fails with ErrDuplicateEntity if the
// meeting's identity is already present.
func (b *Book) AddMeeting(m entity.Meeting) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.meetings {
		if existing.SameIdentity(m) {
			return fmt.Errorf("%w: meeting %s (%s)", entity.ErrDuplicateEntity, m.Title, m.ID)
		}
	}
	b.meetings = append(b.meetings, m.Clone())
	b.version++
	return nil
}

// HasMeeting reports whether the meeting's identity is present.
func (b *Book) HasMeeting(m entity.Meeting) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.indexOfLocked(m) >= 0
}

// RemoveMeeting deletes the meeting with the same identity as m. Fails with
// ErrEntityNotFound if absent.
func (b *Book) RemoveMeeting(m entity.Meeting) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOfLocked(m)
	if i < 0 {
		return fmt.Errorf("%w: meeting %s", entity.ErrEntityNotFound, m.ID)
	}
	b.meetings = append(b.meetings[:i], b.meetings[i+1:]...)
	b.version++
	return nil
}

// RemoveRecurringGroup deletes m and every meeting sharing its recurrence
// lineage. A meeting without a recurrence descriptor is its own group of
// one. Fails with ErrEntityNotFound if no group member is present.
func (b *Book) RemoveRecurringGroup(m entity.Meeting) error {
	if m.Recurrence == nil {
		return b.RemoveMeeting(m)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.meetings[:0]
	removed := 0
	for _, existing := range b.meetings {
		if existing.Recurrence != nil && existing.Recurrence.SameLineage(*m.Recurrence) {
			removed++
			continue
		}
		kept = append(kept, existing)
	}
	if removed == 0 {
		return fmt.Errorf("%w: recurring group %s", entity.ErrEntityNotFound, m.Recurrence.Lineage)
	}
	b.meetings = kept
	b.version++
	return nil
}

// SetMeeting replaces target with edited. The stored entry is always a fresh
// copy, never the caller's value. Fails with ErrEntityNotFound if target is
// absent.
func (b *Book) SetMeeting(target, edited entity.Meeting) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOfLocked(target)
	if i < 0 {
		return fmt.Errorf("%w: meeting %s", entity.ErrEntityNotFound, target.ID)
	}
	b.meetings[i] = edited.Clone()
	b.version++
	return nil
}

// SortMeetings reorders the canonical meeting list ascending by start time.
// The sort is stable, so meetings with equal start times keep their relative
// insertion order, and repeated calls are idempotent.
func (b *Book) SortMeetings() {
	b.mu.Lock()
	defer b.mu.Unlock()
	sort.SliceStable(b.meetings, func(i, j int) bool {
		return b.meetings[i].Start.Before(b.meetings[j].Start)
	})
	b.version++
}

// NextMeeting returns the earliest meeting starting at or after from, or
// false when none exists. Equal start times resolve to the earlier entry in
// canonical order.
func (b *Book) NextMeeting(from time.Time) (entity.Meeting, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var best entity.Meeting
	found := false
	for _, m := range b.meetings {
		if m.Start.Before(from) {
			continue
		}
		if !found || m.Start.Before(best.Start) {
			best = m
			found = true
		}
	}
	if !found {
		return entity.Meeting{}, false
	}
	return best.Clone(), true
}

// Persons returns a defensive copy of the person list in canonical
// (insertion) order.
func (b *Book) Persons() []entity.Person {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]entity.Person, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.persons[id].Clone())
	}
	return out
}

// Meetings returns a defensive copy of the meeting list in canonical order.
func (b *Book) Meetings() []entity.Meeting {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]entity.Meeting, 0, len(b.meetings))
	for _, m := range b.meetings {
		out = append(out, m.Clone())
	}
	return out
}

// Clone returns a deep snapshot of the book. The copy shares no mutable
// state with the receiver, so later mutation of either side cannot corrupt
// the other. Snapshot version counters start fresh.
func (b *Book) Clone() *Book {
	b.mu.RLock()
	defer b.mu.RUnlock()
	clone := New()
	clone.order = make([]uuid.UUID, len(b.order))
	copy(clone.order, b.order)
	for id, p := range b.persons {
		clone.persons[id] = p.Clone()
	}
	clone.meetings = make([]entity.Meeting, 0, len(b.meetings))
	for _, m := range b.meetings {
		clone.meetings = append(clone.meetings, m.Clone())
	}
	return clone
}

// Reset replaces the book's collections with deep copies of other's. The
// receiver keeps its own version counter (bumped once) so views observing
// it see exactly one change.
func (b *Book) Reset(other *Book) {
	snapshot := other.Clone()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.persons = snapshot.persons
	b.order = snapshot.order
	b.meetings = snapshot.meetings
	b.version++
}

// Equal reports structural equality of the canonical collections, order
// included. Version counters are bookkeeping, not state, and are ignored.
func (b *Book) Equal(other *Book) bool {
	if b == other {
		return true
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()
	if len(b.order) != len(other.order) || len(b.meetings) != len(other.meetings) {
		return false
	}
	for i, id := range b.order {
		if other.order[i] != id || !b.persons[id].Equal(other.persons[id]) {
			return false
		}
	}
	for i, m := range b.meetings {
		if !m.Equal(other.meetings[i]) {
			return false
		}
	}
	return true
}

// indexOfLocked returns the canonical index of the meeting with m's
// identity, or -1. Caller must hold at least the read lock.
func (b *Book) indexOfLocked(m entity.Meeting) int {
	for i, existing := range b.meetings {
		if existing.SameIdentity(m) {
			return i
		}
	}
	return -1
}
