// Package meetbook provides a high-level façade over the canonical entity
// store (book), the undo/redo state manager (history) and the filtered view
// projections (view) that make up the in-memory model of a personal
// contact/meeting manager. Most applications interact with this package by:
//  1. Creating a Model via New() (optionally overriding prefs, clock, logger
//     or the initial address book)
//  2. Invoking mutation methods from the command layer; each successful
//     mutation commits an undoable snapshot
//  3. Binding the person and meeting views to a UI, pulling fresh contents
//     after change notifications
//
// All defaults are safe for local development and testing; production
// wiring typically supplies loaded preferences, a persisted address book and
// a structured logger.
package meetbook

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwortmann/meetbook/book"
	"github.com/mwortmann/meetbook/entity"
	"github.com/mwortmann/meetbook/history"
	"github.com/mwortmann/meetbook/logging"
	"github.com/mwortmann/meetbook/prefs"
	"github.com/mwortmann/meetbook/view"
)

// Options configures the Model instance.
type Options struct {
	// Prefs supplies user preferences, most notably the minimum gap
	// between meetings used by conflict checks.
	Prefs *prefs.Prefs

	// Clock supplies the current time for next-meeting queries and
	// reminder windows. Defaults to the system clock.
	Clock entity.Clock

	// Logger receives structured mutation logs. Defaults to NoOpLogger.
	Logger logging.Logger

	// Book is the initial address book state, e.g. loaded through the
	// persistence boundary. Defaults to an empty book.
	Book *book.Book
}

// Model is the single entry point combining the entity store, the two
// filtered views and the undo/redo history. Every successful mutating call
// commits a deep snapshot of the post-mutation store, so the command layer
// gets whole-state undo for free.
type Model struct {
	book     *book.Book
	history  *history.StateManager
	persons  *view.View[entity.Person]
	meetings *view.View[entity.Meeting]
	clock    entity.Clock
	prefs    *prefs.Prefs
	logger   logging.Logger
}

// New creates a Model, applying any option functions to the defaults.
func New(optFns ...func(*Options)) *Model {
	opts := Options{
		Prefs:  prefs.Default(),
		Clock:  entity.SystemClock{},
		Logger: logging.NoOpLogger{},
		Book:   book.New(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	b := opts.Book.Clone()
	return &Model{
		book:     b,
		history:  history.NewStateManager(b),
		persons:  view.New(b.Persons, b.Version),
		meetings: view.New(b.Meetings, b.Version),
		clock:    opts.Clock,
		prefs:    opts.Prefs,
		logger:   opts.Logger,
	}
}

// commit records the post-mutation state and signals both views.
func (m *Model) commit() {
	m.history.Commit(m.book)
	m.persons.Invalidate()
	m.meetings.Invalidate()
}

// PersonView returns the live filtered projection of the person list.
func (m *Model) PersonView() *view.View[entity.Person] { return m.persons }

// MeetingView returns the live filtered projection of the meeting list.
func (m *Model) MeetingView() *view.View[entity.Meeting] { return m.meetings }

// Prefs returns the user preferences in effect.
func (m *Model) Prefs() *prefs.Prefs { return m.prefs }

// AddPerson inserts a contact and commits. Fails with ErrDuplicateEntity if
// the identity is already present.
func (m *Model) AddPerson(p entity.Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.persons.SetPredicate(nil)
	m.commit()
	m.logger.Debug("person added", "id", p.ID, "name", p.Name)
	return nil
}

// DeletePerson removes a contact, detaching them from every meeting, and
// commits.
func (m *Model) DeletePerson(p entity.Person) error {
	if err := m.book.RemovePerson(p); err != nil {
		return err
	}
	m.commit()
	m.logger.Debug("person deleted", "id", p.ID, "name", p.Name)
	return nil
}

// SetPerson replaces target with edited, refreshes dependent meetings and
// commits.
func (m *Model) SetPerson(target, edited entity.Person) error {
	if err := m.book.SetPerson(target, edited); err != nil {
		return err
	}
	m.commit()
	m.logger.Debug("person replaced", "id", edited.ID, "name", edited.Name)
	return nil
}

// HasPerson reports whether the contact's identity is present.
func (m *Model) HasPerson(p entity.Person) bool { return m.book.HasPerson(p) }

// Participant looks up a person referenced by a meeting participant entry.
// Fails with ErrEntityNotFound if the identifier does not resolve.
func (m *Model) Participant(id uuid.UUID) (entity.Person, error) {
	p, ok := m.book.Person(id)
	if !ok {
		return entity.Person{}, fmt.Errorf("%w: participant %s", entity.ErrEntityNotFound, id)
	}
	return p, nil
}

// ReattachDependentMeetings refreshes every meeting referencing the edited
// person so views re-render derived display data.
func (m *Model) ReattachDependentMeetings(edited entity.Person) {
	m.book.ReattachDependentMeetings(edited.ID)
	m.meetings.Invalidate()
}

// AddMeeting inserts a meeting and commits. The conflict check is not a
// precondition here; callers decide whether to consult HasConflict first and
// warn or reject.
func (m *Model) AddMeeting(mt entity.Meeting) error {
	if !mt.Start.Before(mt.End) {
		return fmt.Errorf("%w: meeting start must be before end", entity.ErrInvalidArgument)
	}
	if err := m.book.AddMeeting(mt); err != nil {
		return err
	}
	m.meetings.SetPredicate(nil)
	m.commit()
	m.logger.Debug("meeting added", "id", mt.ID, "title", mt.Title, "start", mt.Start)
	return nil
}

// AddRecurringMeeting expands a recurring meeting definition into at most
// count occurrences sharing one lineage and adds them all under a single
// history commit.
func (m *Model) AddRecurringMeeting(definition entity.Meeting, count int) error {
	occurrences, err := definition.Occurrences(count)
	if err != nil {
		return err
	}
	before := m.book.Clone()
	for _, occ := range occurrences {
		if err := m.book.AddMeeting(occ); err != nil {
			m.book.Reset(before)
			return err
		}
	}
	m.meetings.SetPredicate(nil)
	m.commit()
	m.logger.Debug("recurring meeting added", "title", definition.Title,
		"lineage", definition.Recurrence.Lineage, "occurrences", len(occurrences))
	return nil
}

// DeleteMeeting removes a single meeting and commits.
func (m *Model) DeleteMeeting(mt entity.Meeting) error {
	if err := m.book.RemoveMeeting(mt); err != nil {
		return err
	}
	m.commit()
	m.logger.Debug("meeting deleted", "id", mt.ID, "title", mt.Title)
	return nil
}

// DeleteRecurringMeetings removes the meeting and every instance sharing its
// recurrence lineage, then commits.
func (m *Model) DeleteRecurringMeetings(mt entity.Meeting) error {
	if err := m.book.RemoveRecurringGroup(mt); err != nil {
		return err
	}
	m.commit()
	m.logger.Debug("recurring group deleted", "id", mt.ID, "title", mt.Title)
	return nil
}

// SetMeeting replaces target with edited and commits.
func (m *Model) SetMeeting(target, edited entity.Meeting) error {
	if !edited.Start.Before(edited.End) {
		return fmt.Errorf("%w: meeting start must be before end", entity.ErrInvalidArgument)
	}
	if err := m.book.SetMeeting(target, edited); err != nil {
		return err
	}
	m.commit()
	m.logger.Debug("meeting replaced", "id", edited.ID, "title", edited.Title)
	return nil
}

// HasMeeting reports whether the meeting's identity is present.
func (m *Model) HasMeeting(mt entity.Meeting) bool { return m.book.HasMeeting(mt) }

// HasConflict checks the candidate against every stored meeting using the
// preferred minimum gap, returning the first violator in insertion order.
// The result is a value, not an error: the command layer chooses whether a
// conflict warns or rejects.
func (m *Model) HasConflict(mt entity.Meeting) (bool, *entity.Meeting) {
	return m.book.Conflict(mt, m.prefs.MinGap())
}

// NextMeeting returns the earliest meeting starting at or after now+offset,
// with now read from the injected clock.
func (m *Model) NextMeeting(offset time.Duration) (entity.Meeting, bool) {
	return m.book.NextMeeting(m.clock.Now().Add(offset))
}

// SortMeetings reorders the canonical meeting list ascending by start time
// and commits. The sort is stable and idempotent.
func (m *Model) SortMeetings() {
	m.book.SortMeetings()
	m.commit()
}

// RefreshApplication re-sorts the meeting list. Maintenance operation for
// the command layer; repeated calls produce the same order.
func (m *Model) RefreshApplication() {
	m.SortMeetings()
}

// FilterPersons replaces the person view's predicate (nil means show all).
func (m *Model) FilterPersons(pred view.Predicate[entity.Person]) {
	m.persons.SetPredicate(pred)
}

// FilterMeetings replaces the meeting view's predicate (nil means show all).
func (m *Model) FilterMeetings(pred view.Predicate[entity.Meeting]) {
	m.meetings.SetPredicate(pred)
}

// RemindMeetings narrows the meeting view to meetings starting within the
// next hours hours. Fails with ErrInvalidArgument unless hours is a
// positive integer; the command layer pre-validates, this re-validates.
func (m *Model) RemindMeetings(hours int) error {
	pred, err := view.MeetingWithinHours(m.clock, hours)
	if err != nil {
		return err
	}
	m.meetings.SetPredicate(pred)
	return nil
}

// Undo installs the previous snapshot as the live store. Fails with
// ErrNothingToUndo at the initial state. Filter predicates are not part of
// snapshots; only the canonical collections are restored.
func (m *Model) Undo() error {
	snapshot, err := m.history.Undo()
	if err != nil {
		return err
	}
	m.book.Reset(snapshot)
	m.persons.Invalidate()
	m.meetings.Invalidate()
	m.logger.Debug("undo applied")
	return nil
}

// Redo installs the next snapshot as the live store. Fails with
// ErrNothingToRedo at the newest state.
func (m *Model) Redo() error {
	snapshot, err := m.history.Redo()
	if err != nil {
		return err
	}
	m.book.Reset(snapshot)
	m.persons.Invalidate()
	m.meetings.Invalidate()
	m.logger.Debug("redo applied")
	return nil
}

// CanUndo reports whether an undo step is available.
func (m *Model) CanUndo() bool { return m.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (m *Model) CanRedo() bool { return m.history.CanRedo() }

// AddressBook returns a deep copy of the whole store for the persistence
// boundary to serialize.
func (m *Model) AddressBook() *book.Book { return m.book.Clone() }

// SetAddressBook replaces the whole store, e.g. after a load, and commits so
// the replacement is undoable.
func (m *Model) SetAddressBook(b *book.Book) {
	m.book.Reset(b)
	m.persons.SetPredicate(nil)
	m.meetings.SetPredicate(nil)
	m.commit()
	m.logger.Info("address book replaced",
		"persons", len(b.Persons()), "meetings", len(b.Meetings()))
}
