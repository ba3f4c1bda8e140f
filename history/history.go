package history

import (
	"sync"

	"github.com/mwortmann/meetbook/book"
	"github.com/mwortmann/meetbook/entity"
)

// StateManager tracks book snapshots around mutating commands. The sequence
// always holds at least the initial state; the cursor points at the snapshot
// matching the live book.
//
// Snapshots are exclusively owned: Commit stores its own deep copy and
// Undo/Redo hand back deep copies, so no caller can corrupt history by
// mutating the live book afterwards.
type StateManager struct {
	mu        sync.Mutex
	snapshots []*book.Book
	cursor    int
}

// NewStateManager seeds the history with a copy of the initial state
// (empty or freshly loaded).
func NewStateManager(initial *book.Book) *StateManager {
	return &StateManager{snapshots: []*book.Book{initial.Clone()}}
}

// Commit records the post-mutation state. Any redo tail beyond the cursor is
// discarded and the cursor advances to the new entry. A snapshot structurally
// equal to the current one is skipped, so no-op commands never produce two
// consecutive identical entries.
func (s *StateManager) Commit(snapshot *book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot.Equal(s.snapshots[s.cursor]) {
		return
	}
	s.snapshots = append(s.snapshots[:s.cursor+1], snapshot.Clone())
	s.cursor++
}

// Undo steps the cursor back and returns a copy of that snapshot for the
// caller to install as the live state. Fails with ErrNothingToUndo at the
// initial state.
func (s *StateManager) Undo() (*book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == 0 {
		return nil, entity.ErrNothingToUndo
	}
	s.cursor--
	return s.snapshots[s.cursor].Clone(), nil
}

// Redo steps the cursor forward and returns a copy of that snapshot. Fails
// with ErrNothingToRedo at the newest state.
func (s *StateManager) Redo() (*book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == len(s.snapshots)-1 {
		return nil, entity.ErrNothingToRedo
	}
	s.cursor++
	return s.snapshots[s.cursor].Clone(), nil
}

// CanUndo reports whether an undo step is available.
func (s *StateManager) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor > 0
}

// CanRedo reports whether a redo step is available.
func (s *StateManager) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor < len(s.snapshots)-1
}

// Len returns the number of recorded snapshots.
func (s *StateManager) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshots)
}
