// Package history implements whole-state memento undo/redo over book
// snapshots. The StateManager owns an append-only sequence of deep book
// copies plus a cursor; committing after an undo truncates the redo tail.
// Snapshots are full copies rather than diffs: address books are small, so
// the memory trade is cheap and undo trivially restores every field.
package history
