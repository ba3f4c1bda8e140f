// Package book contains the canonical entity store (Book) owning the person
// and meeting collections. It enforces uniqueness and scheduling invariants,
// performs cascading updates (deleting a person detaches them from every
// meeting), and exposes the conflict check as a query so the command layer
// can choose a warn-or-reject policy.
//
// The Book maintains a monotonically increasing version counter bumped by
// every mutation. Views compare it against their last-seen version to
// recompute lazily instead of aliasing internal collections.
package book
