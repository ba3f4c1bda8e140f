package view

import "sync"

// Predicate decides whether an item is visible through a view.
type Predicate[T any] func(T) bool

// ShowAll matches every item. It is the default predicate of a fresh view.
func ShowAll[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// View is a read-only projection of a canonical collection, filtered by the
// active predicate and preserving canonical order. The source is expressed
// as two funcs so the view depends on behavior, not on the store type:
// items returns the canonical contents (already defensively copied) and
// version returns the store's mutation counter.
type View[T any] struct {
	mu        sync.Mutex
	items     func() []T
	version   func() uint64
	pred      Predicate[T]
	seen      uint64
	fresh     bool
	visible   []T
	listeners []func()
}

// New constructs a view over the given source with the show-all predicate.
func New[T any](items func() []T, version func() uint64) *View[T] {
	return &View[T]{items: items, version: version, pred: ShowAll[T]()}
}

// SetPredicate replaces the active predicate and recomputes the projection.
// A nil predicate means show-all. Change listeners are notified.
func (v *View[T]) SetPredicate(pred Predicate[T]) {
	v.mu.Lock()
	if pred == nil {
		pred = ShowAll[T]()
	}
	v.pred = pred
	v.fresh = false
	listeners := v.listeners
	v.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Items returns the visible subsequence of the canonical collection in
// canonical order. The projection recomputes if the predicate changed or the
// source version moved since the last read; an empty result is a valid
// outcome, not an error.
func (v *View[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.refreshLocked()
	out := make([]T, len(v.visible))
	copy(out, v.visible)
	return out
}

// Len returns the number of visible items.
func (v *View[T]) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.refreshLocked()
	return len(v.visible)
}

// Subscribe registers a change listener invoked after predicate changes and
// explicit invalidations. Listeners pull fresh contents via Items.
func (v *View[T]) Subscribe(fn func()) {
	v.mu.Lock()
	v.listeners = append(v.listeners, fn)
	v.mu.Unlock()
}

// Invalidate notifies listeners that the underlying collection changed. The
// projection itself recomputes lazily on the next read; calling Invalidate
// is never required for correctness, only for push-style refresh signals.
func (v *View[T]) Invalidate() {
	v.mu.Lock()
	listeners := v.listeners
	v.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// refreshLocked recomputes the visible slice when stale. Caller holds the lock.
func (v *View[T]) refreshLocked() {
	current := v.version()
	if v.fresh && current == v.seen {
		return
	}
	all := v.items()
	visible := make([]T, 0, len(all))
	for _, item := range all {
		if v.pred(item) {
			visible = append(visible, item)
		}
	}
	v.visible = visible
	v.seen = current
	v.fresh = true
}
