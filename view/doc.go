// Package view provides live, predicate-driven projections over the book's
// canonical collections. A View holds no copy of the underlying data, only
// the current predicate and the source's last-seen version; reads recompute
// lazily whenever the source version has moved. Change listeners registered
// with Subscribe are notified when the facade invalidates the view after a
// mutation or when the predicate changes, giving UI bindings a pull-based
// refresh signal.
package view
