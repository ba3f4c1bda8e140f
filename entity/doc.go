// Package entity provides the foundational domain types and contracts used by
// meetbook. It defines:
//
//   - Person (identity-bearing contact record)
//   - Meeting (scheduled event referencing Person identifiers)
//   - Recurrence (lineage key + generation rule for recurring meetings)
//   - Clock (injectable time source keeping the model deterministic)
//   - The shared error sentinels surfaced by the model packages
//
// The package intentionally keeps implementation concerns (storage, views,
// history) out of scope so higher level packages can depend on small,
// stable contracts without cycles.
package entity
