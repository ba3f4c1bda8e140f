package book

import (
	"time"

	"github.com/mwortmann/meetbook/entity"
)

// Conflict reports whether candidate violates the minimum-gap rule against
// any stored meeting, returning the first violator in canonical (insertion)
// order. The candidate itself is excluded by identity, so re-validating an
// edited copy of a stored meeting never reports a self-conflict.
//
// Two spans conflict iff each starts strictly before the other's end padded
// by the gap: s1 < e2+g && s2 < e1+g. With g == 0 this is plain interval
// overlap, so back-to-back meetings (e1 == s2) do not conflict; any positive
// gap makes them conflict. The strict-< boundary and insertion-order
// tie-break are fixed policy, covered by tests.
func (b *Book) Conflict(candidate entity.Meeting, minGap time.Duration) (bool, *entity.Meeting) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, existing := range b.meetings {
		if existing.SameIdentity(candidate) {
			continue
		}
		if spansConflict(candidate.Start, candidate.End, existing.Start, existing.End, minGap) {
			hit := existing.Clone()
			return true, &hit
		}
	}
	return false, nil
}

// spansConflict implements the symmetric overlap-with-buffer test for the
// half-open spans [s1,e1) and [s2,e2).
func spansConflict(s1, e1, s2, e2 time.Time, gap time.Duration) bool {
	return s1.Before(e2.Add(gap)) && s2.Before(e1.Add(gap))
}
