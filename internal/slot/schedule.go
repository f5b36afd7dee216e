package slot

import (
	"slices"
	"time"
)

// Schedule is the set of selected intervals. Order carries no meaning.
type Schedule []Interval

// Merge folds candidate into every interval it overlaps or touches, or
// appends it when it meets none. The input is not modified.
//
// Each existing interval is compared against the original candidate only, so
// a candidate bridging two separate intervals widens both of them instead of
// coalescing them into one.
func Merge(existing Schedule, candidate Interval) Schedule {
	out := make(Schedule, 0, len(existing)+1)
	merged := false
	for _, e := range existing {
		if candidate.Overlaps(e) || candidate.Touches(e) {
			merged = true
			e = Interval{
				Start: earliest(e.Start, candidate.Start),
				End:   latest(e.End, candidate.End),
			}
		}
		out = append(out, e)
	}
	if !merged {
		out = append(out, candidate)
	}
	return out
}

// Dedupe drops intervals whose millisecond signature was already seen,
// keeping the first occurrence. The input is not modified.
func Dedupe(intervals Schedule) Schedule {
	out := make(Schedule, 0, len(intervals))
	seen := make(map[Key]struct{}, len(intervals))
	for _, iv := range intervals {
		k := iv.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, iv)
	}
	return out
}

// Add merges candidate into s and removes duplicates.
func (s Schedule) Add(candidate Interval) Schedule {
	return Dedupe(Merge(s, candidate))
}

// Sorted returns a chronological copy of s.
func (s Schedule) Sorted() Schedule {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// Overlapping reports whether any two intervals in s overlap.
func (s Schedule) Overlapping() bool {
	sorted := s.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Before(sorted[i-1].End) {
			return true
		}
		sorted[i].End = latest(sorted[i].End, sorted[i-1].End)
	}
	return false
}

func earliest(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
