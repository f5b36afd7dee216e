package slot

import (
	"testing"
	"time"
)

func hm(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func iv(sh, sm, eh, em int) Interval {
	return Interval{Start: hm(sh, sm), End: hm(eh, em)}
}

func equalSchedules(a, b Schedule) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key() != b[i].Key() {
			return false
		}
	}
	return true
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		existing  Schedule
		candidate Interval
		want      Schedule
	}{
		{
			name:      "empty schedule appends",
			existing:  nil,
			candidate: iv(9, 0, 10, 0),
			want:      Schedule{iv(9, 0, 10, 0)},
		},
		{
			name:      "disjoint appends",
			existing:  Schedule{iv(9, 0, 10, 0)},
			candidate: iv(11, 0, 12, 0),
			want:      Schedule{iv(9, 0, 10, 0), iv(11, 0, 12, 0)},
		},
		{
			name:      "partial overlap at end",
			existing:  Schedule{iv(9, 0, 10, 0)},
			candidate: iv(9, 30, 11, 0),
			want:      Schedule{iv(9, 0, 11, 0)},
		},
		{
			name:      "partial overlap at start",
			existing:  Schedule{iv(9, 0, 10, 0)},
			candidate: iv(8, 0, 9, 30),
			want:      Schedule{iv(8, 0, 10, 0)},
		},
		{
			name:      "candidate inside existing",
			existing:  Schedule{iv(9, 0, 12, 0)},
			candidate: iv(10, 0, 11, 0),
			want:      Schedule{iv(9, 0, 12, 0)},
		},
		{
			name:      "candidate contains existing",
			existing:  Schedule{iv(10, 0, 11, 0)},
			candidate: iv(9, 0, 12, 0),
			want:      Schedule{iv(9, 0, 12, 0)},
		},
		{
			name:      "touching after merges",
			existing:  Schedule{iv(9, 0, 10, 0)},
			candidate: iv(10, 0, 11, 0),
			want:      Schedule{iv(9, 0, 11, 0)},
		},
		{
			name:      "touching before merges",
			existing:  Schedule{iv(10, 0, 11, 0)},
			candidate: iv(9, 0, 10, 0),
			want:      Schedule{iv(9, 0, 11, 0)},
		},
		{
			name:      "bridging widens both without coalescing",
			existing:  Schedule{iv(9, 0, 10, 0), iv(11, 0, 12, 0)},
			candidate: iv(9, 30, 11, 30),
			want:      Schedule{iv(9, 0, 11, 30), iv(9, 30, 12, 0)},
		},
		{
			name:      "preserves order of untouched intervals",
			existing:  Schedule{iv(14, 0, 15, 0), iv(9, 0, 10, 0)},
			candidate: iv(9, 30, 10, 30),
			want:      Schedule{iv(14, 0, 15, 0), iv(9, 0, 10, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.candidate)
			if !equalSchedules(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	existing := Schedule{iv(9, 0, 10, 0)}
	_ = Merge(existing, iv(9, 30, 11, 0))
	if !existing[0].End.Equal(hm(10, 0)) {
		t.Errorf("existing was modified: %v", existing)
	}
}

func TestMerge_SizeProperty(t *testing.T) {
	existing := Schedule{iv(9, 0, 10, 0), iv(13, 0, 14, 0)}

	absorbed := Merge(existing, iv(13, 30, 15, 0))
	if len(absorbed) != len(existing) {
		t.Errorf("absorbed len = %d, want %d", len(absorbed), len(existing))
	}
	if absorbed.Overlapping() {
		t.Errorf("absorbed result overlaps: %v", absorbed)
	}

	appended := Merge(existing, iv(11, 0, 12, 0))
	if len(appended) != len(existing)+1 {
		t.Errorf("appended len = %d, want %d", len(appended), len(existing)+1)
	}
	if appended.Overlapping() {
		t.Errorf("appended result overlaps: %v", appended)
	}
}

func TestDedupe(t *testing.T) {
	in := Schedule{iv(9, 0, 10, 0), iv(11, 0, 12, 0), iv(9, 0, 10, 0), iv(9, 0, 10, 30)}
	want := Schedule{iv(9, 0, 10, 0), iv(11, 0, 12, 0), iv(9, 0, 10, 30)}

	got := Dedupe(in)
	if !equalSchedules(got, want) {
		t.Errorf("Dedupe() = %v, want %v", got, want)
	}
	if again := Dedupe(got); !equalSchedules(again, got) {
		t.Errorf("Dedupe is not idempotent: %v then %v", got, again)
	}
}

func TestDedupe_MatchesAcrossLocations(t *testing.T) {
	ny := time.FixedZone("EST", -5*60*60)
	in := Schedule{iv(9, 0, 10, 0), iv(9, 0, 10, 0).In(ny)}
	if got := Dedupe(in); len(got) != 1 {
		t.Errorf("Dedupe() len = %d, want 1", len(got))
	}
}

func TestAdd_EndToEnd(t *testing.T) {
	var s Schedule
	s = s.Add(iv(9, 0, 10, 0))
	s = s.Add(iv(9, 30, 11, 0))

	want := Schedule{iv(9, 0, 11, 0)}
	if !equalSchedules(s, want) {
		t.Errorf("Add() = %v, want %v", s, want)
	}
}

func TestAdd_RemovesDuplicateFromDoubleMerge(t *testing.T) {
	// Both existing intervals collapse to the same span after the merge.
	s := Schedule{iv(9, 0, 10, 0), iv(10, 0, 11, 0)}
	got := s.Add(iv(9, 0, 11, 0))

	want := Schedule{iv(9, 0, 11, 0)}
	if !equalSchedules(got, want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestSorted(t *testing.T) {
	s := Schedule{iv(14, 0, 15, 0), iv(9, 0, 10, 0), iv(11, 0, 12, 0)}
	got := s.Sorted()
	want := Schedule{iv(9, 0, 10, 0), iv(11, 0, 12, 0), iv(14, 0, 15, 0)}
	if !equalSchedules(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
	if !s[0].Start.Equal(hm(14, 0)) {
		t.Error("Sorted modified the receiver")
	}
}

func TestOverlapping(t *testing.T) {
	tests := []struct {
		name string
		s    Schedule
		want bool
	}{
		{name: "empty", s: nil, want: false},
		{name: "adjacent", s: Schedule{iv(9, 0, 10, 0), iv(10, 0, 11, 0)}, want: false},
		{name: "overlap", s: Schedule{iv(9, 0, 10, 30), iv(10, 0, 11, 0)}, want: true},
		{name: "nested beyond neighbor", s: Schedule{iv(9, 0, 13, 0), iv(9, 30, 10, 0), iv(12, 0, 12, 30)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Overlapping(); got != tt.want {
				t.Errorf("Overlapping() = %v, want %v", got, tt.want)
			}
		})
	}
}
