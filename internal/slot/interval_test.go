package slot

import (
	"errors"
	"testing"
	"time"
)

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{name: "valid", start: hm(9, 0), end: hm(10, 0)},
		{name: "zero length", start: hm(9, 0), end: hm(9, 0), wantErr: ErrEndBeforeStart},
		{name: "reversed", start: hm(10, 0), end: hm(9, 0), wantErr: ErrEndBeforeStart},
		{name: "zero start", end: hm(9, 0), wantErr: ErrZeroTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInterval(tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Duration() != time.Hour {
				t.Errorf("Duration() = %v, want 1h", got.Duration())
			}
		})
	}
}

func TestIntervalOverlapsAndTouches(t *testing.T) {
	tests := []struct {
		name         string
		a, b         Interval
		wantOverlaps bool
		wantTouches  bool
	}{
		{name: "adjacent", a: iv(9, 0, 10, 0), b: iv(10, 0, 11, 0), wantTouches: true},
		{name: "gap", a: iv(9, 0, 10, 0), b: iv(11, 0, 12, 0)},
		{name: "partial", a: iv(9, 0, 10, 30), b: iv(10, 0, 11, 0), wantOverlaps: true},
		{name: "same", a: iv(9, 0, 11, 0), b: iv(9, 0, 11, 0), wantOverlaps: true},
		{name: "nested", a: iv(9, 0, 12, 0), b: iv(10, 0, 11, 0), wantOverlaps: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.wantOverlaps {
				t.Errorf("Overlaps() = %v, want %v", got, tt.wantOverlaps)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.wantOverlaps {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.wantOverlaps)
			}
			if got := tt.a.Touches(tt.b); got != tt.wantTouches {
				t.Errorf("Touches() = %v, want %v", got, tt.wantTouches)
			}
		})
	}
}
