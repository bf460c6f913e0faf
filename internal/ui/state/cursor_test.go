package state

import "testing"

func TestStepClampsAndWraps(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		delta     int
		count     int
		wrap      bool
		wantIndex int
		wantMoved bool
	}{
		{"down", 0, 1, 3, false, 1, true},
		{"up", 2, -1, 3, false, 1, true},
		{"large delta moves one", 0, 40, 3, false, 1, true},
		{"clamp at end", 2, 1, 3, false, 2, false},
		{"clamp at start", 0, -5, 3, false, 0, false},
		{"wrap forward", 2, 1, 3, true, 0, true},
		{"wrap backward", 0, -1, 3, true, 2, true},
		{"single item wrap", 0, 1, 1, true, 0, false},
		{"zero delta", 1, 0, 3, false, 1, false},
		{"empty", 5, 1, 0, false, 0, false},
		{"stale index normalised", 9, -1, 3, false, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := Step(tt.index, tt.delta, tt.count, tt.wrap)
			if got != tt.wantIndex || moved != tt.wantMoved {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.wantIndex, tt.wantMoved, got, moved)
			}
		})
	}
}

func TestStepNeverLeavesRange(t *testing.T) {
	deltas := []int{1, 1, 1, 5, -2, -9, 1, 1, 1, 1, 1, 1, -1, 3, 3, 3, -7, -7, -7, 1}
	for _, wrap := range []bool{false, true} {
		idx := 0
		for _, d := range deltas {
			idx, _ = Step(idx, d, 4, wrap)
			if idx < 0 || idx >= 4 {
				t.Fatalf("wrap=%v: index %d escaped range", wrap, idx)
			}
		}
	}
}

func TestFollowMovesMinimally(t *testing.T) {
	// 10 rows of 16px in a 108px view.
	const row, view, total = 16.0, 108.0, 160.0
	offset := 0.0
	offset = Follow(offset, 5*row, row, view, total)
	if offset != 0 {
		t.Fatalf("expected no movement while row 5 is visible, got %.1f", offset)
	}
	offset = Follow(offset, 7*row, row, view, total)
	if offset != 8*row-view {
		t.Fatalf("expected offset %.1f to reveal row 7, got %.1f", 8*row-view, offset)
	}
	offset = Follow(offset, 9*row, row, view, total)
	if offset != total-view {
		t.Fatalf("expected offset at max %.1f, got %.1f", total-view, offset)
	}
	offset = Follow(offset, 3*row, row, view, total)
	if offset != 3*row {
		t.Fatalf("expected offset aligned with row 3, got %.1f", offset)
	}
	if got := Follow(50, 0, row, view, 32); got != 0 {
		t.Fatalf("expected short content to pin offset at 0, got %.1f", got)
	}
	if got := Follow(50, 0, row, 0, total); got != 0 {
		t.Fatalf("expected empty view to reset offset, got %.1f", got)
	}
}

func TestFollowKeepsSelectionVisible(t *testing.T) {
	const row, view = 16.0, 108.0
	count := 12
	total := float64(count) * row
	offset := 0.0
	idx := 0
	for _, d := range []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1} {
		idx, _ = Step(idx, d, count, false)
		offset = Follow(offset, float64(idx)*row, row, view, total)
		top := float64(idx) * row
		if top < offset || top+row > offset+view {
			t.Fatalf("row %d at %.1f outside window [%.1f, %.1f)", idx, top, offset, offset+view)
		}
	}
}

func TestThumb(t *testing.T) {
	if off, length := Thumb(0, 1, 100, 4); off != 0 || length != 100 {
		t.Fatalf("expected full track for single item, got (%d, %d)", off, length)
	}
	if off, length := Thumb(0, 0, 100, 4); off != 0 || length != 100 {
		t.Fatalf("expected full track for empty list, got (%d, %d)", off, length)
	}
	if off, length := Thumb(0, 10, 100, 4); off != 0 || length != 10 {
		t.Fatalf("expected thumb at top, got (%d, %d)", off, length)
	}
	if off, length := Thumb(9, 10, 100, 4); off != 90 || length != 10 {
		t.Fatalf("expected thumb at bottom, got (%d, %d)", off, length)
	}
	if _, length := Thumb(3, 200, 100, 4); length != 4 {
		t.Fatalf("expected minimum thumb length, got %d", length)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		index, count int
		want         float64
	}{
		{0, 1, 1},
		{0, 0, 1},
		{0, 5, 0},
		{2, 5, 0.5},
		{4, 5, 1},
		{9, 5, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.index, tt.count); got != tt.want {
			t.Fatalf("Progress(%d, %d): expected %.2f, got %.2f", tt.index, tt.count, tt.want, got)
		}
	}
}
