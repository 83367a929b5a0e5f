package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"apart horizontally", Rect{0, 0, 10, 10}, Rect{15, 0, 10, 10}, false},
		{"apart vertically", Rect{0, 0, 10, 10}, Rect{0, 15, 10, 10}, false},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 5, 5}, true},
		{"one pixel corner", Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, true},
		{"fighter on platform top", Rect{150, 426, 40, 60}, Rect{150, 486, 100, 10}, false},
		{"fighter sunk into platform", Rect{150, 427, 40, 60}, Rect{150, 486, 100, 10}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.expected, Overlaps(tc.b, tc.a), "overlap must be symmetric")
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
		})
	}
}

func TestOverlapsSymmetryGrid(t *testing.T) {
	base := Rect{X: 20, Y: 20, W: 40, H: 60}
	for x := -50.0; x <= 90; x += 7 {
		for y := -70.0; y <= 90; y += 9 {
			other := Rect{X: x, Y: y, W: 30, H: 15}
			if Overlaps(base, other) != Overlaps(other, base) {
				t.Fatalf("asymmetric result for %+v vs %+v", base, other)
			}
		}
	}
}
