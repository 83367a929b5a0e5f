package core

import (
	"fmt"
	"testing"

	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFighterLandsOnSubPixelOverlapAtCellBoundary(t *testing.T) {
	tests := []struct {
		name     string
		platform gamemath.Rect
		x, y     float64
		wantY    float64
	}{
		// Right edge ends at 400.5; the platform starts on the 400 cell boundary.
		{"horizontal", gamemath.Rect{X: 400, Y: 436, W: 120, H: 10}, 360.5, 371, 376},
		// Feet end at 400.5 after the step; the platform top sits on the boundary.
		{"vertical", gamemath.Rect{X: 400, Y: 400, W: 120, H: 10}, 420, 334.5, 340},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := testArena()
			arena.Platforms = []gamemath.Rect{tt.platform}
			m, _ := newTestMatch(t, arena)
			m.Start()

			b := body(m, 0)
			b.X = tt.x
			b.Y = tt.y
			b.SpeedY = 5

			m.Step()

			assert.Equal(t, tt.wantY, b.Y)
			assert.Equal(t, 0.0, b.SpeedY)
			assert.False(t, b.Jumping)
		})
	}
}

func TestPlatformCandidatesCoverEveryOverlap(t *testing.T) {
	arena := testArena()
	m, _ := newTestMatch(t, arena)

	for x := 100.0; x <= 760; x += 0.5 {
		for y := 320.0; y <= 500; y += 0.5 {
			r := gamemath.Rect{X: x, Y: y, W: 40, H: 60}
			candidates := platformCandidates(m.space, r)
			for pi, p := range arena.Platforms {
				if gamemath.Overlaps(r, p) {
					require.True(t, candidates[pi], fmt.Sprintf("platform %d missing for body at (%v, %v)", pi, x, y))
				}
			}
		}
	}
}
