package simconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadTuningDefaults(t *testing.T) {
	tun := MustLoadTuning()

	assert.Equal(t, 1.0, tun.Physics.Gravity)
	assert.Equal(t, 25.0, tun.Physics.JumpSpeed)
	assert.Equal(t, 40.0, tun.Fighter.Width)
	assert.Equal(t, 60.0, tun.Fighter.Height)
	assert.Equal(t, 5.0, tun.Fighter.MoveSpeed)
	assert.Equal(t, 100, tun.Fighter.MaxHealth)
	assert.Equal(t, 1, tun.Match.ContactDamage)
	assert.Equal(t, 3*time.Minute, tun.Duration())
}

func TestLoadTuningErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "physics: [gravity"},
		{"zero size", "fighter: {width: 0, height: 60, max_health: 100}\nmatch: {duration_ms: 1000}"},
		{"zero health", "fighter: {width: 40, height: 60, max_health: 0}\nmatch: {duration_ms: 1000}"},
		{"zero duration", "fighter: {width: 40, height: 60, max_health: 100}\nmatch: {duration_ms: 0}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTuning([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestMatchStateString(t *testing.T) {
	assert.Equal(t, "loading", MatchStateLoading.String())
	assert.Equal(t, "running", MatchStateRunning.String())
	assert.Equal(t, "unknown", MatchStateID(42).String())
}
