package simconfig

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// PhysicsTuning holds the per-tick integration constants.
type PhysicsTuning struct {
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// FighterTuning holds the fixed fighter dimensions and stats.
type FighterTuning struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
	MaxHealth int     `yaml:"max_health"`
}

// MatchTuning holds the countdown length and contact damage.
type MatchTuning struct {
	DurationMS    int64 `yaml:"duration_ms"`
	ContactDamage int   `yaml:"contact_damage"`
}

// Tuning is the full set of simulation constants.
type Tuning struct {
	Physics PhysicsTuning `yaml:"physics"`
	Fighter FighterTuning `yaml:"fighter"`
	Match   MatchTuning   `yaml:"match"`
}

// Duration returns the match countdown length.
func (t Tuning) Duration() time.Duration {
	return time.Duration(t.Match.DurationMS) * time.Millisecond
}

// LoadTuning decodes tuning values from YAML.
func LoadTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return t, err
	}
	return t, nil
}

// MustLoadTuning returns the embedded default tuning and panics if it is broken.
func MustLoadTuning() Tuning {
	t, err := LoadTuning(defaultTuningYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded tuning.yaml: %v", err))
	}
	return t
}

func (t Tuning) validate() error {
	switch {
	case t.Fighter.Width <= 0 || t.Fighter.Height <= 0:
		return fmt.Errorf("fighter size must be positive, got %vx%v", t.Fighter.Width, t.Fighter.Height)
	case t.Fighter.MaxHealth <= 0:
		return fmt.Errorf("fighter max_health must be positive, got %d", t.Fighter.MaxHealth)
	case t.Match.DurationMS <= 0:
		return fmt.Errorf("match duration_ms must be positive, got %d", t.Match.DurationMS)
	}
	return nil
}
