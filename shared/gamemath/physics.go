package gamemath

// Body is the kinematic state of a fighter.
type Body struct {
	X, Y float64
	W, H float64

	// SpeedX is the per-tick horizontal displacement while a move key is held.
	SpeedX float64
	// SpeedY accumulates gravity and is zeroed on ground or platform contact.
	SpeedY float64

	FacingRight bool
	Jumping     bool
}

// Rect returns the body's collision rectangle.
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Controls is one tick's worth of movement input for a single body.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// Bounds are the limits a body is clamped into on every step.
type Bounds struct {
	Width        float64
	GroundHeight float64
}

// StepParams holds the per-step physics constants.
type StepParams struct {
	Gravity   float64
	JumpSpeed float64 // impulse magnitude; applied upward
}

// Advance moves b forward by one tick.
//
// Gravity is integrated before horizontal input, x is clamped into the
// bounds, then the ground snap runs before the jump check so a jump pressed
// on the landing tick is honored immediately. When Left and Right are both
// held they cancel out and FacingRight ends up true.
func Advance(b *Body, in Controls, p StepParams, bounds Bounds) {
	b.SpeedY += p.Gravity
	b.Y += b.SpeedY

	if in.Left {
		b.X -= b.SpeedX
		b.FacingRight = false
	}
	if in.Right {
		b.X += b.SpeedX
		b.FacingRight = true
	}

	b.X = ClampFloat(b.X, 0, bounds.Width-b.W)

	if floor := bounds.GroundHeight - b.H; b.Y > floor {
		b.Y = floor
		b.SpeedY = 0
		b.Jumping = false
	}

	if in.Jump && !b.Jumping {
		b.SpeedY = -p.JumpSpeed
		b.Jumping = true
	}
}

// LandOn snaps a falling body onto the top of platform when they overlap.
// Rising bodies pass through. Returns true when the body was snapped.
func LandOn(b *Body, platform Rect) bool {
	if b.SpeedY <= 0 || !Overlaps(b.Rect(), platform) {
		return false
	}
	b.Y = platform.Y - b.H
	b.SpeedY = 0
	b.Jumping = false
	return true
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
