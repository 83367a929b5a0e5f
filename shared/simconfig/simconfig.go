// Package simconfig defines the tuning values and enums shared by the
// simulation core and the client. It must have zero dependencies on ebiten
// or any graphics library so the core stays testable headless.
package simconfig

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateLoading MatchStateID = iota // Waiting for the background image
	MatchStateRunning                     // Steady per-frame ticking
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStateLoading:
		return "loading"
	case MatchStateRunning:
		return "running"
	}
	return "unknown"
}

// ActionID represents a logical per-player control.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)
