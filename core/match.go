// Package core runs the headless match simulation: physics integration,
// platform landing and contact damage over a donburi world. It has no
// dependency on ebiten so it can be stepped from tests.
package core

import (
	"fmt"
	"time"

	"github.com/automoto/arena-duel/shared/leveldata"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Match owns the simulation state for one two-player match: the world
// holding both fighters and the platforms, the arena geometry, the clock
// and the Loading/Running state. Nothing here is package-global.
type Match struct {
	world  donburi.World
	arena  *leveldata.Arena
	tuning simconfig.Tuning
	clock  Clock
	logger *log.Logger

	space     *resolv.Space
	fighters  []donburi.Entity // in player index order
	platforms []donburi.Entity // in arena order
	info      donburi.Entity

	state     simconfig.MatchStateID
	startTime time.Time
	elapsed   time.Duration
	tick      int
	inContact bool
}

// Option customises a Match.
type Option func(*Match)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(m *Match) { m.clock = c }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) { m.logger = l }
}

// NewMatch builds the arena and both fighters inside w. The arena must
// define spawn points for player indexes 0 and 1.
func NewMatch(w donburi.World, arena *leveldata.Arena, tuning simconfig.Tuning, opts ...Option) (*Match, error) {
	m := &Match{
		world:  w,
		arena:  arena,
		tuning: tuning,
		clock:  SystemClock{},
		logger: log.Default().WithPrefix("match"),
		state:  simconfig.MatchStateLoading,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.space = createSpace(w, arena)

	for i, rect := range arena.Platforms {
		m.platforms = append(m.platforms, createPlatform(w, m.space, i, rect).Entity())
	}

	for i := 0; i < 2; i++ {
		spawn, ok := arena.Spawn(i)
		if !ok {
			return nil, fmt.Errorf("arena has no spawn point for player %d", i+1)
		}
		m.fighters = append(m.fighters, createFighter(w, m.space, spawn, tuning).Entity())
	}

	m.info = createMatchInfo(w, arena, tuning).Entity()

	return m, nil
}

// World returns the world the match lives in.
func (m *Match) World() donburi.World {
	return m.world
}

// Arena returns the immutable arena geometry.
func (m *Match) Arena() *leveldata.Arena {
	return m.arena
}

// State returns the current match state.
func (m *Match) State() simconfig.MatchStateID {
	return m.state
}

// Fighter returns the entry for a player index (0 or 1).
func (m *Match) Fighter(index int) *donburi.Entry {
	return m.world.Entry(m.fighters[index])
}

// Elapsed returns the time since Start as of the last step.
func (m *Match) Elapsed() time.Duration {
	return m.elapsed
}

// Remaining returns the countdown value. It goes negative once the match
// runs past its duration; nothing ends the match.
func (m *Match) Remaining() time.Duration {
	return m.tuning.Duration() - m.elapsed
}

// Start moves the match from Loading to Running and captures the start
// time. Calls after the first are ignored.
func (m *Match) Start() {
	if m.state != simconfig.MatchStateLoading {
		return
	}
	m.state = simconfig.MatchStateRunning
	m.startTime = m.clock.Now()
	m.logger.Info("match running", "duration", m.tuning.Duration())
	m.publish()
}

// Step advances the simulation by one tick. It does nothing while the
// match is still loading.
func (m *Match) Step() {
	if m.state != simconfig.MatchStateRunning {
		return
	}

	m.elapsed = m.clock.Now().Sub(m.startTime)
	m.tick++

	m.stepFighters()
	m.resolvePlatforms()
	m.resolveContact()
	m.publish()
}

func (m *Match) publish() {
	info := simcomponents.Match.Get(m.world.Entry(m.info))
	info.State = m.state
	info.Elapsed = m.elapsed
	info.Remaining = m.Remaining()
	info.Tick = m.tick
}
