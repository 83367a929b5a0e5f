package systems

import (
	"errors"
	"io"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/arena-duel/assets"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/core"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestScene(t *testing.T) (*core.Match, *ecs.ECS) {
	t.Helper()
	m, err := core.NewMatch(donburi.NewWorld(), cfg.Arena, cfg.Tuning, core.WithLogger(log.New(io.Discard)))
	require.NoError(t, err)
	factory.CreateInputState(m.World())
	factory.CreateAssets(m.World())
	return m, ecs.NewECS(m.World())
}

func inputState(t *testing.T, e *ecs.ECS) *components.InputStateData {
	t.Helper()
	entry, ok := components.InputState.First(e.World)
	require.True(t, ok)
	return components.InputState.Get(entry)
}

func assetsData(t *testing.T, e *ecs.ECS) *components.AssetsData {
	t.Helper()
	entry, ok := components.Assets.First(e.World)
	require.True(t, ok)
	return components.Assets.Get(entry)
}

func actions(m *core.Match, index int) [simconfig.ActionCount]bool {
	return simcomponents.PlayerInput.Get(m.Fighter(index)).Current
}

func TestUpdatePlayerInputRoutesKeysToFighters(t *testing.T) {
	tests := []struct {
		key     ebiten.Key
		fighter int
		action  simconfig.ActionID
	}{
		{ebiten.KeyArrowLeft, 0, simconfig.ActionMoveLeft},
		{ebiten.KeyArrowRight, 0, simconfig.ActionMoveRight},
		{ebiten.KeyArrowUp, 0, simconfig.ActionJump},
		{ebiten.KeyA, 1, simconfig.ActionMoveLeft},
		{ebiten.KeyD, 1, simconfig.ActionMoveRight},
		{ebiten.KeyW, 1, simconfig.ActionJump},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m, e := newTestScene(t)
			state := inputState(t, e)

			state.Press(tt.key)
			UpdatePlayerInput(e)

			var want [simconfig.ActionCount]bool
			want[tt.action] = true
			assert.Equal(t, want, actions(m, tt.fighter))
			assert.Equal(t, [simconfig.ActionCount]bool{}, actions(m, 1-tt.fighter))

			state.Release(tt.key)
			UpdatePlayerInput(e)
			assert.Equal(t, [simconfig.ActionCount]bool{}, actions(m, tt.fighter))
		})
	}
}

func TestUpdatePlayerInputIgnoresUnboundKeys(t *testing.T) {
	m, e := newTestScene(t)
	state := inputState(t, e)

	state.Press(ebiten.KeySpace)
	state.Press(ebiten.KeyS)
	state.Press(ebiten.KeyArrowDown)
	UpdatePlayerInput(e)

	assert.Equal(t, [simconfig.ActionCount]bool{}, actions(m, 0))
	assert.Equal(t, [simconfig.ActionCount]bool{}, actions(m, 1))
}

func TestControlSchemePerPlayer(t *testing.T) {
	assert.Equal(t, cfg.ControlSchemeArrows, cfg.PlayerControlScheme(0))
	assert.Equal(t, cfg.ControlSchemeWASD, cfg.PlayerControlScheme(1))
	for _, scheme := range []cfg.ControlSchemeID{cfg.ControlSchemeArrows, cfg.ControlSchemeWASD} {
		bindings := cfg.ControlSchemeBindings[scheme]
		for action := cfg.ActionID(0); action < cfg.ActionCount; action++ {
			assert.NotEmpty(t, bindings[action], "scheme %d action %d", scheme, action)
		}
	}
}

type fakeSource struct {
	results []assets.Result
}

func (f *fakeSource) Poll() (assets.Result, bool) {
	if len(f.results) == 0 {
		return assets.Result{}, false
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r, true
}

func TestUpdateAssetsStartsMatchOnBackground(t *testing.T) {
	m, e := newTestScene(t)
	src := &fakeSource{results: []assets.Result{
		{Path: assets.FighterImage},
		{Path: assets.GroundImage, Err: errors.New("ground missing")},
	}}
	update := UpdateAssets(src, m)

	update(e)
	assert.Equal(t, simconfig.MatchStateLoading, m.State())
	assert.Nil(t, assetsData(t, e).LoadErr)

	src.results = append(src.results, assets.Result{Path: assets.BackgroundImage})
	update(e)
	assert.Equal(t, simconfig.MatchStateRunning, m.State())
	assert.Nil(t, assetsData(t, e).LoadErr)
}

func TestUpdateAssetsBackgroundFailureKeepsLoading(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing", fstest.MapFS{}},
		{"garbage", fstest.MapFS{assets.BackgroundImage: {Data: []byte("not a png")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, e := newTestScene(t)
			loader := assets.NewLoaderFS(tt.fsys, log.New(io.Discard))
			loader.Load(assets.BackgroundImage)
			update := UpdateAssets(loader, m)

			a := assetsData(t, e)
			require.Eventually(t, func() bool {
				update(e)
				return a.LoadErr != nil
			}, time.Second, time.Millisecond)

			assert.Contains(t, a.LoadErr.Error(), assets.BackgroundImage)
			assert.Nil(t, a.Background)
			assert.Equal(t, simconfig.MatchStateLoading, m.State())

			// Stepping a loading match changes nothing.
			UpdateMatch(m)(e)
			assert.Equal(t, simconfig.MatchStateLoading, m.State())
		})
	}
}
