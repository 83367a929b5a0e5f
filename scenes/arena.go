package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/arena-duel/assets"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/core"
	"github.com/automoto/arena-duel/systems"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the one playable scene: both fighters in the fixed arena,
// started as soon as the background image has loaded.
type ArenaScene struct {
	ecs    *ecs.ECS
	match  *core.Match
	loader *assets.Loader
	logger *log.Logger
	once   sync.Once
}

func NewArenaScene(logger *log.Logger) *ArenaScene {
	return &ArenaScene{logger: logger}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	world := donburi.NewWorld()

	match, err := core.NewMatch(world, cfg.Arena, cfg.Tuning, core.WithLogger(as.logger))
	if err != nil {
		panic("failed to create match: " + err.Error())
	}
	as.match = match
	as.loader = assets.NewLoader(as.logger)

	factory.CreateInputState(world)
	factory.CreateAssets(world)
	for i := 0; i < 2; i++ {
		factory.CreateHealthBar(world, match.Fighter(i))
	}

	ecs := ecs.NewECS(match.World())

	// Input is applied before the step so each tick sees one snapshot.
	ecs.AddSystem(systems.UpdateAssets(as.loader, match))
	ecs.AddSystem(systems.UpdateKeyEvents)
	ecs.AddSystem(systems.UpdatePlayerInput)
	ecs.AddSystem(systems.UpdateMatch(match))
	ecs.AddSystem(systems.UpdateHealthBars)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawTimer)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawLoading)

	as.ecs = ecs

	as.loader.Load(assets.ArenaImages...)
	as.logger.Info("arena ready", "width", cfg.C.Width, "height", cfg.C.Height, "platforms", len(match.Arena().Platforms))
}
