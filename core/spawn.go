package core

import (
	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/automoto/arena-duel/shared/leveldata"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceCellSize is the resolv grid cell edge in pixels.
const spaceCellSize = 16

func createSpace(w donburi.World, arena *leveldata.Arena) *resolv.Space {
	entry := archetypes.Space.Spawn(w)
	space := resolv.NewSpace(int(arena.Width), int(arena.Height), spaceCellSize, spaceCellSize)
	simcomponents.Space.Set(entry, space)
	return space
}

func createPlatform(w donburi.World, space *resolv.Space, index int, rect gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = index
	space.Add(obj)

	simcomponents.Platform.SetValue(platform, simcomponents.PlatformData{Index: index})
	simcomponents.Object.SetValue(platform, simcomponents.ObjectData{Object: obj})
	return platform
}

func createFighter(w donburi.World, space *resolv.Space, spawn leveldata.SpawnPoint, t simconfig.Tuning) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(w)

	body := gamemath.Body{
		X:           spawn.X,
		Y:           spawn.Y,
		W:           t.Fighter.Width,
		H:           t.Fighter.Height,
		SpeedX:      t.Fighter.MoveSpeed,
		FacingRight: spawn.FacingRight,
	}

	obj := resolv.NewObject(body.X, body.Y, body.W, body.H, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, body.W, body.H))
	obj.Data = spawn.Index
	space.Add(obj)

	simcomponents.Fighter.SetValue(fighter, simcomponents.FighterData{
		Index: spawn.Index,
		Name:  spawn.Name,
		Body:  body,
	})
	simcomponents.Health.SetValue(fighter, simcomponents.HealthData{
		Current: t.Fighter.MaxHealth,
		Max:     t.Fighter.MaxHealth,
	})
	simcomponents.Object.SetValue(fighter, simcomponents.ObjectData{Object: obj})
	return fighter
}

func createMatchInfo(w donburi.World, arena *leveldata.Arena, t simconfig.Tuning) *donburi.Entry {
	entry := archetypes.Match.Spawn(w)
	simcomponents.Match.SetValue(entry, simcomponents.MatchData{
		State:     simconfig.MatchStateLoading,
		Remaining: t.Duration(),
	})
	simcomponents.Arena.SetValue(entry, simcomponents.ArenaData{Arena: arena})
	return entry
}
