package archetypes

import (
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		simcomponents.Fighter,
		simcomponents.Health,
		simcomponents.PlayerInput,
		simcomponents.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		simcomponents.Platform,
		simcomponents.Object,
	)
	Space = newArchetype(
		simcomponents.Space,
	)
	Match = newArchetype(
		simcomponents.Match,
		simcomponents.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
