package archetypes

import (
	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Repulsor = newArchetype(
		tags.Repulsor,
		components.Object,
	)
	Course = newArchetype(
		components.Course,
	)
	Aim = newArchetype(
		components.Aim,
	)
	Round = newArchetype(
		components.Round,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
