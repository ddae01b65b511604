package systems

import (
	"github.com/automoto/minigolf/assets"
	"github.com/automoto/minigolf/components"
	"github.com/automoto/minigolf/physics"
	"github.com/automoto/minigolf/systems/factory"
	"github.com/automoto/minigolf/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects follows the authoritative physics state with the resolv
// mirror. The physics package owns all collision response; the space
// exists for validation and the debug overlay.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)

		switch {
		case e.HasComponent(tags.Ball):
			ball := components.Ball.Get(e)
			obj.X = ball.Pos.X - ball.Radius
			obj.Y = ball.Pos.Y - ball.Radius
		case e.HasComponent(tags.Platform):
			p := obj.Data.(*physics.Platform)
			obj.X = p.Rect.X
			obj.Y = p.Rect.Y
		case e.HasComponent(tags.Repulsor):
			r := obj.Data.(*physics.Repulsor)
			obj.X = r.Pos.X - r.Radius
			obj.Y = r.Pos.Y - r.Radius
		}

		obj.Update()
	}
}

// RebuildSpace tears down the previous course's collision entities and
// mirrors the given course into the space. The ball entity survives.
func RebuildSpace(e *ecs.ECS, course *assets.Course) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	var stale []*donburi.Entry
	for entry := range components.Object.Iter(e.World) {
		if entry.HasComponent(tags.Wall) || entry.HasComponent(tags.Platform) || entry.HasComponent(tags.Repulsor) {
			stale = append(stale, entry)
		}
	}
	for _, entry := range stale {
		space.Remove(components.Object.Get(entry).Object)
		e.World.Remove(entry.Entity())
	}

	factory.CreateCourseObjects(e, course)
}
