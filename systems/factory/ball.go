package factory

import (
	"github.com/automoto/minigolf/archetypes"
	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/physics"
	"github.com/automoto/minigolf/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnPoint is just inside the left border, vertically centered
func SpawnPoint() physics.Vec2 {
	return physics.Vec2{
		X: cfg.Course.BorderThickness + cfg.Ball.Radius + cfg.Ball.SpawnOffsetX,
		Y: float64(cfg.C.Height) / 2,
	}
}

func CreateBall(ecs *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	spawn := SpawnPoint()
	radius := cfg.Ball.Radius

	components.Ball.SetValue(ball, components.BallData{
		Ball: *physics.NewBall(spawn, radius),
	})

	// Bounding square of the ball in the collision space
	obj := resolv.NewObject(spawn.X-radius, spawn.Y-radius, radius*2, radius*2, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, radius*2, radius*2))
	obj.Data = ball

	components.Object.SetValue(ball, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ball
}
