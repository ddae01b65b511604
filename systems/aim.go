package systems

import (
	"math"

	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAim applies keyboard/gamepad aim adjustments and refreshes the
// trajectory preview while the ball is at rest. The ebitenui panel writes
// to the same AimData, so slider and key input stay in sync.
func UpdateAim(e *ecs.ECS) {
	aim := GetOrCreateAim(e)
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	input := getOrCreateInput(e)

	// The launch action doubles as a stop request while the ball rolls,
	// so it is read in every state.
	if GetAction(input, cfg.ActionLaunch).JustPressed {
		aim.LaunchRequested = true
	}

	if ball.Moving || ball.Teleporting {
		aim.Preview = aim.Preview[:0]
		return
	}

	if GetAction(input, cfg.ActionAimLeft).Pressed {
		aim.AngleDeg = math.Mod(aim.AngleDeg+cfg.Aim.AngleStep+360, 360)
	}
	if GetAction(input, cfg.ActionAimRight).Pressed {
		aim.AngleDeg = math.Mod(aim.AngleDeg-cfg.Aim.AngleStep+360, 360)
	}
	if GetAction(input, cfg.ActionPowerUp).Pressed {
		aim.Power = math.Min(aim.Power+cfg.Aim.PowerStep, cfg.Aim.MaxPower)
	}
	if GetAction(input, cfg.ActionPowerDown).Pressed {
		aim.Power = math.Max(aim.Power-cfg.Aim.PowerStep, 0)
	}

	courseEntry, ok := components.Course.First(e.World)
	if !ok {
		return
	}
	course := components.Course.Get(courseEntry).CurrentCourse

	path := physics.Predict(
		ball.Pos, ball.Radius,
		aim.AngleDeg, aim.Power, cfg.Aim.MaxPower,
		course.Course, ArenaBounds(),
	)
	aim.Preview = physics.ResamplePath(path, cfg.Aim.PreviewPoints)
}

// ArenaBounds returns the playfield bounds shared by every physics call
func ArenaBounds() physics.Bounds {
	return physics.Bounds{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
		Border: cfg.Course.BorderThickness,
	}
}

// GetOrCreateAim returns the singleton Aim component, creating if needed
func GetOrCreateAim(e *ecs.ECS) *components.AimData {
	if _, ok := components.Aim.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Aim))
		components.Aim.SetValue(ent, components.AimData{
			AngleDeg: cfg.Aim.DefaultAngle,
			Power:    cfg.Aim.DefaultPower,
		})
	}

	ent, _ := components.Aim.First(e.World)
	return components.Aim.Get(ent)
}
