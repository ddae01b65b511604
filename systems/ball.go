package systems

import (
	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/physics"
	"github.com/automoto/minigolf/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall runs one physics tick: launch requests, integration,
// collision resolution, hole capture, and course progression.
func UpdateBall(e *ecs.ECS) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	courseEntry, ok := components.Course.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	courseData := components.Course.Get(courseEntry)
	course := courseData.CurrentCourse
	aim := GetOrCreateAim(e)

	if aim.LaunchRequested {
		aim.LaunchRequested = false
		switch {
		case ball.Teleporting:
			// A sinking ball cannot be interrupted
		case ball.Moving:
			ball.Stop()
		default:
			ball.Launch(aim.AngleDeg, aim.Power, cfg.Aim.MaxPower)
			ball.Strokes++
			if ball.Moving {
				PlaySFX(e, cfg.SoundLaunch)
			}
		}
	}

	prevVel := ball.Vel
	sunk := course.StepBall(&ball.Ball, ArenaBounds(), cfg.Course.HoleRadius, cfg.Course.HoleCaptureFactor)

	// Friction never flips a velocity sign, so a flip means a bounce
	if ball.Moving && !ball.Teleporting && bounced(prevVel, ball.Vel) {
		PlaySFX(e, cfg.SoundBounce)
	}

	if sunk {
		PlaySFX(e, cfg.SoundHole)
		if courseData.CourseIndex+1 >= len(courseData.Courses) {
			EndRound(e, cfg.RoundWon)
			return
		}
		NextCourse(e, courseData, ball)
	}
}

func bounced(prev, curr physics.Vec2) bool {
	return (prev.X > 0 && curr.X < 0) || (prev.X < 0 && curr.X > 0) ||
		(prev.Y > 0 && curr.Y < 0) || (prev.Y < 0 && curr.Y > 0)
}

// NextCourse advances to the following course and respawns the ball
func NextCourse(e *ecs.ECS, courseData *components.CourseData, ball *components.BallData) {
	courseData.CourseIndex++
	courseData.CurrentCourse = &courseData.Courses[courseData.CourseIndex]
	ResetBall(ball)
	RebuildSpace(e, courseData.CurrentCourse)
}

// ResetBall places the ball at the spawn point, at rest
func ResetBall(ball *components.BallData) {
	ball.Pos = factory.SpawnPoint()
	ball.Stop()
	ball.Teleporting = false
	ball.Strokes = 0
}
