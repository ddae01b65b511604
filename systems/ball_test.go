package systems

import (
	"testing"

	"github.com/automoto/minigolf/assets"
	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/physics"
	"github.com/yohamta/donburi/ecs"
)

func newBallWorld(t *testing.T) (*ecs.ECS, *components.BallData, *components.AimData) {
	t.Helper()
	e := newTestECS()

	course := assets.Course{
		Course: physics.NewCourse(1, physics.Vec2{X: 700, Y: 500}, physics.ReboundReflect),
		Name:   "test",
	}
	courseEnt := e.World.Entry(e.World.Create(components.Course))
	components.Course.SetValue(courseEnt, components.CourseData{
		CurrentCourse: &course,
		Courses:       []assets.Course{course},
	})

	ballEnt := e.World.Entry(e.World.Create(components.Ball))
	components.Ball.SetValue(ballEnt, components.BallData{
		Ball: *physics.NewBall(physics.Vec2{X: 400, Y: 300}, 10),
	})

	return e, components.Ball.Get(ballEnt), GetOrCreateAim(e)
}

func TestUpdateBallLaunchRequestStopsRollingBall(t *testing.T) {
	e, ball, aim := newBallWorld(t)
	ball.Launch(0, cfg.Aim.MaxPower, cfg.Aim.MaxPower)
	ball.Strokes = 1

	aim.LaunchRequested = true
	UpdateBall(e)

	if ball.Moving {
		t.Fatal("launch action while rolling must stop the ball")
	}
	if ball.Vel != (physics.Vec2{}) {
		t.Fatalf("stopped ball kept velocity %+v", ball.Vel)
	}
	if ball.Strokes != 1 {
		t.Fatalf("stopping is not a stroke, got %d", ball.Strokes)
	}
	if aim.LaunchRequested {
		t.Fatal("request should be consumed")
	}
}

func TestUpdateBallLaunchRequestCannotInterruptSinking(t *testing.T) {
	e, ball, aim := newBallWorld(t)
	ball.Teleporting = true

	aim.LaunchRequested = true
	UpdateBall(e)

	if !ball.Teleporting {
		t.Fatal("sinking ball must keep sinking")
	}
	if ball.Strokes != 0 {
		t.Fatalf("no launch should have happened, got %d strokes", ball.Strokes)
	}
	if aim.LaunchRequested {
		t.Fatal("request should be consumed")
	}
}
