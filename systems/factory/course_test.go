package factory

import (
	"testing"

	"github.com/automoto/minigolf/components"
	"github.com/automoto/minigolf/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateCoursesAtIndexIsZeroBased(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	data := components.Course.Get(CreateCoursesAtIndex(e, 2))
	if data.CourseIndex != 2 {
		t.Fatalf("CourseIndex = %d, want 2", data.CourseIndex)
	}
	if data.CurrentCourse.Number != 3 {
		t.Fatalf("course number = %d, want 3 for index 2", data.CurrentCourse.Number)
	}
}

func TestCreateCoursesAtIndexClampsOutOfRange(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	data := components.Course.Get(CreateCoursesAtIndex(e, 99))
	if data.CourseIndex != 0 || data.CurrentCourse.Number != 1 {
		t.Fatalf("index out of range should fall back to the first course, got index %d number %d",
			data.CourseIndex, data.CurrentCourse.Number)
	}
}

func TestPlatformEnvelopeCoversOscillation(t *testing.T) {
	p, err := physics.NewOscillatingPlatform(
		physics.Rect{X: 200, Y: 300, W: 80, H: 15},
		physics.MoveVertical, 70, 1.5, 1,
	)
	if err != nil {
		t.Fatal(err)
	}

	env := platformEnvelope(p)
	if env.Y != 300-71.5 || env.H != 15+2*71.5 {
		t.Errorf("envelope = %+v, want amplitude plus one overshoot step on each side", env)
	}
	if env.X != 200 || env.W != 80 {
		t.Errorf("vertical oscillation should not widen the envelope, got %+v", env)
	}
}

func TestPlatformEnvelopeForDrifterIsItsRect(t *testing.T) {
	p := physics.NewDriftingPlatform(physics.Rect{X: 100, Y: 100, W: 60, H: 10}, physics.Vec2{X: 1, Y: -1})

	if env := platformEnvelope(p); env != p.Rect {
		t.Errorf("envelope = %+v, want the platform rect unchanged", env)
	}
}

func TestMustClearBordersAcceptsInteriorObstacles(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("interior wall rejected: %v", r)
		}
	}()
	mustClearBorders("wall", physics.Rect{X: 150, Y: 100, W: 500, H: 15})
}

func TestMustClearBordersRejectsBorderOverlap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a wall reaching into the border")
		}
	}()
	mustClearBorders("wall", physics.Rect{X: 10, Y: 100, W: 100, H: 15})
}
