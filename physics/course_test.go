package physics

import "testing"

func testCourse(t *testing.T) *Course {
	t.Helper()
	c := NewCourse(1, Vec2{700, 500}, ReboundReflect)
	c.AddWall(Rect{200, 100, 20, 200})
	p, err := NewOscillatingPlatform(Rect{400, 300, 60, 10}, MoveVertical, 50, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.AddPlatform(p)
	r, err := NewRepulsor(Vec2{550, 200}, 15)
	if err != nil {
		t.Fatal(err)
	}
	c.AddRepulsor(r)
	return c
}

func TestObstacleRectsWallsFirst(t *testing.T) {
	c := testCourse(t)
	rects := c.ObstacleRects()
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	if rects[0] != (Rect{200, 100, 20, 200}) {
		t.Fatalf("rects[0] = %+v, want the wall", rects[0])
	}
	if rects[1].W != 60 {
		t.Fatalf("rects[1] = %+v, want the platform", rects[1])
	}
}

func TestCourseAdvanceIgnoresBall(t *testing.T) {
	c := testCourse(t)
	b := NewBall(Vec2{400, 310}, 10)
	before := *b
	c.Advance(testBounds())
	if *b != before {
		t.Fatal("obstacle motion must not touch the ball")
	}
	if !almostEqual(c.Platforms[0].Rect.Y, 302) {
		t.Fatalf("platform y = %v, want 302", c.Platforms[0].Rect.Y)
	}
}

func TestStepBallIdleBallDoesNotIntegrate(t *testing.T) {
	c := testCourse(t)
	b := NewBall(Vec2{100, 500}, 10)
	if c.StepBall(b, testBounds(), 12, 0.75) {
		t.Fatal("idle ball cannot sink")
	}
	if !vecAlmostEqual(b.Pos, Vec2{100, 500}) {
		t.Fatalf("idle ball moved to %+v", b.Pos)
	}
}

func TestStepBallSweepingPlatformIgnoresIdleBall(t *testing.T) {
	c := NewCourse(1, Vec2{700, 500}, ReboundReflect)
	p, err := NewOscillatingPlatform(Rect{320, 300, 60, 10}, MoveHorizontal, 60, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.AddPlatform(p)
	b := NewBall(Vec2{380, 305}, 10)
	bounds := testBounds()
	for i := 0; i < 30; i++ {
		if c.StepBall(b, bounds, 12, 0.75) {
			t.Fatal("idle ball cannot sink")
		}
	}
	if b.Moving {
		t.Fatal("idle ball must stay idle")
	}
	if b.Vel != (Vec2{}) {
		t.Fatalf("idle ball picked up velocity %+v", b.Vel)
	}
	if !vecAlmostEqual(b.Pos, Vec2{380, 305}) {
		t.Fatalf("idle ball displaced to %+v", b.Pos)
	}
}

func TestStepBallIdleBallOverHoleDoesNotSink(t *testing.T) {
	c := testCourse(t)
	b := NewBall(c.Hole, 10)
	if c.StepBall(b, testBounds(), 12, 0.75) {
		t.Fatal("idle ball cannot sink")
	}
	if b.Teleporting {
		t.Fatal("resting ball over the hole must stay put")
	}
}

func TestStepBallCaptureStartsTeleport(t *testing.T) {
	c := testCourse(t)
	b := NewBall(Vec2{695, 500}, 10)
	b.Vel = Vec2{1, 0}
	b.Moving = true
	c.StepBall(b, testBounds(), 12, 0.75)
	if !b.Teleporting {
		t.Fatalf("ball at %+v should be sinking", b.Pos)
	}
}

func TestStepBallSinksEventually(t *testing.T) {
	c := testCourse(t)
	b := NewBall(Vec2{695, 500}, 10)
	b.Vel = Vec2{1, 0}
	b.Moving = true
	bounds := testBounds()
	for i := 0; i < 300; i++ {
		if c.StepBall(b, bounds, 12, 0.75) {
			if b.Pos != c.Hole {
				t.Fatalf("sunk at %+v, want hole center %+v", b.Pos, c.Hole)
			}
			if b.Moving || b.Teleporting {
				t.Fatal("sunk ball should be at rest")
			}
			return
		}
	}
	t.Fatal("ball never sank")
}

func TestStepBallStaysInsideArena(t *testing.T) {
	c := testCourse(t)
	b := NewBall(Vec2{100, 100}, 10)
	b.Launch(37, 300, 300)
	bounds := testBounds()
	inner := bounds.Inner()
	for i := 0; i < 400; i++ {
		c.StepBall(b, bounds, 12, 0.75)
		if b.Pos.X < inner.X+b.Radius-tolerance || b.Pos.X > inner.Right()-b.Radius+tolerance ||
			b.Pos.Y < inner.Y+b.Radius-tolerance || b.Pos.Y > inner.Bottom()-b.Radius+tolerance {
			t.Fatalf("tick %d: ball escaped arena at %+v", i, b.Pos)
		}
		if !b.Moving && !b.Teleporting {
			return
		}
	}
}
