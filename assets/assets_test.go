package assets

import (
	"testing"

	"github.com/automoto/minigolf/physics"
	"github.com/lafriks/go-tiled"
)

func TestMustLoadCoursesOrder(t *testing.T) {
	courses := NewCourseLoaderWithSeed(1).MustLoadCourses()

	if len(courses) != 5 {
		t.Fatalf("loaded %d courses, want 5", len(courses))
	}
	for i, c := range courses {
		if c.Number != i+1 {
			t.Errorf("course %d has number %d, want %d", i, c.Number, i+1)
		}
	}
}

func TestLoadCourseOne(t *testing.T) {
	c, err := NewCourseLoaderWithSeed(1).LoadCourse("courses/course01.tmx")
	if err != nil {
		t.Fatal(err)
	}

	if c.Hole != (physics.Vec2{X: 600, Y: 400}) {
		t.Errorf("hole = %+v, want {600 400}", c.Hole)
	}
	if c.Rebound != physics.ReboundReflect {
		t.Errorf("rebound = %v, want reflect", c.Rebound)
	}
	if len(c.Walls) != 4 {
		t.Fatalf("got %d walls, want 4", len(c.Walls))
	}
	if c.Walls[0] != (physics.Rect{X: 150, Y: 100, W: 500, H: 15}) {
		t.Errorf("wall 0 = %+v", c.Walls[0])
	}
	if len(c.Platforms) != 0 || len(c.Repulsors) != 0 {
		t.Errorf("course 1 should have no platforms or repulsors")
	}
}

func TestLoadCourseTwoPlatforms(t *testing.T) {
	c, err := NewCourseLoaderWithSeed(1).LoadCourse("courses/course02.tmx")
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Platforms) != 5 {
		t.Fatalf("got %d platforms, want 5", len(c.Platforms))
	}

	first := c.Platforms[0]
	if first.Mode != physics.MoveVertical {
		t.Errorf("platform 0 mode = %v, want vertical", first.Mode)
	}
	if first.Amplitude != 70 || first.Speed != 1.0 || first.Dir != 1 {
		t.Errorf("platform 0 = amp %v speed %v dir %v", first.Amplitude, first.Speed, first.Dir)
	}

	horizontal := 0
	for _, p := range c.Platforms {
		if p.Mode == physics.MoveHorizontal {
			horizontal++
		}
	}
	if horizontal != 2 {
		t.Errorf("got %d horizontal platforms, want 2", horizontal)
	}
}

func TestLoadCourseFourRepulsors(t *testing.T) {
	c, err := NewCourseLoaderWithSeed(1).LoadCourse("courses/course04.tmx")
	if err != nil {
		t.Fatal(err)
	}

	if c.Rebound != physics.ReboundBoost {
		t.Errorf("rebound = %v, want boost", c.Rebound)
	}
	if len(c.Repulsors) != 4 {
		t.Fatalf("got %d repulsors, want 4", len(c.Repulsors))
	}
	r := c.Repulsors[0]
	if r.Pos != (physics.Vec2{X: 300, Y: 200}) || r.Radius != 20 {
		t.Errorf("repulsor 0 = pos %+v radius %v", r.Pos, r.Radius)
	}
}

func TestLoadCourseFiveRandomObstacles(t *testing.T) {
	c, err := NewCourseLoaderWithSeed(42).LoadCourse("courses/course05.tmx")
	if err != nil {
		t.Fatal(err)
	}

	if c.Rebound != physics.ReboundReverse {
		t.Errorf("rebound = %v, want reverse", c.Rebound)
	}
	if len(c.Platforms) != 12 {
		t.Errorf("got %d random platforms, want 12", len(c.Platforms))
	}
	if len(c.Repulsors) != 10 {
		t.Errorf("got %d random repulsors, want 10", len(c.Repulsors))
	}

	for i, p := range c.Platforms {
		if p.Mode != physics.MoveRandom {
			t.Errorf("platform %d mode = %v, want random", i, p.Mode)
		}
		if p.Rect.W != randomPlatformW || p.Rect.H != randomPlatformH {
			t.Errorf("platform %d size = %vx%v", i, p.Rect.W, p.Rect.H)
		}
		if p.Rect.X < randomPlatformMinX || p.Rect.X > randomPlatformMaxX ||
			p.Rect.Y < randomPlatformMinY || p.Rect.Y > randomPlatformMaxY {
			t.Errorf("platform %d position %v,%v out of range", i, p.Rect.X, p.Rect.Y)
		}
		if p.Drift.X < -randomDriftMax || p.Drift.X > randomDriftMax ||
			p.Drift.Y < -randomDriftMax || p.Drift.Y > randomDriftMax {
			t.Errorf("platform %d drift %+v out of range", i, p.Drift)
		}
	}

	for i, r := range c.Repulsors {
		if r.Radius != randomRepulsorRadius {
			t.Errorf("repulsor %d radius = %v", i, r.Radius)
		}
		if r.Pos.X < randomRepulsorMinX || r.Pos.X > randomRepulsorMaxX ||
			r.Pos.Y < randomRepulsorMinY || r.Pos.Y > randomRepulsorMaxY {
			t.Errorf("repulsor %d position %+v out of range", i, r.Pos)
		}
	}
}

func TestLoadCourseIsDeterministicForSeed(t *testing.T) {
	a, err := NewCourseLoaderWithSeed(7).LoadCourse("courses/course05.tmx")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewCourseLoaderWithSeed(7).LoadCourse("courses/course05.tmx")
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Platforms {
		if a.Platforms[i].Rect != b.Platforms[i].Rect {
			t.Fatalf("platform %d differs between identically seeded loaders", i)
		}
	}
}

func TestParseReboundPolicy(t *testing.T) {
	cases := []struct {
		in   string
		want physics.ReboundPolicy
	}{
		{"", physics.ReboundReflect},
		{"reflect", physics.ReboundReflect},
		{"boost", physics.ReboundBoost},
		{"reverse", physics.ReboundReverse},
	}
	for _, c := range cases {
		got, err := parseReboundPolicy(c.in)
		if err != nil {
			t.Errorf("parseReboundPolicy(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("parseReboundPolicy(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := parseReboundPolicy("bounce"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestParsePlatformRejectsBadObjects(t *testing.T) {
	flat := &tiled.Object{
		Width:  60,
		Height: 0,
		Properties: tiled.Properties{
			&tiled.Property{Name: "mode", Value: "horizontal"},
		},
	}
	if _, err := parsePlatform(flat); err == nil {
		t.Error("expected error for zero-height platform")
	}

	badMode := &tiled.Object{
		Width:  60,
		Height: 10,
		Properties: tiled.Properties{
			&tiled.Property{Name: "mode", Value: "diagonal"},
		},
	}
	if _, err := parsePlatform(badMode); err == nil {
		t.Error("expected error for unknown mode")
	}
}
