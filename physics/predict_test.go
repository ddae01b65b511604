package physics

import (
	"math"
	"testing"
)

func TestPredictZeroPowerReturnsStartOnly(t *testing.T) {
	c := testCourse(t)
	start := Vec2{100, 100}
	path := Predict(start, 10, 45, 0, 300, c, testBounds())
	if len(path) != 1 {
		t.Fatalf("len(path) = %d, want 1", len(path))
	}
	if path[0] != start {
		t.Fatalf("path[0] = %+v, want start", path[0])
	}
}

func TestPredictFirstStepMatchesLiveIntegration(t *testing.T) {
	c := NewCourse(1, Vec2{700, 500}, ReboundReflect)
	path := Predict(Vec2{100, 100}, 10, 0, 150, 300, c, testBounds())
	if len(path) < 2 {
		t.Fatalf("len(path) = %d, want at least 2", len(path))
	}
	if !vecAlmostEqual(path[1], Vec2{107.35, 100}) {
		t.Fatalf("path[1] = %+v, want {107.35 100}", path[1])
	}
}

func TestPredictCappedAtStepLimit(t *testing.T) {
	c := NewCourse(1, Vec2{700, 500}, ReboundReflect)
	path := Predict(Vec2{400, 300}, 10, 30, 300, 300, c, testBounds())
	if len(path) > PredictSteps+1 {
		t.Fatalf("len(path) = %d, exceeds cap", len(path))
	}
}

func TestPredictIsDeterministicAndPure(t *testing.T) {
	c := testCourse(t)
	platBefore := *c.Platforms[0]
	repBefore := *c.Repulsors[0]
	a := Predict(Vec2{100, 100}, 10, 20, 200, 300, c, testBounds())
	b := Predict(Vec2{100, 100}, 10, 20, 200, 300, c, testBounds())
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	if *c.Platforms[0] != platBefore || *c.Repulsors[0] != repBefore {
		t.Fatal("prediction mutated the course")
	}
}

func TestPredictIgnoresRepulsors(t *testing.T) {
	c := NewCourse(1, Vec2{700, 500}, ReboundReflect)
	r, err := NewRepulsor(Vec2{200, 100}, 15)
	if err != nil {
		t.Fatal(err)
	}
	c.AddRepulsor(r)
	path := Predict(Vec2{100, 100}, 10, 0, 150, 300, c, testBounds())
	crossed := false
	for _, p := range path {
		if p.X > 230 {
			crossed = true
		}
	}
	if !crossed {
		t.Fatal("path should pass straight through the repulsor")
	}
}

func TestPredictStaysInsideArena(t *testing.T) {
	c := testCourse(t)
	bounds := testBounds()
	inner := bounds.Inner()
	path := Predict(Vec2{100, 100}, 10, 63, 300, 300, c, bounds)
	for i, p := range path[1:] {
		if p.X < inner.X+10-tolerance || p.X > inner.Right()-10+tolerance ||
			p.Y < inner.Y+10-tolerance || p.Y > inner.Bottom()-10+tolerance {
			t.Fatalf("point %d escaped arena: %+v", i+1, p)
		}
	}
}

func TestPredictEndsBelowStopThreshold(t *testing.T) {
	c := NewCourse(1, Vec2{700, 500}, ReboundReflect)
	path := Predict(Vec2{400, 300}, 10, 10, 60, 300, c, testBounds())
	if len(path) >= PredictSteps+1 {
		t.Fatalf("slow launch should come to rest before the cap, got %d points", len(path))
	}
	last := path[len(path)-1]
	prev := path[len(path)-2]
	if last.DistanceTo(prev) >= StopThreshold*math.Sqrt2 {
		t.Fatalf("final step of %v px is too large for a resting ball", last.DistanceTo(prev))
	}
}

func TestResamplePathEvenSpacing(t *testing.T) {
	path := []Vec2{{0, 0}, {30, 0}, {30, 45}}
	out := ResamplePath(path, 15)
	if len(out) != 15 {
		t.Fatalf("len = %d, want 15", len(out))
	}
	step := 75.0 / 15
	walked := step
	for i, p := range out {
		var want Vec2
		if walked <= 30 {
			want = Vec2{walked, 0}
		} else {
			want = Vec2{30, walked - 30}
		}
		if !vecAlmostEqual(p, want) {
			t.Fatalf("point %d = %+v, want %+v", i, p, want)
		}
		walked += step
	}
}

func TestResamplePathShortInputsPassThrough(t *testing.T) {
	single := []Vec2{{5, 5}}
	if out := ResamplePath(single, 15); len(out) != 1 {
		t.Fatalf("single-point path should pass through, got %d points", len(out))
	}
	if out := ResamplePath(nil, 15); out != nil {
		t.Fatal("nil path should pass through")
	}
}
