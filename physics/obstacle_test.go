package physics

import "testing"

func TestOscillatorOvershootsAndFlips(t *testing.T) {
	p, err := NewOscillatingPlatform(Rect{100, 100, 60, 10}, MoveVertical, 5, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	bounds := testBounds()
	want := []float64{103, 103, 100, 97, 97}
	for i, y := range want {
		p.Advance(bounds)
		if !almostEqual(p.Rect.Y, y) {
			t.Fatalf("tick %d: y = %v, want %v", i+1, p.Rect.Y, y)
		}
	}
}

func TestOscillatorHorizontal(t *testing.T) {
	p, err := NewOscillatingPlatform(Rect{100, 100, 60, 10}, MoveHorizontal, 40, 2, -1)
	if err != nil {
		t.Fatal(err)
	}
	bounds := testBounds()
	p.Advance(bounds)
	if !almostEqual(p.Rect.X, 98) {
		t.Fatalf("x = %v, want 98", p.Rect.X)
	}
	if !almostEqual(p.Rect.Y, 100) {
		t.Fatalf("y = %v, horizontal mode must not move y", p.Rect.Y)
	}
}

func TestOscillatingPlatformValidation(t *testing.T) {
	r := Rect{100, 100, 60, 10}
	cases := []struct {
		name           string
		mode           MoveMode
		amp, speed, dir float64
	}{
		{"drift mode rejected", MoveRandom, 5, 3, 1},
		{"zero amplitude", MoveVertical, 0, 3, 1},
		{"negative speed", MoveVertical, 5, -3, 1},
		{"zero dir", MoveHorizontal, 5, 3, 0},
		{"fractional dir", MoveHorizontal, 5, 3, 0.5},
	}
	for _, tc := range cases {
		if _, err := NewOscillatingPlatform(r, tc.mode, tc.amp, tc.speed, tc.dir); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestDriftingPlatformReflectsAtBorderWithoutClamp(t *testing.T) {
	p := NewDriftingPlatform(Rect{32, 100, 60, 10}, Vec2{-3, 0})
	bounds := testBounds()
	p.Advance(bounds)
	if !almostEqual(p.Rect.X, 29) {
		t.Fatalf("x = %v, want 29 (no clamping)", p.Rect.X)
	}
	if !almostEqual(p.Drift.X, 3) {
		t.Fatalf("drift.X = %v, want reflected to 3", p.Drift.X)
	}
	p.Advance(bounds)
	if !almostEqual(p.Rect.X, 32) {
		t.Fatalf("x = %v, want 32", p.Rect.X)
	}
}

func TestDriftingPlatformZeroDriftIsStatic(t *testing.T) {
	p := NewDriftingPlatform(Rect{300, 300, 60, 10}, Vec2{})
	p.Advance(testBounds())
	if p.Rect != (Rect{300, 300, 60, 10}) {
		t.Fatalf("static platform moved to %+v", p.Rect)
	}
}

func TestRepulsorValidation(t *testing.T) {
	if _, err := NewRepulsor(Vec2{100, 100}, 0); err == nil {
		t.Fatal("zero radius should be rejected")
	}
	if _, err := NewDriftingRepulsor(Vec2{100, 100}, -5, Vec2{1, 1}); err == nil {
		t.Fatal("negative radius should be rejected")
	}
}

func TestDriftingRepulsorReflectsAtBorder(t *testing.T) {
	r, err := NewDriftingRepulsor(Vec2{47, 300}, 15, Vec2{-4, 1})
	if err != nil {
		t.Fatal(err)
	}
	r.Advance(testBounds())
	if !almostEqual(r.Pos.X, 43) {
		t.Fatalf("x = %v, want 43", r.Pos.X)
	}
	if !almostEqual(r.Drift.X, 4) {
		t.Fatalf("drift.X = %v, want reflected to 4", r.Drift.X)
	}
	if !almostEqual(r.Drift.Y, 1) {
		t.Fatalf("drift.Y = %v, should be untouched", r.Drift.Y)
	}
}

func TestPlatformSpeedTransferMatchingAxis(t *testing.T) {
	p, err := NewOscillatingPlatform(Rect{200, 100, 50, 50}, MoveHorizontal, 40, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBall(Vec2{195, 125}, 10)
	b.Vel = Vec2{5, 0}
	side := b.ResolvePlatform(p)
	if side != SideLeft {
		t.Fatalf("side = %v, want left", side)
	}
	// Reflection gives -4, then the platform adds 4*1*0.5.
	if !almostEqual(b.Vel.X, -2) {
		t.Fatalf("vx = %v, want -2", b.Vel.X)
	}
}

func TestPlatformNoTransferOnCrossAxis(t *testing.T) {
	p, err := NewOscillatingPlatform(Rect{200, 100, 50, 50}, MoveVertical, 40, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBall(Vec2{195, 125}, 10)
	b.Vel = Vec2{5, 0}
	b.ResolvePlatform(p)
	if !almostEqual(b.Vel.X, -4) {
		t.Fatalf("vx = %v, vertical platform must not boost a side hit", b.Vel.X)
	}
}

func TestDriftingPlatformNoSpeedTransfer(t *testing.T) {
	p := NewDriftingPlatform(Rect{200, 100, 50, 50}, Vec2{2, 2})
	b := NewBall(Vec2{195, 125}, 10)
	b.Vel = Vec2{5, 0}
	b.ResolvePlatform(p)
	if !almostEqual(b.Vel.X, -4) {
		t.Fatalf("vx = %v, drifting platforms transfer no speed", b.Vel.X)
	}
}
