package physics

import (
	"fmt"
	"math"
)

// MoveMode selects how a platform travels.
type MoveMode int

const (
	MoveVertical MoveMode = iota
	MoveHorizontal
	MoveRandom
)

func (m MoveMode) String() string {
	switch m {
	case MoveVertical:
		return "vertical"
	case MoveHorizontal:
		return "horizontal"
	case MoveRandom:
		return "random"
	}
	return fmt.Sprintf("movemode(%d)", int(m))
}

// Platform is a moving rectangular obstacle. Oscillating platforms sweep
// back and forth around their base position; drifting platforms wander
// with a fixed per-tick drift that reflects off the arena border.
type Platform struct {
	Rect Rect
	Mode MoveMode

	// Oscillating modes only.
	Amplitude float64
	Speed     float64
	Dir       float64
	base      Vec2

	// Drift mode only.
	Drift Vec2
}

// NewOscillatingPlatform builds a vertically or horizontally oscillating
// platform. Amplitude and speed must be positive and dir must be ±1.
func NewOscillatingPlatform(r Rect, mode MoveMode, amplitude, speed, dir float64) (*Platform, error) {
	if mode != MoveVertical && mode != MoveHorizontal {
		return nil, fmt.Errorf("platform: %v is not an oscillating mode", mode)
	}
	if amplitude <= 0 {
		return nil, fmt.Errorf("platform: amplitude must be positive, got %v", amplitude)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("platform: speed must be positive, got %v", speed)
	}
	if dir != 1 && dir != -1 {
		return nil, fmt.Errorf("platform: dir must be 1 or -1, got %v", dir)
	}
	return &Platform{
		Rect:      r,
		Mode:      mode,
		Amplitude: amplitude,
		Speed:     speed,
		Dir:       dir,
		base:      Vec2{r.X, r.Y},
	}, nil
}

// NewDriftingPlatform builds a drifting platform. A zero drift is
// allowed and yields a static platform.
func NewDriftingPlatform(r Rect, drift Vec2) *Platform {
	return &Platform{Rect: r, Mode: MoveRandom, Drift: drift}
}

// Advance moves the platform one tick. An oscillating platform steps,
// checks its envelope, and on overshoot flips direction and steps again,
// so each turnaround overshoots by one step. A drifting platform
// reflects the offending drift component when an edge crosses the arena
// border, without clamping.
func (p *Platform) Advance(bounds Bounds) {
	switch p.Mode {
	case MoveVertical:
		p.Rect.Y += p.Speed * p.Dir
		if math.Abs(p.Rect.Y-p.base.Y) >= p.Amplitude {
			p.Dir = -p.Dir
			p.Rect.Y += p.Speed * p.Dir
		}
	case MoveHorizontal:
		p.Rect.X += p.Speed * p.Dir
		if math.Abs(p.Rect.X-p.base.X) >= p.Amplitude {
			p.Dir = -p.Dir
			p.Rect.X += p.Speed * p.Dir
		}
	case MoveRandom:
		p.Rect.X += p.Drift.X
		p.Rect.Y += p.Drift.Y
		inner := bounds.Inner()
		if p.Rect.X < inner.X || p.Rect.Right() > inner.Right() {
			p.Drift.X = -p.Drift.X
		}
		if p.Rect.Y < inner.Y || p.Rect.Bottom() > inner.Bottom() {
			p.Drift.Y = -p.Drift.Y
		}
	}
}

// Repulsor is a circular obstacle that knocks the ball away on contact.
type Repulsor struct {
	Pos    Vec2
	Radius float64
	Drift  Vec2
}

func NewRepulsor(pos Vec2, radius float64) (*Repulsor, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("repulsor: radius must be positive, got %v", radius)
	}
	return &Repulsor{Pos: pos, Radius: radius}, nil
}

// NewDriftingRepulsor builds a repulsor that wanders with a fixed
// per-tick drift, reflecting off the arena border.
func NewDriftingRepulsor(pos Vec2, radius float64, drift Vec2) (*Repulsor, error) {
	r, err := NewRepulsor(pos, radius)
	if err != nil {
		return nil, err
	}
	r.Drift = drift
	return r, nil
}

// Advance moves the repulsor one tick, reflecting the offending drift
// component when its extent crosses the arena border.
func (r *Repulsor) Advance(bounds Bounds) {
	r.Pos = r.Pos.Add(r.Drift)
	inner := bounds.Inner()
	if r.Pos.X-r.Radius < inner.X || r.Pos.X+r.Radius > inner.Right() {
		r.Drift.X = -r.Drift.X
	}
	if r.Pos.Y-r.Radius < inner.Y || r.Pos.Y+r.Radius > inner.Bottom() {
		r.Drift.Y = -r.Drift.Y
	}
}
