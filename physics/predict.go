package physics

import "math"

// Predict simulates a launch from start against a frozen snapshot of the
// course and returns the path, one point per tick, capped at
// PredictSteps. Moving obstacles are frozen at their current rects,
// repulsors are ignored, platform speed transfer does not apply, and
// nothing on the course is mutated. A below-threshold launch returns only
// the start point.
func Predict(start Vec2, radius, angleDeg, power, maxPower float64, course *Course, bounds Bounds) []Vec2 {
	b := Ball{Pos: start, Radius: radius}
	b.Launch(angleDeg, power, maxPower)
	path := []Vec2{start}
	if math.Abs(b.Vel.X) < StopThreshold && math.Abs(b.Vel.Y) < StopThreshold {
		return path
	}
	rects := course.ObstacleRects()
	for i := 0; i < PredictSteps; i++ {
		b.Step()
		b.ResolveBorders(bounds)
		for _, r := range rects {
			b.ResolveRect(r)
		}
		path = append(path, b.Pos)
		if !b.Moving {
			break
		}
	}
	return path
}

// ResamplePath redistributes a polyline into at most count points spaced
// evenly by arc length. Paths shorter than two points come back as-is.
func ResamplePath(path []Vec2, count int) []Vec2 {
	if len(path) < 2 || count < 2 {
		return path
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i-1].DistanceTo(path[i])
	}
	if total == 0 {
		return []Vec2{path[0]}
	}
	step := total / float64(count)
	out := make([]Vec2, 0, count)
	next := step
	walked := 0.0
	for i := 1; i < len(path) && len(out) < count; i++ {
		seg := path[i-1].DistanceTo(path[i])
		if seg == 0 {
			continue
		}
		for walked+seg >= next && len(out) < count {
			t := (next - walked) / seg
			out = append(out, path[i-1].Add(path[i].Sub(path[i-1]).Scale(t)))
			next += step
		}
		walked += seg
	}
	return out
}
