package physics

import "math"

// Motion constants are tick-rate dependent. The simulation assumes a
// fixed 60 ticks per second; changing the tick rate changes effective
// friction and bounce behavior.
const (
	Friction       = 0.98
	Restitution    = 0.8
	StopThreshold  = 0.1
	MaxLaunchSpeed = 15.0
	PredictSteps   = 200

	speedTransfer      = 0.5
	reflectFactor      = 1.1
	reboundFactor      = 4.0
	repulsorSeparation = 0.1
	teleportSnapDist   = 2.0
	teleportMaxStep    = 0.2
	teleportVelDamp    = 0.8
)

// Ball is the single simulated golf ball.
type Ball struct {
	Pos         Vec2
	Vel         Vec2
	Radius      float64
	Moving      bool
	Teleporting bool
}

func NewBall(pos Vec2, radius float64) *Ball {
	return &Ball{Pos: pos, Radius: radius}
}

// Launch puts the ball in motion. Power is clamped to [0, maxPower] and
// maps linearly onto [0, MaxLaunchSpeed]. The angle is in degrees,
// counter-clockwise from +x, with y negated for screen coordinates.
func (b *Ball) Launch(angleDeg, power, maxPower float64) {
	if maxPower <= 0 {
		return
	}
	power = math.Max(0, math.Min(power, maxPower))
	speed := power / maxPower * MaxLaunchSpeed
	rad := angleDeg * math.Pi / 180
	b.Vel = Vec2{speed * math.Cos(rad), -speed * math.Sin(rad)}
	b.Moving = true
}

// Step advances one tick: friction first, then movement. The ball
// force-stops once both velocity components drop below StopThreshold.
func (b *Ball) Step() {
	if !b.Moving || b.Teleporting {
		return
	}
	b.Vel = b.Vel.Scale(Friction)
	b.Pos = b.Pos.Add(b.Vel)
	if math.Abs(b.Vel.X) < StopThreshold && math.Abs(b.Vel.Y) < StopThreshold {
		b.Stop()
	}
}

func (b *Ball) Stop() {
	b.Vel = Vec2{}
	b.Moving = false
}

// ResolveBorders clamps the ball inside the arena border and reflects
// the matching velocity component. Both axes may fire on the same tick.
func (b *Ball) ResolveBorders(bounds Bounds) {
	minX := bounds.Border + b.Radius
	maxX := bounds.Width - bounds.Border - b.Radius
	minY := bounds.Border + b.Radius
	maxY := bounds.Height - bounds.Border - b.Radius
	if b.Pos.X < minX {
		b.Pos.X = minX
		b.Vel.X *= -Restitution
	} else if b.Pos.X > maxX {
		b.Pos.X = maxX
		b.Vel.X *= -Restitution
	}
	if b.Pos.Y < minY {
		b.Pos.Y = minY
		b.Vel.Y *= -Restitution
	} else if b.Pos.Y > maxY {
		b.Pos.Y = maxY
		b.Vel.Y *= -Restitution
	}
}

// ResolveRect resolves a circle-rectangle collision by minimum
// penetration depth. Ties resolve in the fixed order left, right, top,
// bottom. The ball is clamped outside the chosen edge and the matching
// velocity component is reflected with restitution.
func (b *Ball) ResolveRect(r Rect) Side {
	if !r.CircleOverlaps(b.Pos, b.Radius) {
		return SideNone
	}
	penLeft := math.Abs(b.Pos.X + b.Radius - r.X)
	penRight := math.Abs(r.Right() - (b.Pos.X - b.Radius))
	penTop := math.Abs(b.Pos.Y + b.Radius - r.Y)
	penBottom := math.Abs(r.Bottom() - (b.Pos.Y - b.Radius))

	side, pen := SideLeft, penLeft
	if penRight < pen {
		side, pen = SideRight, penRight
	}
	if penTop < pen {
		side, pen = SideTop, penTop
	}
	if penBottom < pen {
		side = SideBottom
	}

	switch side {
	case SideLeft:
		b.Pos.X = r.X - b.Radius
		b.Vel.X *= -Restitution
	case SideRight:
		b.Pos.X = r.Right() + b.Radius
		b.Vel.X *= -Restitution
	case SideTop:
		b.Pos.Y = r.Y - b.Radius
		b.Vel.Y *= -Restitution
	case SideBottom:
		b.Pos.Y = r.Bottom() + b.Radius
		b.Vel.Y *= -Restitution
	}
	return side
}

// ResolvePlatform bounces the ball off a platform. Oscillating platforms
// hit on the axis they travel along transfer half their speed into the
// matching velocity component; drifting platforms transfer nothing.
func (b *Ball) ResolvePlatform(p *Platform) Side {
	side := b.ResolveRect(p.Rect)
	if side == SideNone {
		return side
	}
	switch p.Mode {
	case MoveHorizontal:
		if side == SideLeft || side == SideRight {
			b.Vel.X += p.Speed * p.Dir * speedTransfer
		}
	case MoveVertical:
		if side == SideTop || side == SideBottom {
			b.Vel.Y += p.Speed * p.Dir * speedTransfer
		}
	}
	return side
}

// ResolveRepulsor pushes the ball out of a repulsor along the contact
// normal and redirects it per the rebound policy. Reports whether
// contact occurred.
func (b *Ball) ResolveRepulsor(r *Repulsor, policy ReboundPolicy) bool {
	d := b.Pos.Sub(r.Pos)
	dist := d.Len()
	sum := b.Radius + r.Radius
	if dist >= sum {
		return false
	}
	normal := Vec2{1, 0}
	if dist == 0 {
		// Coincident centers leave no contact direction; push along +x.
		b.Pos.X += sum + repulsorSeparation
	} else {
		normal = d.Scale(1 / dist)
		b.Pos = b.Pos.Add(normal.Scale(sum - dist + repulsorSeparation))
	}
	switch policy {
	case ReboundBoost:
		speed := math.Max(b.Vel.Len(), 1)
		b.Vel = normal.Scale(reboundFactor * speed)
	case ReboundReverse:
		// Scaling covers the zero-speed case without normalizing.
		b.Vel = b.Vel.Scale(-reboundFactor)
	default:
		b.Vel = b.Vel.Scale(-reflectFactor)
	}
	return true
}

// InHole reports whether the ball's center is inside the hole's capture
// zone.
func (b *Ball) InHole(hole Vec2, holeRadius, captureFactor float64) bool {
	return b.Pos.DistanceTo(hole) < holeRadius*captureFactor
}

// TeleportToward eases the ball toward the hole center while damping its
// velocity, and snaps-and-stops once within the snap distance. Reports
// whether the ball finished sinking.
func (b *Ball) TeleportToward(hole Vec2) bool {
	d := hole.Sub(b.Pos)
	dist := d.Len()
	if dist < teleportSnapDist {
		b.Pos = hole
		b.Stop()
		b.Teleporting = false
		return true
	}
	frac := math.Min(teleportMaxStep, dist/10)
	b.Pos = b.Pos.Add(d.Scale(frac))
	b.Vel = b.Vel.Scale(teleportVelDamp)
	return false
}
