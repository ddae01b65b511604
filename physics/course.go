package physics

// ReboundPolicy selects how a course's repulsors redirect the ball after
// pushing it out.
type ReboundPolicy int

const (
	// ReboundReflect flips and slightly amplifies both velocity
	// components.
	ReboundReflect ReboundPolicy = iota
	// ReboundBoost relaunches the ball along the contact normal at four
	// times its speed, with a floor so slow balls still get kicked.
	ReboundBoost
	// ReboundReverse sends the ball straight back along its incoming
	// direction at four times its speed.
	ReboundReverse
)

func (p ReboundPolicy) String() string {
	switch p {
	case ReboundBoost:
		return "boost"
	case ReboundReverse:
		return "reverse"
	}
	return "reflect"
}

// Course is one playable level: a hole, its obstacles, and the rebound
// policy its repulsors use.
type Course struct {
	Number    int
	Hole      Vec2
	Rebound   ReboundPolicy
	Walls     []Rect
	Platforms []*Platform
	Repulsors []*Repulsor
}

func NewCourse(number int, hole Vec2, policy ReboundPolicy) *Course {
	return &Course{Number: number, Hole: hole, Rebound: policy}
}

func (c *Course) AddWall(r Rect) {
	c.Walls = append(c.Walls, r)
}

func (c *Course) AddPlatform(p *Platform) {
	c.Platforms = append(c.Platforms, p)
}

func (c *Course) AddRepulsor(r *Repulsor) {
	c.Repulsors = append(c.Repulsors, r)
}

// Advance moves every obstacle one tick. The ball is never consulted;
// obstacles pass through it freely.
func (c *Course) Advance(bounds Bounds) {
	for _, p := range c.Platforms {
		p.Advance(bounds)
	}
	for _, r := range c.Repulsors {
		r.Advance(bounds)
	}
}

// ObstacleRects snapshots all rectangular obstacles, walls first, each
// group in insertion order.
func (c *Course) ObstacleRects() []Rect {
	rects := make([]Rect, 0, len(c.Walls)+len(c.Platforms))
	rects = append(rects, c.Walls...)
	for _, p := range c.Platforms {
		rects = append(rects, p.Rect)
	}
	return rects
}

// StepBall runs one full simulation tick: obstacle motion, ball
// integration, border and obstacle resolution, hole capture, and
// teleport easing. Reports whether the ball finished sinking this tick.
func (c *Course) StepBall(b *Ball, bounds Bounds, holeRadius, captureFactor float64) bool {
	c.Advance(bounds)
	if b.Teleporting {
		return b.TeleportToward(c.Hole)
	}
	// An idle ball is inert. Obstacles sweep through it without contact
	// and it can never start sinking, so only obstacle motion runs.
	if !b.Moving {
		return false
	}
	b.Step()
	b.ResolveBorders(bounds)
	for _, w := range c.Walls {
		b.ResolveRect(w)
	}
	for _, p := range c.Platforms {
		b.ResolvePlatform(p)
	}
	for _, r := range c.Repulsors {
		b.ResolveRepulsor(r, c.Rebound)
	}
	if b.InHole(c.Hole, holeRadius, captureFactor) {
		b.Teleporting = true
		return b.TeleportToward(c.Hole)
	}
	return false
}
