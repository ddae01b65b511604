package tags

import "github.com/yohamta/donburi"

var (
	Ball     = donburi.NewTag().SetName("Ball")
	Wall     = donburi.NewTag().SetName("Wall")
	Platform = donburi.NewTag().SetName("Platform")
	Repulsor = donburi.NewTag().SetName("Repulsor")
	Hole     = donburi.NewTag().SetName("Hole")
)

// Resolv tags for the collision space mirror
const (
	ResolvBall     = "ball"
	ResolvWall     = "wall"
	ResolvPlatform = "platform"
	ResolvRepulsor = "repulsor"
	ResolvBorder   = "border"
	ResolvHole     = "hole"
)
