package components

import (
	"github.com/automoto/minigolf/physics"
	"github.com/yohamta/donburi"
)

// AimData stores the current shot parameters and the cached trajectory preview.
// Angle is in degrees counter-clockwise from the +X axis, power in [0, MaxPower].
type AimData struct {
	AngleDeg float64
	Power    float64

	// Preview is recomputed while the ball is at rest and drawn as dots
	Preview []physics.Vec2

	// LaunchRequested is set by the UI panel and consumed by UpdateBall
	LaunchRequested bool
}

var Aim = donburi.NewComponentType[AimData]()
