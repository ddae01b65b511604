package components

import (
	"github.com/automoto/minigolf/physics"
	"github.com/yohamta/donburi"
)

// BallData stores the ball's physical state plus per-round bookkeeping
type BallData struct {
	physics.Ball

	Strokes int // Launches taken on the current course
}

var Ball = donburi.NewComponentType[BallData]()
