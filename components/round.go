package components

import (
	cfg "github.com/automoto/minigolf/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the shared countdown and win/lose state for a run.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	State        cfg.RoundStateID
	TimerSeconds int
	TickCounter  int // Ticks accumulated toward the next second

	// End-screen menu selection
	SelectedOption int
}

var Round = donburi.NewComponentType[RoundData]()
