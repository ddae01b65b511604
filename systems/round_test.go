package systems

import (
	"testing"

	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestFormatTimer(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{100, "Timer: 1 min 40 sec"},
		{60, "Timer: 1 min 0 sec"},
		{59, "Timer: 0 min 59 sec"},
		{0, "Timer: 0 min 0 sec"},
	}
	for _, c := range cases {
		if got := FormatTimer(c.seconds); got != c.want {
			t.Errorf("FormatTimer(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestRoundStartsWithFullTimer(t *testing.T) {
	e := newTestECS()
	round := GetOrCreateRound(e)

	if round.State != cfg.RoundPlaying {
		t.Errorf("state = %v, want playing", round.State)
	}
	if round.TimerSeconds != cfg.Round.TimerSeconds {
		t.Errorf("timer = %d, want %d", round.TimerSeconds, cfg.Round.TimerSeconds)
	}
}

func TestTimerDecrementsOncePerSecond(t *testing.T) {
	e := newTestECS()
	round := GetOrCreateRound(e)
	start := round.TimerSeconds

	for i := 0; i < cfg.Round.TicksPerSecond-1; i++ {
		UpdateRoundTimer(e)
	}
	if round.TimerSeconds != start {
		t.Fatalf("timer moved after %d ticks", cfg.Round.TicksPerSecond-1)
	}

	UpdateRoundTimer(e)
	if round.TimerSeconds != start-1 {
		t.Fatalf("timer = %d after one full second, want %d", round.TimerSeconds, start-1)
	}
}

func TestTimerExpiryLosesRound(t *testing.T) {
	e := newTestECS()
	round := GetOrCreateRound(e)
	round.TimerSeconds = 0

	for i := 0; i < cfg.Round.TicksPerSecond; i++ {
		UpdateRoundTimer(e)
	}

	if round.State != cfg.RoundLost {
		t.Errorf("state = %v, want lost", round.State)
	}
}

func TestEndRoundKeepsFirstOutcome(t *testing.T) {
	e := newTestECS()

	EndRound(e, cfg.RoundWon)
	EndRound(e, cfg.RoundLost)

	if round := GetOrCreateRound(e); round.State != cfg.RoundWon {
		t.Errorf("state = %v, want the first outcome to stick", round.State)
	}
}

func TestBouncedDetectsSignFlips(t *testing.T) {
	cases := []struct {
		prev, curr physics.Vec2
		want       bool
	}{
		{physics.Vec2{X: 5}, physics.Vec2{X: -4}, true},
		{physics.Vec2{Y: -3}, physics.Vec2{Y: 2}, true},
		{physics.Vec2{X: 5, Y: 1}, physics.Vec2{X: 4.9, Y: 0.98}, false},
		{physics.Vec2{}, physics.Vec2{}, false},
	}
	for _, c := range cases {
		if got := bounced(c.prev, c.curr); got != c.want {
			t.Errorf("bounced(%+v, %+v) = %v, want %v", c.prev, c.curr, got, c.want)
		}
	}
}
