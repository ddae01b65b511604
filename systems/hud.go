package systems

import (
	"fmt"

	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the course label, countdown, and stroke counter in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	round := GetOrCreateRound(e)
	face := fonts.HUD.Get()

	courseEntry, ok := components.Course.First(e.World)
	if !ok {
		return
	}
	course := components.Course.Get(courseEntry).CurrentCourse

	label := fmt.Sprintf("Course %d / %d", course.Number, cfg.Course.TotalCourses)
	text.Draw(screen, label, face, int(cfg.HUD.LabelX), int(cfg.HUD.CourseLineY), cfg.HUD.TextColor)

	// Timer turns red when time runs short
	timerColor := cfg.HUD.TextColor
	if round.TimerSeconds < cfg.Round.WarningSeconds {
		timerColor = cfg.HUD.WarnColor
	}
	text.Draw(screen, FormatTimer(round.TimerSeconds), face, int(cfg.HUD.LabelX), int(cfg.HUD.TimerLineY), timerColor)

	if ballEntry, ok := components.Ball.First(e.World); ok {
		ball := components.Ball.Get(ballEntry)
		strokes := fmt.Sprintf("Strokes: %d", ball.Strokes)
		text.Draw(screen, strokes, face, int(cfg.HUD.LabelX), int(cfg.HUD.TimerLineY)+25, cfg.HUD.TextColor)
	}
}
