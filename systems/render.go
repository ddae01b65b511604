package systems

import (
	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawCourse renders the playfield: grass, borders, hole, and every
// obstacle of the current course.
func DrawCourse(e *ecs.ECS, screen *ebiten.Image) {
	courseEntry, ok := components.Course.First(e.World)
	if !ok {
		return
	}
	course := components.Course.Get(courseEntry).CurrentCourse

	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)
	border := float32(cfg.Course.BorderThickness)

	screen.Fill(cfg.Course.FieldColor)

	// Borders (top, bottom, left, right)
	vector.FillRect(screen, 0, 0, width, border, cfg.Course.BorderColor, false)
	vector.FillRect(screen, 0, height-border, width, border, cfg.Course.BorderColor, false)
	vector.FillRect(screen, 0, 0, border, height, cfg.Course.BorderColor, false)
	vector.FillRect(screen, width-border, 0, border, height, cfg.Course.BorderColor, false)

	// Hole
	vector.FillCircle(screen, float32(course.Hole.X), float32(course.Hole.Y), float32(cfg.Course.HoleRadius), cfg.Course.HoleColor, true)

	for _, w := range course.Walls {
		vector.FillRect(screen, float32(w.X), float32(w.Y), float32(w.W), float32(w.H), cfg.Course.WallColor, false)
	}
	for _, p := range course.Platforms {
		vector.FillRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), cfg.Course.PlatformColor, false)
	}
	for _, r := range course.Repulsors {
		vector.FillCircle(screen, float32(r.Pos.X), float32(r.Pos.Y), float32(r.Radius), cfg.Course.RepulsorColor, true)
	}
}

// DrawAimPreview dots the predicted trajectory while the ball is aimable
func DrawAimPreview(e *ecs.ECS, screen *ebiten.Image) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	if ball.Moving || ball.Teleporting {
		return
	}

	aim := GetOrCreateAim(e)
	for _, p := range aim.Preview {
		vector.FillCircle(screen, float32(p.X), float32(p.Y), cfg.Aim.PreviewRadius, cfg.Aim.PreviewColor, true)
	}
}

// DrawBall renders the ball
func DrawBall(e *ecs.ECS, screen *ebiten.Image) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)

	vector.FillCircle(screen, float32(ball.Pos.X), float32(ball.Pos.Y), float32(ball.Radius), cfg.White, true)
}
