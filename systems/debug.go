package systems

import (
	"image/color"

	"github.com/automoto/minigolf/components"
	"github.com/automoto/minigolf/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space. The view is
// static, so no camera transform is needed.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvWall) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvBall) {
			c = color.RGBA{255, 255, 255, 255} // White
		} else if obj.HasTags(tags.ResolvPlatform) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		} else if obj.HasTags(tags.ResolvRepulsor) {
			c = color.RGBA{255, 165, 0, 255} // Orange
		}

		x, y := obj.X, obj.Y

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
