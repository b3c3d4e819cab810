package render

import (
	"math"

	"github.com/automoto/robofighter/components"
	"github.com/automoto/robofighter/tags"
	"github.com/yohamta/donburi/ecs"
)

// FollowSmoothing is the fraction of the distance to the target covered per
// frame.
const FollowSmoothing = 0.15

// Camera is the viewer's window onto the arena, positioned by its center.
type Camera struct {
	X, Y float64
}

// Follow eases the camera toward the player, keeping the arena filling the
// screen where it is large enough to.
func (c *Camera) Follow(e *ecs.ECS, screenW, screenH float64) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	targetX := obj.CenterX()
	targetY := obj.Y + obj.H/2

	if levelEntry, ok := components.Level.First(e.World); ok {
		arena := components.Level.Get(levelEntry).Arena
		if arena != nil {
			targetX = clampAxis(targetX, screenW, float64(arena.MapWidth))
			targetY = clampAxis(targetY, screenH, float64(arena.MapHeight))
		}
	}

	c.X += (targetX - c.X) * FollowSmoothing
	c.Y += (targetY - c.Y) * FollowSmoothing
}

// Offset converts world coordinates to screen coordinates.
func (c *Camera) Offset(screenW, screenH float64) (float64, float64) {
	return screenW/2 - c.X, screenH/2 - c.Y
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
