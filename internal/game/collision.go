package game

import "github.com/vovakirdan/copybird/internal/core"

// PlayerRect returns the player's hit box.
func (e *Engine) PlayerRect(s *State) core.Rect {
	size := e.cfg.Sprites.Player
	return core.NewRect(s.PlayerPosition.X, s.PlayerPosition.Y, size.X, size.Y)
}

// ObstacleRects returns the two hit boxes of an obstacle: the pipe above
// the gap and the pipe below it.
func (e *Engine) ObstacleRects(obst Obstacle) (top, bottom core.Rect) {
	size := e.cfg.Sprites.Obstacle
	top = core.NewRect(obst.Pos.X, obst.Pos.Y-size.Y, size.X, size.Y)
	bottom = core.NewRect(obst.Pos.X, obst.Pos.Y+obst.Gap, size.X, size.Y)
	return top, bottom
}

// HitRects returns every obstacle hit box in obstacle order, top before bottom.
func (e *Engine) HitRects(s *State) []core.Rect {
	rects := make([]core.Rect, 0, 2*len(s.Obstacles))
	for _, obst := range s.Obstacles {
		top, bottom := e.ObstacleRects(obst)
		rects = append(rects, top, bottom)
	}
	return rects
}

// ScreenRect returns the world bounds.
func (e *Engine) ScreenRect() core.Rect {
	return core.NewRect(0, 0, e.cfg.Screen.Width, e.cfg.Screen.Height)
}

// Colliding reports whether the player touches any pipe or has left the
// screen on any side, including the top.
func (e *Engine) Colliding(s *State) bool {
	player := e.PlayerRect(s)
	for _, obst := range s.Obstacles {
		top, bottom := e.ObstacleRects(obst)
		if player.Intersects(top) || player.Intersects(bottom) {
			return true
		}
	}
	return !e.ScreenRect().ContainsRect(player)
}
