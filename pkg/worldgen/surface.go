package worldgen

import (
	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
)

// Параметры поверхности планеты
const (
	SurfaceScale  = 0.12 // масштаб координат для шума
	RockThreshold = 0.66 // выше - скалы
)

// GenerateSurface создает поверхность планеты: грунт со скалами там,
// где шум выше порога. Один сид - одна и та же карта.
func GenerateSurface(width, height int, seed int64) *grid.Grid[domain.Cell] {
	noise := NewNoise(seed)
	g := grid.New(width, height, func() domain.Cell { return domain.NewCell(domain.TileGround) })

	g.ForEach(func(c grid.Coord, _ domain.Cell) {
		if noise.At(float64(c.X)*SurfaceScale, float64(c.Y)*SurfaceScale) > RockThreshold {
			g.SetAt(c, domain.NewCell(domain.TileWall))
		}
	})
	return g
}

// IsWalkable - на клетке можно стоять: не стена и не пустота.
func IsWalkable(area *domain.Area, c grid.Coord) bool {
	if !area.IsValid(c) {
		return false
	}
	tile := area.Tile(c)
	return !tile.IsOpaque() && !tile.IsNothing()
}
