package systems

import (
	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
	"space-rogue/internal/metrics"
	"space-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ComputeFOV возвращает клетки области, видимые из origin.
// Результат без повторов, в порядке индексов базового слоя (построчно).
// Клетки вне базового прямоугольника отбрасываются, даже если их покрывает
// пристыкованный слой.
func ComputeFOV(area *domain.Area, origin grid.Coord, radius int) []grid.Coord {
	seen := make([]bool, area.Width()*area.Height())
	count := 0

	Shadowcast(origin, radius, area.IsOpaque, func(c grid.Coord) {
		if !area.IsValid(c) {
			return
		}
		idx := area.CoordsToIndex(c)
		if !seen[idx] {
			seen[idx] = true
			count++
		}
	})

	result := make([]grid.Coord, 0, count)
	for idx, ok := range seen {
		if ok {
			result = append(result, area.IndexToCoord(idx))
		}
	}
	return result
}

// VisibilitySystem пересчитывает поле зрения всех (Position, Visibility)
// и дописывает увиденное в VisibilityMemory, если она есть. Память ведется
// по области из Position, без разрешения ссылок.
func VisibilitySystem(w *domain.World, rec *metrics.Recorder) {
	for _, id := range w.Query(w.Positions, w.Visibility) {
		pos, _ := w.Positions.Get(id)
		vis, _ := w.Visibility.Get(id)
		vis.VisibleTiles = vis.VisibleTiles[:0]

		fovLogger := logger.For("fov_system").WithFields(logrus.Fields{
			"entity_id": id,
			"area_id":   pos.AreaID,
		})

		_, area, ok := resolveArea(w, pos.AreaID)
		if !ok {
			fovLogger.Warn("Visibility skipped: position is not in a known area.")
			rec.Skipped("no_area")
			continue
		}

		vis.VisibleTiles = ComputeFOV(area, pos.Point, vis.Range)
		rec.VisibleTiles(len(vis.VisibleTiles))

		if mem, ok := w.Memories.Get(id); ok {
			mem.Remember(pos.AreaID, vis.VisibleTiles)
		}

		fovLogger.WithFields(logrus.Fields{
			"radius":        vis.Range,
			"visible_tiles": len(vis.VisibleTiles),
		}).Debug("FOV calculation complete.")
	}
}

// resolveArea возвращает конечный ID области и саму область.
func resolveArea(w *domain.World, id domain.AreaID) (domain.AreaID, *domain.Area, bool) {
	areaID, ok := domain.ResolveAreaID(w, id)
	if !ok {
		return domain.NilEntityID, nil, false
	}
	area, ok := domain.ResolveArea(w, areaID)
	return areaID, area, ok
}
