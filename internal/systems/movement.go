package systems

import (
	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
)

// CanMove проверяет только карту: цель внутри базового прямоугольника и не стена.
func CanMove(area *domain.Area, pos grid.Coord, dir grid.Coord) bool {
	dest := pos.Add(dir)
	return area.IsValid(dest) && !area.IsOpaque(dest)
}

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Position
	HasMoved  bool
	BlockedBy domain.EntityID // Если врезались в кого-то (для атаки) или в закрытую дверь
	IsWall    bool            // Если врезались в стену или край карты
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(w *domain.World, id domain.EntityID, dir grid.Coord) MovementResult {
	pos, ok := w.Positions.Get(id)
	if !ok {
		return MovementResult{IsWall: true}
	}
	res := MovementResult{Target: pos.Shift(dir)}

	// 1. Шаг больше чем на клетку не бывает
	if dir.ChebyshevDistance(grid.Coord{}) != 1 {
		res.IsWall = true
		return res
	}

	// 2. Границы и стены
	areaID, area, ok := resolveArea(w, pos.AreaID)
	if !ok || !CanMove(area, pos.Point, dir) {
		res.IsWall = true
		return res
	}

	// 3. Сущности: актеры и закрытые двери блокируют, остальное проходимо
	for _, other := range w.Query(w.Positions) {
		if other == id {
			continue
		}
		op, _ := w.Positions.Get(other)
		if op.Point != res.Target.Point {
			continue
		}
		if otherArea, ok := domain.ResolveAreaID(w, op.AreaID); !ok || otherArea != areaID {
			continue
		}
		if isBlocking(w, other) {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}

// isBlocking: живые актеры (ИИ или зрячие) и закрытые двери.
func isBlocking(w *domain.World, id domain.EntityID) bool {
	if obj, ok := w.Objects.Get(id); ok {
		return obj.Kind.Type == domain.ObjectDoor && !obj.Open
	}
	return w.Ais.Has(id) || w.Visibility.Has(id)
}
