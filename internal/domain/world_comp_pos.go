package domain

import "space-rogue/internal/grid"

// Shift возвращает новую позицию в той же области (текущая не меняется)
func (p Position) Shift(dir grid.Coord) Position {
	return Position{AreaID: p.AreaID, Point: p.Point.Add(dir)}
}

// SameArea - находятся ли позиции в одной области (без разрешения ссылок)
func (p Position) SameArea(other Position) bool {
	return p.AreaID == other.AreaID
}

// IsAdjacent возвращает true, если цель в той же области и в соседней клетке (включая диагональ)
func (p Position) IsAdjacent(other Position) bool {
	return p.SameArea(other) && p.Point.IsAdjacent(other.Point)
}
