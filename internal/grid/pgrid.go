package grid

// PGrid - сетка с мировым смещением Pos. Её прямоугольник: [Pos, Pos+Size).
type PGrid[T any] struct {
	Pos  Coord
	Grid *Grid[T]
}

func NewPGrid[T any](pos Coord, g *Grid[T]) PGrid[T] {
	return PGrid[T]{Pos: pos, Grid: g}
}

// ToLocal переводит глобальную координату в локальную координату сетки.
func (p PGrid[T]) ToLocal(global Coord) Coord {
	return global.Sub(p.Pos)
}

// ToGlobal переводит локальную координату в глобальную.
func (p PGrid[T]) ToGlobal(local Coord) Coord {
	return local.Add(p.Pos)
}

func (p PGrid[T]) Rect() Rect {
	return Rect{Pos: p.Pos, Size: p.Grid.Size()}
}

// Contains проверяет глобальную координату.
func (p PGrid[T]) Contains(global Coord) bool {
	return p.Rect().Contains(global)
}

func (p PGrid[T]) GetAt(global Coord) (T, bool) {
	return p.Grid.GetAtOpt(p.ToLocal(global))
}

func (p PGrid[T]) SetAt(global Coord, value T) bool {
	return p.Grid.SetAtOpt(p.ToLocal(global), value)
}
