package grid

// Rect - прямоугольник [Pos, Pos+Size).
type Rect struct {
	Pos  Coord
	Size Coord
}

func NewRect(pos Coord, width, height int) Rect {
	return Rect{Pos: pos, Size: Coord{X: width, Y: height}}
}

func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Pos.X && c.Y >= r.Pos.Y &&
		c.X < r.Pos.X+r.Size.X && c.Y < r.Pos.Y+r.Size.Y
}

// Intersects - есть ли у прямоугольников общая клетка.
func (r Rect) Intersects(other Rect) bool {
	return r.Pos.X < other.Pos.X+other.Size.X && other.Pos.X < r.Pos.X+r.Size.X &&
		r.Pos.Y < other.Pos.Y+other.Size.Y && other.Pos.Y < r.Pos.Y+r.Size.Y
}
