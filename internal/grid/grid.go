package grid

import "fmt"

// Grid - прямоугольный буфер width*height клеток, хранится построчно:
// index = y*width + x.
type Grid[T any] struct {
	width  int
	height int
	list   []T
}

// New создает сетку, заполняя каждую клетку вызовом def.
func New[T any](width, height int, def func() T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, height))
	}
	list := make([]T, width*height)
	for i := range list {
		list[i] = def()
	}
	return &Grid[T]{width: width, height: height, list: list}
}

// FromList оборачивает готовый слайс. Длина обязана совпадать с width*height.
func FromList[T any](width, height int, list []T) *Grid[T] {
	if width < 0 || height < 0 || len(list) != width*height {
		panic(fmt.Sprintf("grid: list of %d cells does not fit %dx%d", len(list), width, height))
	}
	return &Grid[T]{width: width, height: height, list: list}
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }
func (g *Grid[T]) Len() int    { return len(g.list) }

func (g *Grid[T]) Size() Coord {
	return Coord{X: g.width, Y: g.height}
}

// List возвращает внутренний буфер (без копирования).
func (g *Grid[T]) List() []T {
	return g.list
}

// CoordsToIndex переводит координату в индекс построчного буфера ширины width.
func CoordsToIndex(width int, c Coord) int {
	return c.Y*width + c.X
}

// IndexToCoord - обратное преобразование к CoordsToIndex.
func IndexToCoord(width, index int) Coord {
	return Coord{X: index % width, Y: index / width}
}

func (g *Grid[T]) CoordsToIndex(c Coord) int {
	return CoordsToIndex(g.width, c)
}

func (g *Grid[T]) IndexToCoord(index int) Coord {
	return IndexToCoord(g.width, index)
}

// IsValid проверяет обе размерности и общую длину буфера.
func (g *Grid[T]) IsValid(c Coord) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.width || c.Y >= g.height {
		return false
	}
	return g.IsValidIndex(g.CoordsToIndex(c))
}

func (g *Grid[T]) IsValidIndex(index int) bool {
	return index >= 0 && index < len(g.list)
}

func (g *Grid[T]) Get(index int) T {
	if !g.IsValidIndex(index) {
		panic(fmt.Sprintf("grid: index %d out of bounds (len %d)", index, len(g.list)))
	}
	return g.list[index]
}

func (g *Grid[T]) Set(index int, value T) {
	if !g.IsValidIndex(index) {
		panic(fmt.Sprintf("grid: index %d out of bounds (len %d)", index, len(g.list)))
	}
	g.list[index] = value
}

// GetAt возвращает клетку по координате. Невалидная координата - ошибка программиста.
func (g *Grid[T]) GetAt(c Coord) T {
	if !g.IsValid(c) {
		panic(fmt.Sprintf("grid: coord %v out of bounds %dx%d", c, g.width, g.height))
	}
	return g.list[g.CoordsToIndex(c)]
}

// GetAtOpt - вариант GetAt без паники.
func (g *Grid[T]) GetAtOpt(c Coord) (T, bool) {
	if !g.IsValid(c) {
		var zero T
		return zero, false
	}
	return g.list[g.CoordsToIndex(c)], true
}

func (g *Grid[T]) SetAt(c Coord, value T) {
	if !g.IsValid(c) {
		panic(fmt.Sprintf("grid: coord %v out of bounds %dx%d", c, g.width, g.height))
	}
	g.list[g.CoordsToIndex(c)] = value
}

// SetAtOpt записывает значение, если координата валидна.
func (g *Grid[T]) SetAtOpt(c Coord, value T) bool {
	if !g.IsValid(c) {
		return false
	}
	g.list[g.CoordsToIndex(c)] = value
	return true
}

// Neighbors4 возвращает соседей в порядке N, E, S, W (только в пределах сетки).
func (g *Grid[T]) Neighbors4(c Coord) []Coord {
	result := make([]Coord, 0, 4)
	for _, d := range Dirs4 {
		n := c.Add(d.Delta())
		if g.IsValid(n) {
			result = append(result, n)
		}
	}
	return result
}

// Neighbors8 возвращает соседей в порядке N, NE, E, SE, S, SW, W, NW.
func (g *Grid[T]) Neighbors8(c Coord) []Coord {
	result := make([]Coord, 0, 8)
	for _, d := range Dirs8 {
		n := c.Add(d)
		if g.IsValid(n) {
			result = append(result, n)
		}
	}
	return result
}

// Raytrace идет от origin шагами (dx, dy), пока не выйдет за сетку.
// Сам origin в результат не входит.
func (g *Grid[T]) Raytrace(origin Coord, dx, dy int) []Coord {
	if dx == 0 && dy == 0 {
		return nil
	}
	var result []Coord
	current := origin.Translate(dx, dy)
	for g.IsValid(current) {
		result = append(result, current)
		current = current.Translate(dx, dy)
	}
	return result
}

// ForEach обходит клетки построчно.
func (g *Grid[T]) ForEach(fn func(c Coord, value T)) {
	for i, v := range g.list {
		fn(g.IndexToCoord(i), v)
	}
}
