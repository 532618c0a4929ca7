package grid

import "fmt"

// GridCell - клетка, которую слой может "пропустить" насквозь.
type GridCell interface {
	IsEmpty() bool
}

// NGrid - стопка позиционированных сеток. Первый слой - базовый, он задает
// размер всей стопки; остальные слои накладываются поверх с любым смещением.
type NGrid[T GridCell] struct {
	layers []PGrid[T]
}

// NewNGrid создает стопку с одним базовым слоем.
func NewNGrid[T GridCell](base PGrid[T]) *NGrid[T] {
	return &NGrid[T]{layers: []PGrid[T]{base}}
}

// FromGrid создает стопку из сетки, положенной в начало координат.
func FromGrid[T GridCell](g *Grid[T]) *NGrid[T] {
	return NewNGrid(NewPGrid(Coord{}, g))
}

func (n *NGrid[T]) Push(layer PGrid[T]) {
	n.layers = append(n.layers, layer)
}

// Len возвращает количество слоев.
func (n *NGrid[T]) Len() int {
	return len(n.layers)
}

func (n *NGrid[T]) Layer(index int) PGrid[T] {
	return n.layers[index]
}

func (n *NGrid[T]) Layers() []PGrid[T] {
	return n.layers
}

func (n *NGrid[T]) Base() PGrid[T] {
	if len(n.layers) == 0 {
		panic("grid: NGrid has no layers")
	}
	return n.layers[0]
}

func (n *NGrid[T]) Width() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].Grid.Width()
}

func (n *NGrid[T]) Height() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].Grid.Height()
}

// Rect - прямоугольник базового слоя.
func (n *NGrid[T]) Rect() Rect {
	if len(n.layers) == 0 {
		return Rect{}
	}
	return n.layers[0].Rect()
}

// IsValid проверяет, что координата внутри базового прямоугольника.
func (n *NGrid[T]) IsValid(c Coord) bool {
	return n.Rect().Contains(c)
}

// CoordsToIndex нумерует клетки базового прямоугольника построчно.
func (n *NGrid[T]) CoordsToIndex(c Coord) int {
	return CoordsToIndex(n.Width(), c.Sub(n.Rect().Pos))
}

func (n *NGrid[T]) IndexToCoord(index int) Coord {
	return IndexToCoord(n.Width(), index).Add(n.Rect().Pos)
}

// Neighbors8 возвращает соседей внутри базового прямоугольника в порядке Dirs8.
func (n *NGrid[T]) Neighbors8(c Coord) []Coord {
	result := make([]Coord, 0, 8)
	for _, d := range Dirs8 {
		next := c.Add(d)
		if n.IsValid(next) {
			result = append(result, next)
		}
	}
	return result
}

// resolve реализует правило наложения слоев: идем сверху вниз, первый непустой
// слой выигрывает; если все покрывающие слои пусты - отдаем самый верхний пустой.
func (n *NGrid[T]) resolve(c Coord) (int, bool) {
	fallback := -1
	for i := len(n.layers) - 1; i >= 0; i-- {
		layer := n.layers[i]
		if !layer.Contains(c) {
			continue
		}
		cell, _ := layer.GetAt(c)
		if !cell.IsEmpty() {
			return i, true
		}
		if fallback < 0 {
			fallback = i
		}
	}
	if fallback >= 0 {
		return fallback, true
	}
	return -1, false
}

// GetAt возвращает видимую клетку в координате c.
func (n *NGrid[T]) GetAt(c Coord) (T, bool) {
	i, ok := n.resolve(c)
	if !ok {
		var zero T
		return zero, false
	}
	cell, _ := n.layers[i].GetAt(c)
	return cell, true
}

// LayerAt возвращает индекс слоя, из которого GetAt взял бы клетку.
func (n *NGrid[T]) LayerAt(c Coord) (int, bool) {
	return n.resolve(c)
}

// NonEmptyLayerAt возвращает индекс самого верхнего непустого слоя в c.
func (n *NGrid[T]) NonEmptyLayerAt(c Coord) (int, bool) {
	i, ok := n.resolve(c)
	if !ok {
		return -1, false
	}
	cell, _ := n.layers[i].GetAt(c)
	if cell.IsEmpty() {
		return -1, false
	}
	return i, true
}

// Merge добавляет все слои other поверх текущих, сдвигая их на offset.
// Сетки other не копируются: после слияния other использовать не следует.
func (n *NGrid[T]) Merge(other *NGrid[T], offset Coord) {
	for _, layer := range other.layers {
		n.layers = append(n.layers, PGrid[T]{Pos: layer.Pos.Add(offset), Grid: layer.Grid})
	}
}

// Remove вынимает слой в отдельную стопку из одного слоя (позиция сохраняется).
func (n *NGrid[T]) Remove(index int) *NGrid[T] {
	if index < 0 || index >= len(n.layers) {
		panic(fmt.Sprintf("grid: layer %d out of range (%d layers)", index, len(n.layers)))
	}
	layer := n.layers[index]
	n.layers = append(n.layers[:index], n.layers[index+1:]...)
	return NewNGrid(layer)
}
