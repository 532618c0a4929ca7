package grid

import (
	"fmt"
	"math"
)

// Coord - целочисленная точка на сетке. Ось Y направлена вниз (север = Y-1).
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// CoordFromArray собирает координату из пары [x, y].
func CoordFromArray(a [2]int32) Coord {
	return Coord{X: int(a[0]), Y: int(a[1])}
}

// ToArray возвращает координату в виде пары [x, y].
func (c Coord) ToArray() [2]int32 {
	return [2]int32{int32(c.X), int32(c.Y)}
}

// Translate возвращает новую точку со смещением (исходная не меняется)
func (c Coord) Translate(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Distance возвращает евклидово расстояние до другой точки
func (c Coord) Distance(other Coord) float64 {
	return math.Sqrt(float64(c.DistanceSquared(other)))
}

// DistanceSquared возвращает квадрат расстояния (int) для сравнения без корней
func (c Coord) DistanceSquared(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// ChebyshevDistance - количество шагов при движении в 8 направлениях:
// диагональ и прямой шаг стоят одинаково.
func (c Coord) ChebyshevDistance(other Coord) int {
	return max(abs(c.X-other.X), abs(c.Y-other.Y))
}

// IsAdjacent возвращает true, если точка в соседней клетке (включая диагональ)
func (c Coord) IsAdjacent(other Coord) bool {
	return c != other && c.ChebyshevDistance(other) <= 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dir4 - одно из четырёх основных направлений.
type Dir4 uint8

const (
	North Dir4 = iota
	East
	South
	West
)

// Dirs4 - канонический порядок обхода: N → E → S → W.
var Dirs4 = [4]Dir4{North, East, South, West}

// Dirs8 - смещения соседей в порядке N, NE, E, SE, S, SW, W, NW.
// От этого порядка зависит разрешение равноценных путей в A*.
var Dirs8 = [8]Coord{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// Delta возвращает единичное смещение направления.
func (d Dir4) Delta() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: -1}
	case East:
		return Coord{X: 1, Y: 0}
	case South:
		return Coord{X: 0, Y: 1}
	case West:
		return Coord{X: -1, Y: 0}
	}
	panic(fmt.Sprintf("grid: invalid direction %d", d))
}

func (d Dir4) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "UNKNOWN"
}
