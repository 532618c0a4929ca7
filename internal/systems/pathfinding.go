package systems

import (
	"math"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"

	"github.com/zyedidia/generic/heap"
)

// PathResult - результат поиска пути. Steps - индексы клеток базового слоя,
// Steps[0] - старт, последний - цель.
type PathResult struct {
	Success bool
	Steps   []int
}

type pathNode struct {
	index int
	f     float64
	seq   int
}

// diagonalCost - переменная, а не константа: так все вычисления идут в float64.
var diagonalCost = math.Sqrt2

// octile - допустимая эвристика для 8-связной сетки с ценой диагонали √2.
func octile(a, b grid.Coord) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return dx + dy + (diagonalCost-2)*math.Min(dx, dy)
}

// stepCost: 1 по прямой, √2 по диагонали.
func stepCost(d grid.Coord) float64 {
	if d.X != 0 && d.Y != 0 {
		return diagonalCost
	}
	return 1
}

// AStar ищет кратчайший путь между клетками области по непрозрачным клеткам.
// Соседи перебираются в порядке N, NE, E, SE, S, SW, W, NW; при равенстве f
// раньше раскрывается узел, добавленный раньше, так что ответ детерминирован.
// Срезать углы между двумя стенами можно.
func AStar(area *domain.Area, from, to int) PathResult {
	size := area.Width() * area.Height()
	if from < 0 || from >= size || to < 0 || to >= size {
		return PathResult{}
	}
	goal := area.IndexToCoord(to)
	if area.IsOpaque(goal) {
		return PathResult{}
	}
	if from == to {
		return PathResult{Success: true, Steps: []int{from}}
	}

	gScore := make([]float64, size)
	cameFrom := make([]int, size)
	closed := make([]bool, size)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		cameFrom[i] = -1
	}

	open := heap.New(func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})

	seq := 0
	gScore[from] = 0
	open.Push(pathNode{index: from, f: octile(area.IndexToCoord(from), goal), seq: seq})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed[current.index] {
			continue
		}
		if current.index == to {
			return PathResult{Success: true, Steps: reconstructPath(cameFrom, to)}
		}
		closed[current.index] = true

		pos := area.IndexToCoord(current.index)
		for _, d := range grid.Dirs8 {
			next := pos.Add(d)
			if !area.IsValid(next) || area.IsOpaque(next) {
				continue
			}
			ni := area.CoordsToIndex(next)
			if closed[ni] {
				continue
			}
			tentative := gScore[current.index] + stepCost(d)
			if tentative < gScore[ni] {
				gScore[ni] = tentative
				cameFrom[ni] = current.index
				seq++
				open.Push(pathNode{index: ni, f: tentative + octile(next, goal), seq: seq})
			}
		}
	}
	return PathResult{}
}

func reconstructPath(cameFrom []int, to int) []int {
	var steps []int
	for i := to; i >= 0; i = cameFrom[i] {
		steps = append(steps, i)
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return steps
}

// PathCost - стоимость готового пути (для сравнения и отладки).
func PathCost(area *domain.Area, steps []int) float64 {
	total := 0.0
	for i := 1; i < len(steps); i++ {
		total += stepCost(area.IndexToCoord(steps[i]).Sub(area.IndexToCoord(steps[i-1])))
	}
	return total
}
