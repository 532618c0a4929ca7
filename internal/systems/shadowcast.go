package systems

import "space-rogue/internal/grid"

// Симметричный shadowcasting: клетка пола видна из A тогда и только тогда,
// когда A видна из нее. Стены подсвечиваются всегда, когда на них падает свет.

// slope - рациональный наклон num/den, den > 0. Считаем в целых числах,
// чтобы результат не зависел от округлений float.
type slope struct {
	num, den int
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// roundTiesUp(depth*s) = floor(depth*s + 1/2)
func roundTiesUp(depth int, s slope) int {
	return floorDiv(2*depth*s.num+s.den, 2*s.den)
}

// roundTiesDown(depth*s) = ceil(depth*s - 1/2)
func roundTiesDown(depth int, s slope) int {
	return -floorDiv(-(2*depth*s.num - s.den), 2*s.den)
}

type quadrant struct {
	origin grid.Coord
	dir    grid.Dir4
}

// transform переводит (depth, col) квадранта в координаты карты.
func (q quadrant) transform(depth, col int) grid.Coord {
	switch q.dir {
	case grid.North:
		return grid.Coord{X: q.origin.X + col, Y: q.origin.Y - depth}
	case grid.South:
		return grid.Coord{X: q.origin.X + col, Y: q.origin.Y + depth}
	case grid.East:
		return grid.Coord{X: q.origin.X + depth, Y: q.origin.Y + col}
	default:
		return grid.Coord{X: q.origin.X - depth, Y: q.origin.Y + col}
	}
}

type scanRow struct {
	depth      int
	start, end slope
}

func (r scanRow) minCol() int { return roundTiesUp(r.depth, r.start) }
func (r scanRow) maxCol() int { return roundTiesDown(r.depth, r.end) }

func (r scanRow) next() scanRow {
	return scanRow{depth: r.depth + 1, start: r.start, end: r.end}
}

// isSymmetric: центр клетки лежит внутри сектора ряда.
func (r scanRow) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// tileSlope - наклон левого края клетки (2col-1)/(2depth).
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

// Shadowcast обходит все клетки, видимые из origin в пределах радиуса
// (евклидово расстояние, граница включительно). reveal может быть вызван
// для одной клетки несколько раз. isOpaque обязан возвращать true за
// пределами карты, иначе обход не закончится до radius.
func Shadowcast(origin grid.Coord, radius int, isOpaque func(grid.Coord) bool, reveal func(grid.Coord)) {
	reveal(origin)
	if radius <= 0 {
		return
	}
	r2 := radius * radius

	for _, dir := range grid.Dirs4 {
		q := quadrant{origin: origin, dir: dir}
		rows := []scanRow{{depth: 1, start: slope{-1, 1}, end: slope{1, 1}}}

		for len(rows) > 0 {
			row := rows[len(rows)-1]
			rows = rows[:len(rows)-1]
			if row.depth > radius {
				continue
			}

			// 0 - клетки еще не было, 1 - стена, 2 - пол
			prev := 0
			for col := row.minCol(); col <= row.maxCol(); col++ {
				c := q.transform(row.depth, col)
				opaque := isOpaque(c)

				if (opaque || row.isSymmetric(col)) && row.depth*row.depth+col*col <= r2 {
					reveal(c)
				}
				if prev == 1 && !opaque {
					row.start = tileSlope(row.depth, col)
				}
				if prev == 2 && opaque {
					next := row.next()
					next.end = tileSlope(row.depth, col)
					rows = append(rows, next)
				}
				if opaque {
					prev = 1
				} else {
					prev = 2
				}
			}
			if prev == 2 {
				rows = append(rows, row.next())
			}
		}
	}
}
