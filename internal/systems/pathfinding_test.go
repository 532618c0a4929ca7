package systems

import (
	"math"
	"math/rand"
	"testing"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dijkstraCost - эталонная стоимость кратчайшего пути (или +Inf).
func dijkstraCost(area *domain.Area, from, to int) float64 {
	size := area.Width() * area.Height()
	dist := make([]float64, size)
	done := make([]bool, size)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[from] = 0

	for {
		best := -1
		for i := range dist {
			if !done[i] && !math.IsInf(dist[i], 1) && (best < 0 || dist[i] < dist[best]) {
				best = i
			}
		}
		if best < 0 {
			return math.Inf(1)
		}
		if best == to {
			return dist[to]
		}
		done[best] = true

		pos := area.IndexToCoord(best)
		for _, d := range grid.Dirs8 {
			next := pos.Add(d)
			if !area.IsValid(next) || area.IsOpaque(next) {
				continue
			}
			ni := area.CoordsToIndex(next)
			if nd := dist[best] + stepCost(d); nd < dist[ni] {
				dist[ni] = nd
			}
		}
	}
}

func TestAStar_ScenarioMap(t *testing.T) {
	area := newArea(t, scenarioMap)

	res := AStar(area, 0, 15)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Steps[0])
	assert.Equal(t, 15, res.Steps[len(res.Steps)-1])
	assert.Len(t, res.Steps, 5)
	assert.Equal(t, []int{0, 5, 9, 14, 15}, res.Steps)
}

func TestAStar_Corridor(t *testing.T) {
	area := newArea(t, ".\n.\n.\n.\n.")

	res := AStar(area, 0, 4)
	require.True(t, res.Success)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Steps)
	assert.InDelta(t, 4.0, PathCost(area, res.Steps), 1e-9)
}

func TestAStar_PrefersStraightOverZigzag(t *testing.T) {
	area := newArea(t, ".....\n.....\n.....")

	res := AStar(area, area.CoordsToIndex(grid.Coord{X: 0, Y: 1}), area.CoordsToIndex(grid.Coord{X: 4, Y: 1}))
	require.True(t, res.Success)
	assert.Len(t, res.Steps, 5)
	assert.InDelta(t, 4.0, PathCost(area, res.Steps), 1e-9)
}

func TestAStar_Failures(t *testing.T) {
	area := newArea(t, `
..#..
..#..
..#..
`)
	goal := area.CoordsToIndex(grid.Coord{X: 4, Y: 1})

	t.Run("unreachable", func(t *testing.T) {
		res := AStar(area, 0, goal)
		assert.False(t, res.Success)
		assert.Empty(t, res.Steps)
	})
	t.Run("goal is a wall", func(t *testing.T) {
		assert.False(t, AStar(area, 0, 2).Success)
	})
	t.Run("index out of range", func(t *testing.T) {
		assert.False(t, AStar(area, -1, 0).Success)
		assert.False(t, AStar(area, 0, 15).Success)
	})
	t.Run("start equals goal", func(t *testing.T) {
		res := AStar(area, 6, 6)
		require.True(t, res.Success)
		assert.Equal(t, []int{6}, res.Steps)
	})
}

func TestAStar_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 40; iter++ {
		area := randomArea(rng, 10, 8, 0.3)
		size := area.Width() * area.Height()
		from, to := rng.Intn(size), rng.Intn(size)

		res := AStar(area, from, to)
		want := dijkstraCost(area, from, to)
		if area.IsOpaque(area.IndexToCoord(to)) {
			want = math.Inf(1)
		}

		if math.IsInf(want, 1) {
			assert.False(t, res.Success, "iter %d: %d -> %d", iter, from, to)
			continue
		}
		require.True(t, res.Success, "iter %d: %d -> %d", iter, from, to)
		assert.Equal(t, from, res.Steps[0])
		assert.Equal(t, to, res.Steps[len(res.Steps)-1])
		assert.InDelta(t, want, PathCost(area, res.Steps), 1e-9, "iter %d", iter)

		for i := 1; i < len(res.Steps); i++ {
			prev := area.IndexToCoord(res.Steps[i-1])
			cur := area.IndexToCoord(res.Steps[i])
			assert.True(t, prev.IsAdjacent(cur), "iter %d: broken chain %v -> %v", iter, prev, cur)
			assert.False(t, area.IsOpaque(cur))
		}
	}
}

func TestAStar_Deterministic(t *testing.T) {
	area := newArea(t, "......\n......\n......\n......")
	first := AStar(area, 0, 23)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Steps, AStar(area, 0, 23).Steps)
	}
}
