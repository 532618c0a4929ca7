package systems

import (
	"math/rand"
	"testing"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contains(tiles []grid.Coord, c grid.Coord) bool {
	for _, t := range tiles {
		if t == c {
			return true
		}
	}
	return false
}

func TestComputeFOV_Origin(t *testing.T) {
	area := newArea(t, "...\n...\n...")

	t.Run("radius zero sees only itself", func(t *testing.T) {
		assert.Equal(t, []grid.Coord{{X: 1, Y: 1}}, ComputeFOV(area, grid.Coord{X: 1, Y: 1}, 0))
	})

	t.Run("open room is fully visible and deduplicated", func(t *testing.T) {
		tiles := ComputeFOV(area, grid.Coord{X: 1, Y: 1}, 5)
		assert.Len(t, tiles, 9)
		assert.Contains(t, tiles, grid.Coord{X: 1, Y: 1})

		seen := map[grid.Coord]int{}
		for _, c := range tiles {
			seen[c]++
		}
		for c, n := range seen {
			assert.Equal(t, 1, n, "tile %v reported twice", c)
		}
	})
}

func TestComputeFOV_RangeIsEuclideanInclusive(t *testing.T) {
	area := newArea(t, `
.........
.........
.........
.........
.........
.........
.........
`)
	origin := grid.Coord{X: 4, Y: 3}
	tiles := ComputeFOV(area, origin, 3)

	assert.True(t, contains(tiles, grid.Coord{X: 7, Y: 3}), "distance exactly 3")
	assert.True(t, contains(tiles, grid.Coord{X: 6, Y: 5}), "distance sqrt(8)")
	assert.False(t, contains(tiles, grid.Coord{X: 7, Y: 4}), "distance sqrt(10)")
	for _, c := range tiles {
		assert.LessOrEqual(t, c.DistanceSquared(origin), 9)
	}
}

func TestComputeFOV_OpaqueBlocksBehind(t *testing.T) {
	t.Run("corridor", func(t *testing.T) {
		area := newArea(t, "..#..")
		tiles := ComputeFOV(area, grid.Coord{X: 0, Y: 0}, 10)

		assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, tiles)
	})

	t.Run("diagonal", func(t *testing.T) {
		area := newArea(t, `
.....
.....
..#..
.....
.....
`)
		tiles := ComputeFOV(area, grid.Coord{X: 0, Y: 0}, 10)

		assert.True(t, contains(tiles, grid.Coord{X: 2, Y: 2}), "wall itself is visible")
		assert.False(t, contains(tiles, grid.Coord{X: 3, Y: 3}))
		assert.False(t, contains(tiles, grid.Coord{X: 4, Y: 4}))
		assert.True(t, contains(tiles, grid.Coord{X: 4, Y: 0}))
		assert.True(t, contains(tiles, grid.Coord{X: 0, Y: 4}))
	})

	t.Run("vertical", func(t *testing.T) {
		area := newArea(t, ".\n.\n#\n.")
		tiles := ComputeFOV(area, grid.Coord{X: 0, Y: 3}, 10)

		assert.Equal(t, []grid.Coord{{X: 0, Y: 2}, {X: 0, Y: 3}}, tiles)
	})
}

func TestComputeFOV_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 5; iter++ {
		area := randomArea(rng, 12, 10, 0.25)
		radius := 4 + iter

		var floors []grid.Coord
		fov := map[grid.Coord][]grid.Coord{}
		for i := 0; i < area.Width()*area.Height(); i++ {
			c := area.IndexToCoord(i)
			if area.IsOpaque(c) {
				continue
			}
			floors = append(floors, c)
			fov[c] = ComputeFOV(area, c, radius)
		}

		for _, p := range floors {
			for _, q := range floors {
				pq := contains(fov[p], q)
				qp := contains(fov[q], p)
				require.Equal(t, pq, qp, "iter %d radius %d: %v sees %v = %v, reverse = %v", iter, radius, p, q, pq, qp)
			}
		}
	}
}

func TestComputeFOV_LayeredArea(t *testing.T) {
	// База - открытый космос, поверх пристыкован корабль со стеной посередине.
	area := newArea(t, `
_______
_______
_______
`)
	ship := domain.NewArea(2, cellsFrom(t, ".#."))
	area.Merge(ship, grid.Coord{X: 2, Y: 1})

	tiles := ComputeFOV(area, grid.Coord{X: 2, Y: 1}, 10)
	assert.True(t, contains(tiles, grid.Coord{X: 3, Y: 1}), "ship wall is visible")
	assert.False(t, contains(tiles, grid.Coord{X: 6, Y: 1}), "space behind the wall is hidden")
	assert.True(t, contains(tiles, grid.Coord{X: 0, Y: 1}), "space is transparent")
}

func TestVisibilitySystem(t *testing.T) {
	w := domain.NewWorld()
	areaID := w.SpawnArea("deck", cellsFrom(t, `
.....
.....
..#..
`))

	watcher := spawnActor(w, areaID, grid.Coord{X: 0, Y: 2}, 8, false)
	w.Memories.Insert(watcher, domain.NewVisibilityMemory())
	blind := spawnActor(w, areaID, grid.Coord{X: 4, Y: 0}, 0, false)

	VisibilitySystem(w, nil)

	vis, _ := w.Visibility.Get(watcher)
	assert.True(t, vis.IsVisible(grid.Coord{X: 2, Y: 2}))
	assert.False(t, vis.IsVisible(grid.Coord{X: 4, Y: 2}))

	mem, _ := w.Memories.Get(watcher)
	assert.Equal(t, len(vis.VisibleTiles), mem.KnownCount(areaID))

	blindVis, _ := w.Visibility.Get(blind)
	assert.Equal(t, []grid.Coord{{X: 4, Y: 0}}, blindVis.VisibleTiles)

	// Память копится: после шага вперед старые клетки остаются известными.
	pos, _ := w.Positions.Get(watcher)
	pos.Point = grid.Coord{X: 4, Y: 1}
	VisibilitySystem(w, nil)

	assert.True(t, mem.Knows(areaID, grid.Coord{X: 0, Y: 2}))
	assert.True(t, mem.Knows(areaID, grid.Coord{X: 4, Y: 2}))
	assert.GreaterOrEqual(t, mem.KnownCount(areaID), len(vis.VisibleTiles))
}

func TestVisibilitySystem_DockedShip(t *testing.T) {
	w := domain.NewWorld()
	planet := w.SpawnArea("planet", cellsFrom(t, "......\n......\n......"))
	ship := w.SpawnArea("ship", cellsFrom(t, ".."))

	crew := spawnActor(w, ship, grid.Coord{X: 0, Y: 0}, 3, false)
	w.Memories.Insert(crew, domain.NewVisibilityMemory())

	require.NoError(t, w.DockArea(planet, ship, grid.Coord{X: 2, Y: 1}))
	VisibilitySystem(w, nil)

	mem, _ := w.Memories.Get(crew)
	assert.Positive(t, mem.KnownCount(planet), "docking re-homes the crew, so memory follows the host")
	assert.Zero(t, mem.KnownCount(ship))
	assert.True(t, mem.Knows(planet, grid.Coord{X: 2, Y: 1}))
}

func TestVisibilitySystem_MissingArea(t *testing.T) {
	w := domain.NewWorld()
	lost := spawnActor(w, domain.AreaID(999), grid.Coord{}, 5, false)
	vis, _ := w.Visibility.Get(lost)
	vis.VisibleTiles = []grid.Coord{{X: 1, Y: 1}}

	assert.NotPanics(t, func() { VisibilitySystem(w, nil) })
	assert.Empty(t, vis.VisibleTiles)
}

func TestVisibilitySystem_MemoryKeyedByPositionArea(t *testing.T) {
	w := domain.NewWorld()
	hull := w.SpawnArea("hull", cellsFrom(t, "...."))
	deck := w.SpawnArea("deck", cellsFrom(t, ".."))
	w.AreaRefs.Insert(deck, domain.NewAreaRef(hull))

	crew := spawnActor(w, deck, grid.Coord{X: 1, Y: 0}, 3, false)
	w.Memories.Insert(crew, domain.NewVisibilityMemory())
	VisibilitySystem(w, nil)

	vis, _ := w.Visibility.Get(crew)
	assert.Len(t, vis.VisibleTiles, 4, "sight uses the resolved hull")

	mem, _ := w.Memories.Get(crew)
	assert.Equal(t, 4, mem.KnownCount(deck))
	assert.Zero(t, mem.KnownCount(hull))
}
