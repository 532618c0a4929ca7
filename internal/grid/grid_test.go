package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexToCoord_RoundTrip(t *testing.T) {
	for w := 1; w <= 9; w++ {
		for h := 1; h <= 9; h++ {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					c := Coord{X: x, Y: y}
					idx := CoordsToIndex(w, c)
					assert.Equal(t, c, IndexToCoord(w, idx), "w=%d h=%d", w, h)
				}
			}
		}
	}
}

func TestGrid_New(t *testing.T) {
	calls := 0
	g := New(3, 2, func() int {
		calls++
		return 7
	})

	assert.Equal(t, 6, calls)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, Coord{X: 3, Y: 2}, g.Size())
	for _, v := range g.List() {
		assert.Equal(t, 7, v)
	}
}

func TestGrid_FromListPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { FromList(2, 2, []int{1, 2, 3}) })
	assert.NotPanics(t, func() { FromList(2, 2, []int{1, 2, 3, 4}) })
}

func TestGrid_GetSet(t *testing.T) {
	g := New(4, 3, func() int { return 0 })

	g.SetAt(Coord{X: 3, Y: 2}, 5)
	assert.Equal(t, 5, g.GetAt(Coord{X: 3, Y: 2}))
	assert.Equal(t, 5, g.Get(11))

	g.Set(0, 9)
	assert.Equal(t, 9, g.GetAt(Coord{}))

	t.Run("invalid coords", func(t *testing.T) {
		for _, c := range []Coord{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: -1}} {
			assert.False(t, g.IsValid(c), "%v", c)
			assert.Panics(t, func() { g.GetAt(c) })
			assert.Panics(t, func() { g.SetAt(c, 1) })

			_, ok := g.GetAtOpt(c)
			assert.False(t, ok)
			assert.False(t, g.SetAtOpt(c, 1))
		}
	})

	t.Run("x past width does not wrap", func(t *testing.T) {
		// (4,0) дал бы индекс 4, то есть (0,1), если проверять только длину
		assert.False(t, g.IsValid(Coord{X: 4, Y: 0}))
	})
}

func TestGrid_Neighbors(t *testing.T) {
	g := New(3, 3, func() int { return 0 })

	assert.Equal(t, []Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}, g.Neighbors4(Coord{}))
	assert.Equal(t, []Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, g.Neighbors8(Coord{}))

	center := g.Neighbors8(Coord{X: 1, Y: 1})
	require.Len(t, center, 8)
	assert.Equal(t, Coord{X: 1, Y: 0}, center[0], "first neighbour must be north")
	assert.Equal(t, Coord{X: 0, Y: 0}, center[7], "last neighbour must be north-west")

	assert.Equal(t,
		[]Coord{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}},
		g.Neighbors4(Coord{X: 1, Y: 1}))
}

func TestGrid_Raytrace(t *testing.T) {
	g := New(5, 4, func() int { return 0 })

	assert.Equal(t, []Coord{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}, g.Raytrace(Coord{X: 1, Y: 0}, 1, 0))
	assert.Nil(t, g.Raytrace(Coord{X: 1, Y: 1}, 0, 0))
	assert.Empty(t, g.Raytrace(Coord{X: 4, Y: 3}, 1, 1))

	// Свойства: нет origin, шаги непрерывны, последний шаг упирается в границу
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			origin := Coord{X: x, Y: y}
			for _, d := range Dirs8 {
				ray := g.Raytrace(origin, d.X, d.Y)
				prev := origin
				for _, c := range ray {
					assert.NotEqual(t, origin, c)
					assert.Equal(t, prev.Add(d), c)
					assert.True(t, g.IsValid(c))
					prev = c
				}
				assert.False(t, g.IsValid(prev.Add(d)), "ray from %v dir %v stopped early", origin, d)
			}
		}
	}
}

func TestCoord(t *testing.T) {
	a := Coord{X: 1, Y: 2}
	b := Coord{X: 4, Y: 6}

	assert.Equal(t, Coord{X: 5, Y: 8}, a.Add(b))
	assert.Equal(t, Coord{X: 3, Y: 4}, b.Sub(a))
	assert.Equal(t, Coord{X: 0, Y: 3}, a.Translate(-1, 1))
	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.Equal(t, 4, a.ChebyshevDistance(b))
	assert.Equal(t, a, CoordFromArray(a.ToArray()))
	assert.True(t, a.IsAdjacent(Coord{X: 2, Y: 3}))
	assert.False(t, a.IsAdjacent(a))
}

func TestDir4_Order(t *testing.T) {
	var names []string
	for _, d := range Dirs4 {
		names = append(names, d.String())
	}
	assert.Equal(t, []string{"N", "E", "S", "W"}, names)
	assert.Equal(t, Coord{X: 0, Y: -1}, North.Delta())
	assert.Equal(t, Coord{X: -1, Y: 0}, West.Delta())
}

func TestRect(t *testing.T) {
	r := NewRect(Coord{X: 2, Y: 1}, 3, 2)

	assert.True(t, r.Contains(Coord{X: 2, Y: 1}))
	assert.True(t, r.Contains(Coord{X: 4, Y: 2}))
	assert.False(t, r.Contains(Coord{X: 5, Y: 2}), "right edge is exclusive")

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping corner", NewRect(Coord{X: 4, Y: 2}, 2, 2), true},
		{"touching edge", NewRect(Coord{X: 5, Y: 1}, 2, 2), false},
		{"inside", NewRect(Coord{X: 3, Y: 1}, 1, 1), true},
		{"below", NewRect(Coord{X: 2, Y: 3}, 3, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(r))
		})
	}
}
