package domain

import (
	"fmt"

	"space-rogue/internal/grid"
)

// Area - многослойная карта. Layers[i] - сущность-владелец слоя i
// (поверхность планеты, корабль, станция). Длины всегда совпадают.
type Area struct {
	Grid   *grid.NGrid[Cell]
	Layers []EntityID
}

// NewArea создает область из одного слоя в начале координат.
func NewArea(owner EntityID, g *grid.Grid[Cell]) *Area {
	return &Area{
		Grid:   grid.FromGrid(g),
		Layers: []EntityID{owner},
	}
}

func (a *Area) Width() int      { return a.Grid.Width() }
func (a *Area) Height() int     { return a.Grid.Height() }
func (a *Area) Rect() grid.Rect { return a.Grid.Rect() }
func (a *Area) LayerCount() int { return len(a.Layers) }
func (a *Area) IsValid(c grid.Coord) bool {
	return a.Grid.IsValid(c)
}

func (a *Area) CoordsToIndex(c grid.Coord) int {
	return a.Grid.CoordsToIndex(c)
}

func (a *Area) IndexToCoord(index int) grid.Coord {
	return a.Grid.IndexToCoord(index)
}

// GetAt возвращает видимую клетку с учетом прозрачных слоев.
func (a *Area) GetAt(c grid.Coord) (Cell, bool) {
	return a.Grid.GetAt(c)
}

// Tile возвращает тип клетки; вне всех слоев - TileOutOfMap.
func (a *Area) Tile(c grid.Coord) TileType {
	cell, ok := a.Grid.GetAt(c)
	if !ok {
		return TileOutOfMap
	}
	return cell.Tile
}

// IsOpaque - блокирует ли клетка взгляд и проход. За пределами слоев - да.
func (a *Area) IsOpaque(c grid.Coord) bool {
	return a.Tile(c).IsOpaque()
}

// LayerEntityAt возвращает владельца самого верхнего непустого слоя в c.
func (a *Area) LayerEntityAt(c grid.Coord) (EntityID, bool) {
	i, ok := a.Grid.NonEmptyLayerAt(c)
	if !ok {
		return NilEntityID, false
	}
	return a.Layers[i], true
}

// Merge накладывает все слои other поверх текущих со сдвигом offset.
func (a *Area) Merge(other *Area, offset grid.Coord) {
	a.Grid.Merge(other.Grid, offset)
	a.Layers = append(a.Layers, other.Layers...)
	a.checkInvariant()
}

// RemoveLayer вынимает слой владельца owner в новую область (слой кладется
// в начало координат) и возвращает его прежнее смещение.
func (a *Area) RemoveLayer(owner EntityID) (*Area, grid.Coord, bool) {
	index := -1
	for i, id := range a.Layers {
		if id == owner {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, grid.Coord{}, false
	}

	extracted := a.Grid.Remove(index)
	a.Layers = append(a.Layers[:index], a.Layers[index+1:]...)
	a.checkInvariant()

	layer := extracted.Base()
	area := &Area{
		Grid:   grid.FromGrid(layer.Grid),
		Layers: []EntityID{owner},
	}
	return area, layer.Pos, true
}

func (a *Area) checkInvariant() {
	if len(a.Layers) != a.Grid.Len() {
		panic(fmt.Sprintf("domain: area has %d owners for %d layers", len(a.Layers), a.Grid.Len()))
	}
}
