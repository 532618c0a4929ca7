package domain

import (
	"space-rogue/internal/grid"

	"github.com/zyedidia/generic/mapset"
)

// --- КОМПОНЕНТЫ ---

// Label - имя для логов и осмотра
type Label struct {
	Name string `json:"name"`
}

// Render - как сущность выглядит на карте (символ поверх тайла)
type Render struct {
	Glyph rune   `json:"glyph"`
	Color string `json:"color,omitempty"`
}

// Position - где стоит сущность. Меняется только при разрешении движения.
type Position struct {
	AreaID AreaID     `json:"areaId"`
	Point  grid.Coord `json:"point"`
}

// Visibility - что сущность видит в текущем ходу (пересчитывается каждый ход)
type Visibility struct {
	VisibleTiles []grid.Coord `json:"visibleTiles"`
	Range        int          `json:"range"`
}

// VisibilityMemory - туман войны: всё, что сущность когда-либо видела, по областям
type VisibilityMemory struct {
	KnownTiles map[AreaID]*mapset.Set[grid.Coord] `json:"-"`
}

// Ai - маркер "управляется компьютером"
type Ai struct {
	Personality string `json:"personality,omitempty"`
}

// HasATurn - временный маркер: живет от выдачи хода до его обработки
type HasATurn struct{}

// --- НАМЕРЕНИЯ (производит AI, потребляют системы действий) ---

// WantMove - хочу сдвинуться на Dir (одна клетка, в том числе по диагонали)
type WantMove struct {
	Dir grid.Coord `json:"dir"`
}

// WantAttack - хочу атаковать Target
type WantAttack struct {
	Target EntityID `json:"target"`
}

// Interact - хочу использовать объект Target (дверь, кокпит)
type Interact struct {
	Target EntityID `json:"target"`
}

// Object - интерактивный объект карты (дверь, двигатель, кокпит)
type Object struct {
	Kind ObjectKind `json:"kind"`
	Open bool       `json:"open,omitempty"`
}

// NewVisibilityMemory создает пустую память
func NewVisibilityMemory() VisibilityMemory {
	return VisibilityMemory{KnownTiles: make(map[AreaID]*mapset.Set[grid.Coord])}
}

// Remember добавляет клетки в память области areaID
func (m *VisibilityMemory) Remember(areaID AreaID, tiles []grid.Coord) {
	if m.KnownTiles == nil {
		m.KnownTiles = make(map[AreaID]*mapset.Set[grid.Coord])
	}
	known, ok := m.KnownTiles[areaID]
	if !ok {
		set := mapset.New[grid.Coord]()
		known = &set
		m.KnownTiles[areaID] = known
	}
	for _, c := range tiles {
		known.Put(c)
	}
}

// Knows проверяет, видела ли сущность клетку
func (m *VisibilityMemory) Knows(areaID AreaID, c grid.Coord) bool {
	known, ok := m.KnownTiles[areaID]
	return ok && known.Has(c)
}

// KnownCount возвращает количество исследованных клеток области
func (m *VisibilityMemory) KnownCount(areaID AreaID) int {
	known, ok := m.KnownTiles[areaID]
	if !ok {
		return 0
	}
	return known.Size()
}

// IsVisible проверяет, видна ли клетка в этом ходу
func (v *Visibility) IsVisible(c grid.Coord) bool {
	for _, t := range v.VisibleTiles {
		if t == c {
			return true
		}
	}
	return false
}
