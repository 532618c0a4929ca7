package engine

import (
	"fmt"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
	"space-rogue/pkg/mapparse"

	"github.com/zyedidia/generic/mapset"
)

// Символы, которых нет в таблице кораблей
const (
	GroundGlyph = ','
	FogGlyph    = ' '
)

// EntityView - сущность так, как ее видит наблюдатель
type EntityView struct {
	ID    domain.EntityID `json:"id"`
	Name  string          `json:"name"`
	Glyph rune            `json:"glyph"`
	Color string          `json:"color"`
	Pos   grid.Coord      `json:"pos"`
}

// View - персональный снимок сектора для одной сущности.
type View struct {
	Tick     int             `json:"tick"`
	Observer domain.EntityID `json:"observer"`
	AreaID   domain.AreaID   `json:"areaId"`
	Map      []string        `json:"map"`
	Entities []EntityView    `json:"entities"`
	Logs     []LogEntry      `json:"logs"`
}

// RenderTable дополняет таблицу символами для грунта и тумана.
// Исходная таблица не меняется.
func RenderTable(table mapparse.Table) mapparse.Table {
	t := mapparse.NewTable(table.Entries...)
	if _, ok := t.Encode(mapparse.AstCell{Tile: domain.TileGround}); !ok {
		t.Add(mapparse.Entry{Char: GroundGlyph, Tile: domain.TileGround})
	}
	if _, ok := t.Encode(mapparse.AstCell{Tile: domain.TileOutOfMap}); !ok {
		t.Add(mapparse.Entry{Char: FogGlyph, Tile: domain.TileOutOfMap})
	}
	return t
}

// BuildViewFor собирает снимок: известные клетки из памяти (или только видимые,
// если памяти нет), объекты на известных клетках и видимые существа поверх.
// Память читается по области из Position наблюдателя, как ее пишет VisibilitySystem.
func (i *Instance) BuildViewFor(observerID domain.EntityID, table mapparse.Table) (*View, error) {
	w := i.World
	pos, ok := w.Positions.Get(observerID)
	if !ok {
		return nil, fmt.Errorf("view for %v: no position", observerID)
	}
	areaID, ok := domain.ResolveAreaID(w, pos.AreaID)
	if !ok {
		return nil, fmt.Errorf("view for %v: %w", observerID, domain.ErrAreaNotFound)
	}
	area, _ := domain.ResolveArea(w, areaID)

	visible := mapset.New[grid.Coord]()
	if vis, ok := w.Visibility.Get(observerID); ok {
		for _, c := range vis.VisibleTiles {
			visible.Put(c)
		}
	}
	isVisible := visible.Has
	memory, hasMemory := w.Memories.Get(observerID)
	isKnown := func(c grid.Coord) bool {
		if hasMemory && memory.Knows(pos.AreaID, c) {
			return true
		}
		return isVisible(c)
	}

	// 1. Рельеф
	cells := grid.New(area.Width(), area.Height(), func() mapparse.AstCell {
		return mapparse.AstCell{Tile: domain.TileOutOfMap}
	})
	cells.ForEach(func(c grid.Coord, _ mapparse.AstCell) {
		if isKnown(c) {
			cells.SetAt(c, mapparse.AstCell{Tile: area.Tile(c)})
		}
	})

	// 2. Объекты на известных клетках
	view := &View{Tick: i.CurrentTick, Observer: observerID, AreaID: areaID}
	for _, id := range w.Query(w.Objects, w.Positions) {
		op, _ := w.Positions.Get(id)
		if !sameArea(w, op.AreaID, areaID) || !area.IsValid(op.Point) || !isKnown(op.Point) {
			continue
		}
		obj, _ := w.Objects.Get(id)
		cell := cells.GetAt(op.Point)
		cell.Obj = obj.Kind
		cells.SetAt(op.Point, cell)
	}

	render := RenderTable(table)
	lines, err := mapparse.SerializeLines(cells, func(cell mapparse.AstCell) (rune, bool) {
		if ch, ok := render.Encode(cell); ok {
			return ch, true
		}
		// Объект без своего символа рисуется как клетка под ним
		return render.Encode(mapparse.AstCell{Tile: cell.Tile})
	})
	if err != nil {
		return nil, fmt.Errorf("view for %v: %w", observerID, err)
	}

	// 3. Существа: себя видим всегда, остальных - если в поле зрения
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
	}
	for _, id := range w.Query(w.Renders, w.Positions) {
		if w.Objects.Has(id) {
			continue
		}
		ep, _ := w.Positions.Get(id)
		if !sameArea(w, ep.AreaID, areaID) || !area.IsValid(ep.Point) {
			continue
		}
		if id != observerID && !isVisible(ep.Point) {
			continue
		}
		r, _ := w.Renders.Get(id)
		rows[ep.Point.Y][ep.Point.X] = r.Glyph
		view.Entities = append(view.Entities, EntityView{
			ID:    id,
			Name:  w.Name(id),
			Glyph: r.Glyph,
			Color: r.Color,
			Pos:   ep.Point,
		})
	}

	view.Map = make([]string, len(rows))
	for y, row := range rows {
		view.Map[y] = string(row)
	}
	view.Logs = make([]LogEntry, len(i.Logs))
	copy(view.Logs, i.Logs)
	return view, nil
}

func sameArea(w *domain.World, id, resolved domain.AreaID) bool {
	got, ok := domain.ResolveAreaID(w, id)
	return ok && got == resolved
}
