package worldgen

import (
	"fmt"
	"math/rand"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
	"space-rogue/pkg/logger"
	"space-rogue/pkg/mapparse"

	"github.com/sirupsen/logrus"
)

// Размер сектора по умолчанию
const (
	SectorWidth  = 48
	SectorHeight = 24
)

// dockAttempts - сколько случайных мест пробуем для корабля
const dockAttempts = 32

// Sector - собранный мир: поверхность, пристыкованные корабли и существа.
type Sector struct {
	World     *domain.World
	SurfaceID domain.AreaID
	Ships     []domain.AreaID
	Objects   []domain.EntityID
	Mobs      []domain.EntityID
	PlayerID  domain.EntityID
}

// SectorBuilder предоставляет fluent API для создания сектора.
// Первая ошибка запоминается, остальные шаги после нее ничего не делают.
type SectorBuilder struct {
	name   string
	width  int
	height int
	seed   int64
	rng    *rand.Rand
	table  mapparse.Table

	sector    Sector
	shipRects []grid.Rect // занятые кораблями прямоугольники поверхности
	occupied  map[grid.Coord]bool
	err       error
}

// NewSector создает builder для сектора с заданным сидом
func NewSector(name string, seed int64) *SectorBuilder {
	return &SectorBuilder{
		name:     name,
		width:    SectorWidth,
		height:   SectorHeight,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		table:    mapparse.DefaultTable(),
		occupied: make(map[grid.Coord]bool),
	}
}

// WithSize устанавливает размер поверхности
func (b *SectorBuilder) WithSize(width, height int) *SectorBuilder {
	b.width = width
	b.height = height
	return b
}

// WithTable задает таблицу символов для чертежей
func (b *SectorBuilder) WithTable(table mapparse.Table) *SectorBuilder {
	b.table = table
	return b
}

// WithSurface генерирует поверхность планеты (вызывается неявно при первой нужде)
func (b *SectorBuilder) WithSurface() *SectorBuilder {
	if b.err != nil || b.sector.World != nil {
		return b
	}
	if b.width <= 0 || b.height <= 0 {
		b.err = fmt.Errorf("sector %s: invalid size %dx%d", b.name, b.width, b.height)
		return b
	}
	b.sector.World = domain.NewWorld()
	b.sector.SurfaceID = b.sector.World.SpawnArea(b.name, GenerateSurface(b.width, b.height, b.seed))
	return b
}

func (b *SectorBuilder) surface() *domain.Area {
	area, _ := domain.ResolveArea(b.sector.World, b.sector.SurfaceID)
	return area
}

// DockShip ставит корабль по чертежу в случайное место поверхности.
func (b *SectorBuilder) DockShip(blueprintName string) *SectorBuilder {
	b.WithSurface()
	if b.err != nil {
		return b
	}
	bp, ok := Blueprints[blueprintName]
	if !ok {
		b.err = fmt.Errorf("sector %s: unknown blueprint %q", b.name, blueprintName)
		return b
	}
	ast, err := bp.Parse(b.table)
	if err != nil {
		b.err = fmt.Errorf("sector %s: %w", b.name, err)
		return b
	}
	if ast.Width() > b.width || ast.Height() > b.height {
		b.err = fmt.Errorf("sector %s: ship %s (%dx%d) does not fit", b.name, bp.Name, ast.Width(), ast.Height())
		return b
	}

	offset, ok := b.freeDockSpot(ast.Width(), ast.Height())
	if !ok {
		b.err = fmt.Errorf("sector %s: no room for ship %s", b.name, bp.Name)
		return b
	}

	w := b.sector.World
	shipID := w.SpawnArea(bp.Name, mapparse.ToCells(ast))
	for _, obj := range mapparse.Objects(ast) {
		b.sector.Objects = append(b.sector.Objects, SpawnObject(w, shipID, obj.At, obj.Kind))
	}

	if err := w.DockArea(b.sector.SurfaceID, shipID, offset); err != nil {
		b.err = fmt.Errorf("sector %s: %w", b.name, err)
		return b
	}
	b.sector.Ships = append(b.sector.Ships, shipID)
	b.shipRects = append(b.shipRects, grid.NewRect(offset, ast.Width(), ast.Height()))

	logger.For("worldgen").WithFields(logrus.Fields{
		"ship":      bp.Name,
		"offset":    offset,
		"objects":   len(mapparse.Objects(ast)),
	}).Debug("Ship docked")
	return b
}

// WithPlayer ставит пилота рядом с кокпитом первого корабля или в свободную клетку.
func (b *SectorBuilder) WithPlayer(name string, visionRange int) *SectorBuilder {
	b.WithSurface()
	if b.err != nil {
		return b
	}
	at, ok := b.cockpitSpot()
	if !ok {
		at, ok = b.randomFreeSpot()
	}
	if !ok {
		b.err = fmt.Errorf("sector %s: no room for the player", b.name)
		return b
	}
	b.occupied[at] = true
	b.sector.PlayerID = CreatePlayer(b.sector.World, name, domain.Position{AreaID: b.sector.SurfaceID, Point: at}, visionRange)
	return b
}

// SpawnMobs спавнит существ из шаблона в свободных клетках.
func (b *SectorBuilder) SpawnMobs(templateName string, count int) *SectorBuilder {
	b.WithSurface()
	if b.err != nil {
		return b
	}
	template, ok := MobTemplates[templateName]
	if !ok {
		b.err = fmt.Errorf("sector %s: unknown mob template %q", b.name, templateName)
		return b
	}
	for i := 0; i < count; i++ {
		at, ok := b.randomFreeSpot()
		if !ok {
			logger.For("worldgen").WithFields(logrus.Fields{
				"template":  templateName,
				"spawned":   i,
			}).Warn("No free cells left for mobs")
			break
		}
		b.occupied[at] = true
		id := template.Spawn(b.sector.World, domain.Position{AreaID: b.sector.SurfaceID, Point: at})
		b.sector.Mobs = append(b.sector.Mobs, id)
	}
	return b
}

// freeDockSpot ищет смещение, при котором корабль целиком на поверхности
// и не задевает уже пристыкованные.
func (b *SectorBuilder) freeDockSpot(width, height int) (grid.Coord, bool) {
	for attempt := 0; attempt < dockAttempts; attempt++ {
		offset := grid.Coord{
			X: b.rng.Intn(b.width - width + 1),
			Y: b.rng.Intn(b.height - height + 1),
		}
		rect := grid.NewRect(offset, width, height)
		free := true
		for _, taken := range b.shipRects {
			if rect.Intersects(taken) {
				free = false
				break
			}
		}
		if free {
			return offset, true
		}
	}
	return grid.Coord{}, false
}

func (b *SectorBuilder) cockpitSpot() (grid.Coord, bool) {
	w := b.sector.World
	area := b.surface()
	for _, id := range b.sector.Objects {
		obj, _ := w.Objects.Get(id)
		if obj.Kind.Type != domain.ObjectCockpit {
			continue
		}
		pos, _ := w.Positions.Get(id)
		for _, d := range grid.Dirs8 {
			c := pos.Point.Add(d)
			if IsWalkable(area, c) && !b.occupied[c] && !b.hasObject(c) {
				return c, true
			}
		}
	}
	return grid.Coord{}, false
}

func (b *SectorBuilder) hasObject(c grid.Coord) bool {
	w := b.sector.World
	for _, id := range b.sector.Objects {
		if pos, ok := w.Positions.Get(id); ok && pos.Point == c {
			return true
		}
	}
	return false
}

// randomFreeSpot: сначала случайные попытки, потом полный перебор.
func (b *SectorBuilder) randomFreeSpot() (grid.Coord, bool) {
	area := b.surface()
	free := func(c grid.Coord) bool {
		return IsWalkable(area, c) && !b.occupied[c] && !b.hasObject(c)
	}
	for attempt := 0; attempt < 50; attempt++ {
		c := grid.Coord{X: b.rng.Intn(b.width), Y: b.rng.Intn(b.height)}
		if free(c) {
			return c, true
		}
	}
	for i := 0; i < b.width*b.height; i++ {
		if c := area.IndexToCoord(i); free(c) {
			return c, true
		}
	}
	return grid.Coord{}, false
}

// Build собирает и возвращает готовый сектор
func (b *SectorBuilder) Build() (*Sector, error) {
	b.WithSurface()
	if b.err != nil {
		return nil, b.err
	}
	logger.For("worldgen").WithFields(logrus.Fields{
		"sector":    b.name,
		"seed":      b.seed,
		"ships":     len(b.sector.Ships),
		"mobs":      len(b.sector.Mobs),
	}).Info("Sector built")

	sector := b.sector
	return &sector, nil
}
