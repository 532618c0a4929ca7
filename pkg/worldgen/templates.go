package worldgen

import (
	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
)

// MobTemplate определяет шаблон для создания существа
type MobTemplate struct {
	Name        string
	Render      domain.Render
	Personality string
	VisionRange int
}

// Spawn создает существо из шаблона на заданной позиции
func (t MobTemplate) Spawn(w *domain.World, pos domain.Position) domain.EntityID {
	id := w.Spawn()
	w.Labels.Insert(id, domain.Label{Name: t.Name})
	w.Renders.Insert(id, t.Render)
	w.Positions.Insert(id, pos)

	radius := t.VisionRange
	if radius <= 0 {
		radius = domain.DefaultVisionRange
	}
	w.Visibility.Insert(id, domain.Visibility{Range: radius})
	w.Ais.Insert(id, domain.Ai{Personality: t.Personality})
	return id
}

// --- ВРАГИ ---

var Drone = MobTemplate{
	Name:        "Security Drone",
	Render:      domain.Render{Glyph: 'd', Color: "#F59E0B"},
	Personality: domain.PersonalityDrone,
	VisionRange: 5,
}

var Hunter = MobTemplate{
	Name:        "Void Hunter",
	Render:      domain.Render{Glyph: 'h', Color: "#DC2626"},
	Personality: domain.PersonalityHunter,
	VisionRange: 10,
}

// MobTemplates - карта всех доступных существ
var MobTemplates = map[string]MobTemplate{
	"drone":  Drone,
	"hunter": Hunter,
}

// PlayerGlyph - символ игрока на карте
const PlayerGlyph = 'P'

// CreatePlayer создает пилота: зрение и память о клетках, без ИИ.
func CreatePlayer(w *domain.World, name string, pos domain.Position, visionRange int) domain.EntityID {
	if visionRange <= 0 {
		visionRange = domain.DefaultVisionRange
	}
	id := w.Spawn()
	w.Labels.Insert(id, domain.Label{Name: name})
	w.Renders.Insert(id, domain.Render{Glyph: PlayerGlyph, Color: "#22D3EE"})
	w.Positions.Insert(id, pos)
	w.Visibility.Insert(id, domain.Visibility{Range: visionRange})
	w.Memories.Insert(id, domain.NewVisibilityMemory())
	return id
}

// objectRender - как объекты корабля выглядят на карте
var objectRender = map[domain.ObjectType]domain.Render{
	domain.ObjectDoor:    {Glyph: '+', Color: "#A3A3A3"},
	domain.ObjectEngine:  {Glyph: 'E', Color: "#60A5FA"},
	domain.ObjectCockpit: {Glyph: '@', Color: "#FCD34D"},
}

// SpawnObject создает сущность объекта корабля
func SpawnObject(w *domain.World, areaID domain.AreaID, at grid.Coord, kind domain.ObjectKind) domain.EntityID {
	id := w.Spawn()
	w.Labels.Insert(id, domain.Label{Name: kind.String()})
	w.Positions.Insert(id, domain.Position{AreaID: areaID, Point: at})
	w.Objects.Insert(id, domain.Object{Kind: kind})
	if r, ok := objectRender[kind.Type]; ok {
		w.Renders.Insert(id, r)
	}
	return id
}
