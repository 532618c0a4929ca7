package domain

import "strings"

// TileType - тип поверхности клетки
type TileType uint8

const (
	TileGround TileType = iota
	TileFloor
	TileWall
	TileSpace
	TileOutOfMap
)

// Маппинг для конфигов и таблиц символов
var tileStringToType = map[string]TileType{
	"GROUND":     TileGround,
	"FLOOR":      TileFloor,
	"WALL":       TileWall,
	"SPACE":      TileSpace,
	"OUT_OF_MAP": TileOutOfMap,
}

// Маппинг для логов
var tileTypeToString = map[TileType]string{
	TileGround:   "GROUND",
	TileFloor:    "FLOOR",
	TileWall:     "WALL",
	TileSpace:    "SPACE",
	TileOutOfMap: "OUT_OF_MAP",
}

// ParseTileType конвертирует имя тайла (без учета регистра)
func ParseTileType(s string) (TileType, bool) {
	val, ok := tileStringToType[strings.ToUpper(s)]
	return val, ok
}

func (t TileType) String() string {
	if val, ok := tileTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsOpaque - блокирует взгляд и движение
func (t TileType) IsOpaque() bool {
	return t == TileWall || t == TileOutOfMap
}

// IsNothing - "пустота": слой с такой клеткой просвечивает насквозь
func (t TileType) IsNothing() bool {
	return t == TileSpace || t == TileOutOfMap
}

// Cell - одна клетка области
type Cell struct {
	Tile TileType `json:"tile"`
}

func NewCell(tile TileType) Cell {
	return Cell{Tile: tile}
}

// IsEmpty реализует grid.GridCell.
func (c Cell) IsEmpty() bool {
	return c.Tile.IsNothing()
}

func (c Cell) IsOpaque() bool {
	return c.Tile.IsOpaque()
}
