package mapparse

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"space-rogue/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed default_table.yaml
var defaultTableYAML []byte

// Entry - одна строка таблицы символов.
type Entry struct {
	Char rune
	Tile domain.TileType
	Obj  domain.ObjectKind
}

// Table сопоставляет символы карты тайлам и объектам.
// Entries хранит исходный порядок - он нужен для обратного преобразования.
type Table struct {
	Tiles   map[rune]domain.TileType
	Objects map[rune]domain.ObjectKind
	Entries []Entry
}

type rawTable struct {
	Tiles []rawEntry `yaml:"tiles"`
}

type rawEntry struct {
	Char     string `yaml:"char"`
	Tile     string `yaml:"tile"`
	Object   string `yaml:"object"`
	Vertical bool   `yaml:"vertical"`
}

// NewTable собирает таблицу из записей (порядок сохраняется).
func NewTable(entries ...Entry) Table {
	t := Table{
		Tiles:   make(map[rune]domain.TileType, len(entries)),
		Objects: make(map[rune]domain.ObjectKind),
	}
	for _, e := range entries {
		t.Add(e)
	}
	return t
}

// Add добавляет символ. Повторный символ перезаписывает прежний.
func (t *Table) Add(e Entry) {
	if t.Tiles == nil {
		t.Tiles = make(map[rune]domain.TileType)
	}
	if t.Objects == nil {
		t.Objects = make(map[rune]domain.ObjectKind)
	}
	t.Tiles[e.Char] = e.Tile
	if e.Obj.IsNone() {
		delete(t.Objects, e.Char)
	} else {
		t.Objects[e.Char] = e.Obj
	}
	for i := range t.Entries {
		if t.Entries[i].Char == e.Char {
			t.Entries[i] = e
			return
		}
	}
	t.Entries = append(t.Entries, e)
}

// Encode возвращает первый символ таблицы для клетки.
func (t Table) Encode(cell AstCell) (rune, bool) {
	for _, e := range t.Entries {
		if e.Tile == cell.Tile && e.Obj == cell.Obj {
			return e.Char, true
		}
	}
	return 0, false
}

// ParseTable читает таблицу из YAML.
func ParseTable(data []byte) (Table, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Table{}, fmt.Errorf("decode char table: %w", err)
	}

	t := NewTable()
	for i, re := range raw.Tiles {
		ch, size := utf8.DecodeRuneInString(re.Char)
		if ch == utf8.RuneError || size != len(re.Char) {
			return Table{}, fmt.Errorf("char table entry %d: char must be a single symbol, got %q", i, re.Char)
		}
		if ch == ' ' {
			return Table{}, fmt.Errorf("char table entry %d: space is stripped from maps and cannot be a tile", i)
		}
		tile, ok := domain.ParseTileType(re.Tile)
		if !ok {
			return Table{}, fmt.Errorf("char table entry %d: unknown tile %q", i, re.Tile)
		}
		entry := Entry{Char: ch, Tile: tile}
		if re.Object != "" {
			objType, ok := domain.ParseObjectType(re.Object)
			if !ok {
				return Table{}, fmt.Errorf("char table entry %d: unknown object %q", i, re.Object)
			}
			entry.Obj = domain.ObjectKind{Type: objType, Vertical: objType == domain.ObjectDoor && re.Vertical}
		}
		t.Add(entry)
	}
	return t, nil
}

// LoadTable читает таблицу из файла (для игр со своим набором символов).
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read char table %s: %w", path, err)
	}
	return ParseTable(data)
}

// DefaultTable - таблица, с которой поставляется игра.
func DefaultTable() Table {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic("mapparse: embedded default table is broken: " + err.Error())
	}
	return t
}
