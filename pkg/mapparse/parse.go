package mapparse

import (
	"strings"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
)

// AstCell - результат разбора одного символа
type AstCell struct {
	Tile domain.TileType
	Obj  domain.ObjectKind
}

// Ast - разобранная карта
type Ast = grid.Grid[AstCell]

// normalize режет карту на строки: пробелы выбрасываются, пустая первая
// и пустая последняя строки игнорируются, все строки обязаны быть одной длины.
func normalize(raw string) ([][]rune, error) {
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, strings.ReplaceAll(p, " ", ""))
	}

	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 1 {
		return nil, &ParseError{Kind: FewLines}
	}

	rows := make([][]rune, len(lines))
	width := len([]rune(lines[0]))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) != width {
			return nil, &ParseError{Kind: InvalidLineWidth, Line: line}
		}
	}
	// Одни пустые строки: сетку 0xN не сериализовать обратно.
	if width == 0 {
		return nil, &ParseError{Kind: FewLines}
	}
	return rows, nil
}

// Parse разбирает текстовую карту по таблице символов.
// Один и тот же вход всегда дает один и тот же результат.
func Parse(raw string, table Table) (*Ast, error) {
	rows, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	width, height := len(rows[0]), len(rows)
	cells := make([]AstCell, 0, width*height)
	for y, row := range rows {
		for x, ch := range row {
			tile, ok := table.Tiles[ch]
			if !ok {
				return nil, &ParseError{Kind: UnknownChar, Char: ch, At: grid.Coord{X: x, Y: y}}
			}
			cell := AstCell{Tile: tile}
			if obj, ok := table.Objects[ch]; ok {
				cell.Obj = obj
			}
			cells = append(cells, cell)
		}
	}
	return grid.FromList(width, height, cells), nil
}

// ToCells отбрасывает объекты и оставляет только тайлы.
func ToCells(ast *Ast) *grid.Grid[domain.Cell] {
	cells := make([]domain.Cell, 0, ast.Len())
	for _, c := range ast.List() {
		cells = append(cells, domain.NewCell(c.Tile))
	}
	return grid.FromList(ast.Width(), ast.Height(), cells)
}

// PlacedObject - объект карты вместе с локальной координатой
type PlacedObject struct {
	At   grid.Coord
	Kind domain.ObjectKind
}

// Objects перечисляет объекты построчно (слева направо, сверху вниз).
func Objects(ast *Ast) []PlacedObject {
	var result []PlacedObject
	ast.ForEach(func(c grid.Coord, cell AstCell) {
		if !cell.Obj.IsNone() {
			result = append(result, PlacedObject{At: c, Kind: cell.Obj})
		}
	})
	return result
}
