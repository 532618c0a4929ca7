package mapparse

import (
	"strings"

	"space-rogue/internal/grid"
)

// SerializeLines переводит сетку в строки: слева направо, сверху вниз.
// Если encode не знает клетку - UnknownTileAt с координатой.
func SerializeLines[T any](g *grid.Grid[T], encode func(T) (rune, bool)) ([]string, error) {
	lines := make([]string, 0, g.Height())
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			ch, ok := encode(g.GetAt(c))
			if !ok {
				return nil, &ParseError{Kind: UnknownTileAt, At: c}
			}
			sb.WriteRune(ch)
		}
		lines = append(lines, sb.String())
	}
	return lines, nil
}

// Serialize - то же, что SerializeLines, но одной строкой через "\n".
func Serialize[T any](g *grid.Grid[T], encode func(T) (rune, bool)) (string, error) {
	lines, err := SerializeLines(g, encode)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// SerializeAst кодирует разобранную карту обратно по таблице.
func SerializeAst(ast *Ast, table Table) (string, error) {
	return Serialize(ast, table.Encode)
}
