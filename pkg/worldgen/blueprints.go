package worldgen

import (
	"fmt"

	"space-rogue/pkg/mapparse"
)

// Blueprint - чертеж корабля в символах таблицы карт.
// Пустота '_' вокруг корпуса прозрачна: под ней видна поверхность.
type Blueprint struct {
	Name string
	Map  string
}

// Parse разбирает чертеж по таблице символов.
func (b Blueprint) Parse(table mapparse.Table) (*mapparse.Ast, error) {
	ast, err := mapparse.Parse(b.Map, table)
	if err != nil {
		return nil, fmt.Errorf("blueprint %s: %w", b.Name, err)
	}
	return ast, nil
}

var Scout = Blueprint{
	Name: "Scout",
	Map: `
        _###_
        ##@##
        #...#
        #...#
        ##-##
        _E_E_
    `,
}

var Freighter = Blueprint{
	Name: "Freighter",
	Map: `
        __#####__
        ###.@.###
        #.......#
        #...#...#
        #...|...#
        #...#...#
        ###-#-###
        _E_____E_
    `,
}

// Blueprints - все доступные корабли
var Blueprints = map[string]Blueprint{
	"scout":     Scout,
	"freighter": Freighter,
}
