package systems

import (
	"math/rand"
	"os"
	"testing"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
	"space-rogue/pkg/logger"
	"space-rogue/pkg/mapparse"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

var testTable = mapparse.NewTable(
	mapparse.Entry{Char: '.', Tile: domain.TileFloor},
	mapparse.Entry{Char: '#', Tile: domain.TileWall},
	mapparse.Entry{Char: '_', Tile: domain.TileSpace},
)

// scenarioMap - карта из сценариев поиска пути и погони.
const scenarioMap = `
....
#.##
#.#.
....
`

func cellsFrom(t *testing.T, raw string) *grid.Grid[domain.Cell] {
	t.Helper()
	ast, err := mapparse.Parse(raw, testTable)
	require.NoError(t, err)
	return mapparse.ToCells(ast)
}

func newArea(t *testing.T, raw string) *domain.Area {
	t.Helper()
	return domain.NewArea(1, cellsFrom(t, raw))
}

func randomArea(rng *rand.Rand, w, h int, wallChance float64) *domain.Area {
	g := grid.New(w, h, func() domain.Cell {
		if rng.Float64() < wallChance {
			return domain.NewCell(domain.TileWall)
		}
		return domain.NewCell(domain.TileFloor)
	})
	return domain.NewArea(1, g)
}

// spawnActor ставит сущность со зрением на карту. ai - выдавать ли маркер Ai.
func spawnActor(w *domain.World, areaID domain.AreaID, at grid.Coord, radius int, ai bool) domain.EntityID {
	id := w.Spawn()
	w.Positions.Insert(id, domain.Position{AreaID: areaID, Point: at})
	w.Visibility.Insert(id, domain.Visibility{Range: radius})
	if ai {
		w.Ais.Insert(id, domain.Ai{Personality: domain.PersonalityHunter})
	}
	return id
}
