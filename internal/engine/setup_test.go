package engine

import (
	"os"
	"testing"

	"space-rogue/internal/domain"
	"space-rogue/internal/grid"
	"space-rogue/pkg/logger"
	"space-rogue/pkg/mapparse"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func spawnArea(t *testing.T, w *domain.World, raw string) domain.AreaID {
	t.Helper()
	ast, err := mapparse.Parse(raw, mapparse.DefaultTable())
	require.NoError(t, err)
	return w.SpawnArea("deck", mapparse.ToCells(ast))
}

func spawnMob(w *domain.World, areaID domain.AreaID, name string, at grid.Coord) domain.EntityID {
	id := w.Spawn()
	w.Labels.Insert(id, domain.Label{Name: name})
	w.Positions.Insert(id, domain.Position{AreaID: areaID, Point: at})
	w.Visibility.Insert(id, domain.Visibility{Range: domain.DefaultVisionRange})
	w.Ais.Insert(id, domain.Ai{Personality: domain.PersonalityHunter})
	return id
}

func spawnPlayer(w *domain.World, areaID domain.AreaID, at grid.Coord) domain.EntityID {
	id := w.Spawn()
	w.Labels.Insert(id, domain.Label{Name: "Pilot"})
	w.Positions.Insert(id, domain.Position{AreaID: areaID, Point: at})
	w.Visibility.Insert(id, domain.Visibility{Range: domain.DefaultVisionRange})
	w.Memories.Insert(id, domain.NewVisibilityMemory())
	return id
}
