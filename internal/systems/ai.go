package systems

import (
	"space-rogue/internal/domain"
	"space-rogue/internal/metrics"
	"space-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GiveTurnSystem выдает HasATurn каждому ИИ. Маркеры вставляются после
// обхода, чтобы не менять хранилище во время итерации.
func GiveTurnSystem(w *domain.World) int {
	cmd := domain.NewCommandBuffer()
	for _, id := range w.Query(w.Ais) {
		domain.InsertLater(cmd, w.Turns, id, domain.HasATurn{})
	}
	return cmd.Apply(w)
}

// AiActSystem решает, что делает каждый ИИ с ходом: атаковать игрока,
// сделать шаг к нему или пропустить ход. Намерения и снятие HasATurn
// применяются одним буфером после обхода.
func AiActSystem(w *domain.World, playerID domain.EntityID, rec *metrics.Recorder) {
	cmd := domain.NewCommandBuffer()
	defer cmd.Apply(w)

	for _, id := range w.Query(w.Turns, w.Positions, w.Visibility) {
		domain.RemoveLater(cmd, w.Turns, id)

		aiLogger := logger.For("ai_system").WithFields(logrus.Fields{
			"entity_id": id,
			"name":      w.Name(id),
		})

		d := decide(w, id, playerID, aiLogger, rec)
		switch d.kind {
		case domain.IntentAttack:
			domain.InsertLater(cmd, w.WantAttacks, id, d.attack)
			aiLogger.WithField("target", d.attack.Target).Debug("Target in reach. Intent: ATTACK")
		case domain.IntentMove:
			domain.InsertLater(cmd, w.WantMoves, id, d.move)
			aiLogger.WithField("dir", d.move.Dir).Debug("Path found. Intent: MOVE")
		default:
			rec.Skipped(d.reason)
			aiLogger.WithField("reason", d.reason).Debug("Turn skipped.")
			continue
		}
		rec.Intent(d.kind.String())
	}
}

type decision struct {
	kind   domain.IntentKind
	move   domain.WantMove
	attack domain.WantAttack
	reason string // для IntentSkip
}

func skip(reason string) decision {
	return decision{kind: domain.IntentSkip, reason: reason}
}

// decide выбирает намерение одного актора.
func decide(w *domain.World, id, playerID domain.EntityID, aiLogger *logrus.Entry, rec *metrics.Recorder) decision {
	pos, _ := w.Positions.Get(id)
	vis, _ := w.Visibility.Get(id)

	playerPos, ok := w.Positions.Get(playerID)
	if !ok {
		aiLogger.WithField("player_id", playerID).Warn("Player has no position. Skipping actor.")
		return skip("no_player")
	}

	if pos.AreaID != playerPos.AreaID {
		// Взгляд между областями не поддерживается.
		return skip("other_area")
	}

	if !vis.IsVisible(playerPos.Point) {
		return skip("player_not_visible")
	}

	_, area, ok := resolveArea(w, pos.AreaID)
	if !ok {
		aiLogger.WithField("area_id", pos.AreaID).Warn("Actor area not found. Skipping actor.")
		return skip("no_area")
	}

	// Слой корабля может свисать за базовый прямоугольник: индексы там не определены.
	if !area.IsValid(pos.Point) || !area.IsValid(playerPos.Point) {
		aiLogger.WithFields(logrus.Fields{
			"from": pos.Point,
			"to":   playerPos.Point,
		}).Warn("Actor or player is outside the base rect. Skipping actor.")
		return skip("off_base")
	}

	from := area.CoordsToIndex(pos.Point)
	to := area.CoordsToIndex(playerPos.Point)
	path := AStar(area, from, to)
	rec.PathSearch(path.Success)
	if !path.Success {
		aiLogger.WithFields(logrus.Fields{
			"from": pos.Point,
			"to":   playerPos.Point,
		}).Warn("No path to player. Skipping actor.")
		return skip("no_path")
	}

	if len(path.Steps) <= 2 {
		return decision{kind: domain.IntentAttack, attack: domain.WantAttack{Target: playerID}}
	}

	delta := area.IndexToCoord(path.Steps[1]).Sub(pos.Point)
	return decision{kind: domain.IntentMove, move: domain.WantMove{Dir: delta}}
}
