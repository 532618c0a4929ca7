package engine

import (
	"context"
	"time"

	"space-rogue/internal/domain"
	"space-rogue/internal/metrics"
	"space-rogue/internal/systems"
	"space-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Instance - один запущенный сектор: мир, игрок и порядок систем.
type Instance struct {
	ID       int
	World    *domain.World
	PlayerID domain.EntityID

	CurrentTick int

	Logs []LogEntry // Локальные логи сектора

	Seed    int64 // Сид, с которого начался сектор
	Metrics *metrics.Recorder

	resolvers []Resolver
}

// TickReport - что произошло за один тик.
type TickReport struct {
	Tick     int
	Turns    int // сколько ИИ получили ход
	Results  []Result
	Visible  int // клеток видит игрок
	Duration time.Duration
}

// Count считает результаты заданного вида и исхода.
func (r TickReport) Count(kind domain.IntentKind, outcome string) int {
	n := 0
	for _, res := range r.Results {
		if res.Kind == kind && res.Outcome == outcome {
			n++
		}
	}
	return n
}

func NewInstance(id int, world *domain.World, playerID domain.EntityID, seed int64, rec *metrics.Recorder) *Instance {
	return &Instance{
		ID:        id,
		World:     world,
		PlayerID:  playerID,
		Logs:      []LogEntry{},
		Seed:      seed,
		Metrics:   rec,
		resolvers: DefaultResolvers(),
	}
}

// SetResolvers заменяет набор резолверов (например, чтобы отключить атаки).
func (i *Instance) SetResolvers(resolvers ...Resolver) {
	i.resolvers = resolvers
}

// Tick выполняет один ход: зрение -> выдача ходов -> решения ИИ -> разрешение действий.
func (i *Instance) Tick() TickReport {
	start := time.Now()
	i.CurrentTick++
	report := TickReport{Tick: i.CurrentTick}

	systems.VisibilitySystem(i.World, i.Metrics)
	report.Turns = systems.GiveTurnSystem(i.World)
	systems.AiActSystem(i.World, i.PlayerID, i.Metrics)

	ctx := Context{World: i.World, PlayerID: i.PlayerID, Metrics: i.Metrics}
	for _, resolve := range i.resolvers {
		for _, res := range resolve(ctx) {
			report.Results = append(report.Results, res)
			i.AddLog(res.Msg, res.MsgType)
		}
	}

	if vis, ok := i.World.Visibility.Get(i.PlayerID); ok {
		report.Visible = len(vis.VisibleTiles)
	}
	report.Duration = time.Since(start)
	i.Metrics.Tick(report.Duration, i.World.Len())

	logger.Log.WithFields(logrus.Fields{
		"instance": i.ID,
		"tick":     report.Tick,
		"turns":    report.Turns,
		"actions":  len(report.Results),
	}).Debug("Tick complete")
	return report
}

// Run прогоняет n тиков подряд.
func (i *Instance) Run(n int) []TickReport {
	reports, _ := i.RunContext(context.Background(), n)
	return reports
}

// RunContext - то же, что Run, но останавливается между тиками при отмене ctx.
// Возвращает отчеты уже выполненных тиков.
func (i *Instance) RunContext(ctx context.Context, n int) ([]TickReport, error) {
	logger.Log.WithFields(logrus.Fields{
		"instance": i.ID,
		"ticks":    n,
		"seed":     i.Seed,
	}).Info("Instance loop started")

	reports := make([]TickReport, 0, n)
	for t := 0; t < n; t++ {
		if err := ctx.Err(); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"instance": i.ID,
				"tick":     i.CurrentTick,
			}).Warn("Instance loop interrupted")
			return reports, err
		}
		reports = append(reports, i.Tick())
	}
	return reports, nil
}
