package engine

import (
	"fmt"

	"space-rogue/internal/domain"
	"space-rogue/internal/metrics"
	"space-rogue/internal/systems"
)

// Context передает резолверу состояние мира.
type Context struct {
	World    *domain.World
	PlayerID domain.EntityID
	Metrics  *metrics.Recorder
}

// Исходы разрешения намерения
const (
	OutcomeApplied = "applied"
	OutcomeBlocked = "blocked"
	OutcomeInvalid = "invalid"
)

// Result - одна запись о примененном (или отклоненном) действии.
// Резолвер НЕ пишет в логи инстанса напрямую, он возвращает данные.
type Result struct {
	Actor   domain.EntityID
	Kind    domain.IntentKind
	Outcome string
	Msg     string
	MsgType string // INFO, COMBAT, ERROR
}

// Resolver потребляет намерения одного вида и снимает их с сущностей.
type Resolver func(ctx Context) []Result

// DefaultResolvers - порядок разрешения в тике: движение, атаки, взаимодействие.
func DefaultResolvers() []Resolver {
	return []Resolver{ResolveMoves, ResolveAttacks, ResolveInteractions}
}

func record(ctx Context, r Result) Result {
	ctx.Metrics.Resolved(r.Kind.String(), r.Outcome)
	return r
}

// ResolveMoves применяет WantMove, если клетка свободна.
func ResolveMoves(ctx Context) []Result {
	w := ctx.World
	cmd := domain.NewCommandBuffer()
	defer cmd.Apply(w)

	var results []Result
	for _, id := range w.Query(w.WantMoves) {
		intent, _ := w.WantMoves.Get(id)
		domain.RemoveLater(cmd, w.WantMoves, id)

		res := systems.CalculateMove(w, id, intent.Dir)
		r := Result{Actor: id, Kind: domain.IntentMove}
		switch {
		case res.HasMoved:
			pos, _ := w.Positions.Get(id)
			*pos = res.Target
			r.Outcome, r.MsgType = OutcomeApplied, "INFO"
			r.Msg = fmt.Sprintf("%s moves to %v.", w.Name(id), res.Target.Point)
		case !res.BlockedBy.IsNil():
			r.Outcome, r.MsgType = OutcomeBlocked, "INFO"
			r.Msg = fmt.Sprintf("%s bumps into %s.", w.Name(id), w.Name(res.BlockedBy))
		default:
			r.Outcome, r.MsgType = OutcomeBlocked, "ERROR"
			r.Msg = fmt.Sprintf("%s cannot move %v: path is blocked.", w.Name(id), intent.Dir)
		}
		results = append(results, record(ctx, r))
	}
	return results
}

// reachable: обе сущности в одной (разрешенной) области и рядом или на одной клетке.
func reachable(w *domain.World, a, b domain.EntityID) bool {
	pa, ok := w.Positions.Get(a)
	if !ok {
		return false
	}
	pb, ok := w.Positions.Get(b)
	if !ok {
		return false
	}
	areaA, okA := domain.ResolveAreaID(w, pa.AreaID)
	areaB, okB := domain.ResolveAreaID(w, pb.AreaID)
	return okA && okB && areaA == areaB && pa.Point.ChebyshevDistance(pb.Point) <= 1
}

// ResolveAttacks только фиксирует атаки: урон и здоровье сюда не входят.
func ResolveAttacks(ctx Context) []Result {
	w := ctx.World
	cmd := domain.NewCommandBuffer()
	defer cmd.Apply(w)

	var results []Result
	for _, id := range w.Query(w.WantAttacks) {
		intent, _ := w.WantAttacks.Get(id)
		domain.RemoveLater(cmd, w.WantAttacks, id)

		r := Result{Actor: id, Kind: domain.IntentAttack}
		if w.IsAlive(intent.Target) && reachable(w, id, intent.Target) {
			r.Outcome, r.MsgType = OutcomeApplied, "COMBAT"
			r.Msg = fmt.Sprintf("%s attacks %s!", w.Name(id), w.Name(intent.Target))
		} else {
			r.Outcome, r.MsgType = OutcomeInvalid, "COMBAT"
			r.Msg = fmt.Sprintf("%s swings at empty air.", w.Name(id))
		}
		results = append(results, record(ctx, r))
	}
	return results
}

// ResolveInteractions: двери открываются и закрываются, кокпит и двигатель
// только отмечаются в логе.
func ResolveInteractions(ctx Context) []Result {
	w := ctx.World
	cmd := domain.NewCommandBuffer()
	defer cmd.Apply(w)

	var results []Result
	for _, id := range w.Query(w.Interacts) {
		intent, _ := w.Interacts.Get(id)
		domain.RemoveLater(cmd, w.Interacts, id)

		r := Result{Actor: id, Kind: domain.IntentInteract, Outcome: OutcomeInvalid, MsgType: "ERROR"}
		obj, ok := w.Objects.Get(intent.Target)
		switch {
		case !ok:
			r.Msg = fmt.Sprintf("%s finds nothing to use.", w.Name(id))
		case !reachable(w, id, intent.Target):
			r.Msg = fmt.Sprintf("%s is too far from %s.", w.Name(id), obj.Kind)
		default:
			r.Outcome, r.MsgType = OutcomeApplied, "INFO"
			switch obj.Kind.Type {
			case domain.ObjectDoor:
				obj.Open = !obj.Open
				state := "closes"
				if obj.Open {
					state = "opens"
				}
				r.Msg = fmt.Sprintf("%s %s the door.", w.Name(id), state)
			case domain.ObjectCockpit:
				r.Msg = fmt.Sprintf("%s takes the pilot seat.", w.Name(id))
			case domain.ObjectEngine:
				r.Msg = fmt.Sprintf("%s checks the engine. It hums.", w.Name(id))
			default:
				r.Outcome, r.MsgType = OutcomeInvalid, "ERROR"
				r.Msg = fmt.Sprintf("%s cannot use that.", w.Name(id))
			}
		}
		results = append(results, record(ctx, r))
	}
	return results
}
