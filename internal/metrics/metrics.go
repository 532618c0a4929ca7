package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "spacerogue"

// Recorder собирает счетчики симуляции в собственный регистр.
// Все методы безопасны для nil-получателя: системы можно гонять без метрик.
type Recorder struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	entities     prometheus.Gauge
	visibleTiles prometheus.Histogram
	intents      *prometheus.CounterVec
	skipped      *prometheus.CounterVec
	paths        *prometheus.CounterVec
	resolved     *prometheus.CounterVec
}

// New создает Recorder и регистрирует метрики.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Число выполненных тиков.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Живые сущности в мире.",
		}),
		visibleTiles: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "visible_tiles",
			Help:      "Размер поля зрения одной сущности.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intents_total",
			Help:      "Намерения, выданные ИИ.",
		}, []string{"kind"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_actors_total",
			Help:      "Пропущенные ходы по причине.",
		}, []string{"reason"}),
		paths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_searches_total",
			Help:      "Запуски A* по результату.",
		}, []string{"result"}),
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_resolved_total",
			Help:      "Примененные действия по типу и исходу.",
		}, []string{"kind", "outcome"}),
	}

	r.registry.MustRegister(
		r.ticks, r.tickDuration, r.entities, r.visibleTiles,
		r.intents, r.skipped, r.paths, r.resolved,
	)
	return r
}

// Registry отдает регистр (например, для promhttp).
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) Tick(d time.Duration, entities int) {
	if r == nil {
		return
	}
	r.ticks.Inc()
	r.tickDuration.Observe(d.Seconds())
	r.entities.Set(float64(entities))
}

func (r *Recorder) VisibleTiles(n int) {
	if r == nil {
		return
	}
	r.visibleTiles.Observe(float64(n))
}

func (r *Recorder) Intent(kind string) {
	if r == nil {
		return
	}
	r.intents.WithLabelValues(kind).Inc()
}

func (r *Recorder) Skipped(reason string) {
	if r == nil {
		return
	}
	r.skipped.WithLabelValues(reason).Inc()
}

func (r *Recorder) PathSearch(success bool) {
	if r == nil {
		return
	}
	result := "found"
	if !success {
		result = "not_found"
	}
	r.paths.WithLabelValues(result).Inc()
}

func (r *Recorder) Resolved(kind, outcome string) {
	if r == nil {
		return
	}
	r.resolved.WithLabelValues(kind, outcome).Inc()
}

// Snapshot сводит регистр к плоской карте "имя{метки}" -> значение.
// Для гистограмм берется число наблюдений.
func (r *Recorder) Snapshot() (map[string]float64, error) {
	out := make(map[string]float64)
	if r == nil {
		return out, nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			key := mf.GetName()
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

// Lines - Snapshot в отсортированном текстовом виде, для логов.
func (r *Recorder) Lines() ([]string, error) {
	snap, err := r.Snapshot()
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(snap))
	for k, v := range snap {
		lines = append(lines, fmt.Sprintf("%s %g", k, v))
	}
	sort.Strings(lines)
	return lines, nil
}
