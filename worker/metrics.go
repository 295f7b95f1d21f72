package worker

import (
	"strings"

	"github.com/battlesnakeio/solo/rules"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
)

// Instrument wraps a simulation to record tick metrics.
func Instrument(s Simulation) Simulation { return &metrics{s} }

var (
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "solo",
			Subsystem: "game",
			Name:      "tick_seconds",
			Help:      "Time spent simulating a tick.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
	)
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "solo",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks simulated.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "solo",
			Subsystem: "game",
			Name:      "food_eaten_total",
			Help:      "Food items eaten by the snake.",
		},
	)
	snakeLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "solo",
			Subsystem: "game",
			Name:      "snake_length",
			Help:      "Tail segments behind the head.",
		},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(tickDuration, ticksTotal, foodEaten, snakeLength)
}

type metrics struct{ s Simulation }

func (m *metrics) Tick() (*rules.TickResult, error) {
	defer instrument()()
	res, err := m.s.Tick()
	if err != nil {
		return nil, err
	}
	ticksTotal.Inc()
	foodEaten.Add(float64(res.Grew))
	snakeLength.Set(float64(res.Size))
	return res, nil
}

func (m *metrics) Steer(keys rules.KeyState) { m.s.Steer(keys) }

func (m *metrics) Frame() *rules.Frame { return m.s.Frame() }

// LogMetrics writes the current value of every solo metric in g to the log.
func LogMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fields := log.Fields{}
	for _, mf := range families {
		if len(mf.GetMetric()) == 0 || !strings.HasPrefix(mf.GetName(), "solo_") {
			continue
		}
		fields[mf.GetName()] = metricValue(mf.GetType(), mf.GetMetric()[0])
	}
	log.WithFields(fields).Info("game metrics")
	return nil
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	}
	return 0
}
