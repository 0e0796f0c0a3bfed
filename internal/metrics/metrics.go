// Package metrics exports engine activity as prometheus collectors.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the collector vectors shared by every engine registered
// against one registry. Each engine gets its own Observer labelled by rule.
type Metrics struct {
	steps      *prometheus.CounterVec
	stepTime   *prometheus.HistogramVec
	renders    *prometheus.CounterVec
	renderTime *prometheus.HistogramVec
	catchUp    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ca_steps_total",
			Help: "Generations computed.",
		}, []string{"rule"}),
		stepTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ca_step_duration_seconds",
			Help:    "Wall time of one generation.",
			Buckets: prometheus.ExponentialBuckets(50e-6, 4, 8),
		}, []string{"rule"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ca_renders_total",
			Help: "Full grid repaints.",
		}, []string{"rule"}),
		renderTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ca_render_duration_seconds",
			Help:    "Wall time of one repaint.",
			Buckets: prometheus.ExponentialBuckets(50e-6, 4, 8),
		}, []string{"rule"}),
		catchUp: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ca_tick_steps",
			Help:    "Steps performed per host tick.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}, []string{"rule"}),
	}
	for _, c := range []prometheus.Collector{m.steps, m.stepTime, m.renders, m.renderTime, m.catchUp} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Observer implements core.Observer for a single engine.
type Observer struct {
	steps      prometheus.Counter
	stepTime   prometheus.Observer
	renders    prometheus.Counter
	renderTime prometheus.Observer
	catchUp    prometheus.Observer
}

// Observer binds the collectors to a rule name.
func (m *Metrics) Observer(rule string) *Observer {
	return &Observer{
		steps:      m.steps.WithLabelValues(rule),
		stepTime:   m.stepTime.WithLabelValues(rule),
		renders:    m.renders.WithLabelValues(rule),
		renderTime: m.renderTime.WithLabelValues(rule),
		catchUp:    m.catchUp.WithLabelValues(rule),
	}
}

func (o *Observer) StepDone(d time.Duration) {
	o.steps.Inc()
	o.stepTime.Observe(d.Seconds())
}

func (o *Observer) Rendered(d time.Duration) {
	o.renders.Inc()
	o.renderTime.Observe(d.Seconds())
}

func (o *Observer) TickDone(steps int) {
	o.catchUp.Observe(float64(steps))
}

// Dump writes every family in g in the text exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
