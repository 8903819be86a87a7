// Package metrics exposes simulation counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gridsim"

// Collector groups the simulation metrics. A nil *Collector is valid and
// records nothing, so callers never have to guard their calls.
type Collector struct {
	systemDuration *prometheus.HistogramVec
	frames         prometheus.Counter
	sends          *prometheus.CounterVec
	entities       prometheus.Gauge
	sceneDepth     prometheus.Gauge
	transitions    *prometheus.CounterVec
}

// New creates the collector and registers it with reg
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		systemDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "system_duration_seconds",
			Help:      "Wall time spent in one system run.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"system"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Dispatched simulation frames.",
		}),
		sends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "network_sends_total",
			Help:      "Position payloads handed to transports, by result.",
		}, []string{"result"}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Live entities in the active scene.",
		}),
		sceneDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scene_stack_depth",
			Help:      "Number of scenes on the stack.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scene_transitions_total",
			Help:      "Applied scene transitions, by kind.",
		}, []string{"kind"}),
	}

	for _, col := range []prometheus.Collector{
		c.systemDuration, c.frames, c.sends, c.entities, c.sceneDepth, c.transitions,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveSystem records the run time of one system
func (c *Collector) ObserveSystem(name string, d time.Duration) {
	if c == nil {
		return
	}
	c.systemDuration.WithLabelValues(name).Observe(d.Seconds())
}

// FrameDispatched counts one full dispatch
func (c *Collector) FrameDispatched() {
	if c == nil {
		return
	}
	c.frames.Inc()
}

// SendResult counts one transport send
func (c *Collector) SendResult(err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.sends.WithLabelValues("error").Inc()
		return
	}
	c.sends.WithLabelValues("ok").Inc()
}

// SetEntities records the live entity count
func (c *Collector) SetEntities(n int) {
	if c == nil {
		return
	}
	c.entities.Set(float64(n))
}

// SetSceneDepth records the stack depth after a transition
func (c *Collector) SetSceneDepth(n int) {
	if c == nil {
		return
	}
	c.sceneDepth.Set(float64(n))
}

// Transition counts one applied scene transition
func (c *Collector) Transition(kind string) {
	if c == nil {
		return
	}
	c.transitions.WithLabelValues(kind).Inc()
}

// Handler serves the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
