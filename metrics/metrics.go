// SPDX-License-Identifier: MIT

// Package metrics records simulation progress as Prometheus collectors.
// A Recorder registers on a caller-supplied registry; nothing is global.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/ambroute/dijkstra"
	"github.com/katalvlaran/ambroute/traffic"
)

const namespace = "ambroute"

// Recorder groups the simulation collectors.
type Recorder struct {
	Cycles         prometheus.Counter
	Unreachable    prometheus.Counter
	RouteMinutes   prometheus.Gauge
	RouteHops      prometheus.Gauge
	RouteReachable prometheus.Gauge
	RoadDelta      prometheus.Histogram
	RoadChanges    *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cycles_total",
			Help: "Routing cycles completed.",
		}),
		Unreachable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "unreachable_total",
			Help: "Cycles in which the destination had no route.",
		}),
		RouteMinutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "route_minutes",
			Help: "Estimated minutes of the latest reachable route.",
		}),
		RouteHops: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "route_hops",
			Help: "Roads traversed by the latest reachable route.",
		}),
		RouteReachable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "route_reachable",
			Help: "1 if the latest cycle found a route, 0 otherwise.",
		}),
		RoadDelta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "road_delta_minutes",
			Help:    "Applied per-road change in minutes after clamping.",
			Buckets: []float64{-3, -2, -1, 0, 1, 2, 3},
		}),
		RoadChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "road_changes_total",
			Help: "Per-road updates by direction.",
		}, []string{"direction"}),
	}
	for _, c := range []prometheus.Collector{
		r.Cycles, r.Unreachable, r.RouteMinutes, r.RouteHops,
		r.RouteReachable, r.RoadDelta, r.RoadChanges,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// ObserveRoute records one routing cycle.
func (r *Recorder) ObserveRoute(route dijkstra.Route) {
	r.Cycles.Inc()
	if !route.Reachable() {
		r.Unreachable.Inc()
		r.RouteReachable.Set(0)
		return
	}
	r.RouteReachable.Set(1)
	r.RouteMinutes.Set(float64(route.Cost))
	r.RouteHops.Set(float64(route.Hops()))
}

// ObserveChanges records one traffic update.
func (r *Recorder) ObserveChanges(changes []traffic.Change) {
	for _, c := range changes {
		d := c.Delta()
		r.RoadDelta.Observe(float64(d))
		switch {
		case d > 0:
			r.RoadChanges.WithLabelValues("slower").Inc()
		case d < 0:
			r.RoadChanges.WithLabelValues("faster").Inc()
		default:
			r.RoadChanges.WithLabelValues("unchanged").Inc()
		}
	}
}

// WriteText writes every family gathered from g in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
