// SPDX-License-Identifier: MIT

package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ambroute/dijkstra"
	"github.com/katalvlaran/ambroute/metrics"
	"github.com/katalvlaran/ambroute/traffic"
)

func newRecorder(t *testing.T) (*metrics.Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	return rec, reg
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}

func TestObserveRoute(t *testing.T) {
	rec, _ := newRecorder(t)

	rec.ObserveRoute(dijkstra.Route{Path: []int{0, 4, 5}, Cost: 20})
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Cycles))
	assert.Equal(t, 20.0, testutil.ToFloat64(rec.RouteMinutes))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.RouteHops))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RouteReachable))

	rec.ObserveRoute(dijkstra.Route{Cost: dijkstra.Unreachable})
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Cycles))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Unreachable))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.RouteReachable))
	assert.Equal(t, 20.0, testutil.ToFloat64(rec.RouteMinutes), "last reachable value is kept")
}

func TestObserveChanges(t *testing.T) {
	rec, _ := newRecorder(t)
	rec.ObserveChanges([]traffic.Change{
		{From: 0, To: 1, Old: 10, New: 12},
		{From: 0, To: 4, Old: 15, New: 13},
		{From: 1, To: 2, Old: 12, New: 12},
		{From: 2, To: 5, Old: 1, New: 2},
	})
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.RoadChanges.WithLabelValues("slower")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RoadChanges.WithLabelValues("faster")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RoadChanges.WithLabelValues("unchanged")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.RoadDelta))
}

func TestWriteText(t *testing.T) {
	rec, reg := newRecorder(t)
	rec.ObserveRoute(dijkstra.Route{Path: []int{0, 1}, Cost: 10})

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "ambroute_cycles_total 1")
	assert.Contains(t, buf.String(), "ambroute_route_minutes 10")
}
