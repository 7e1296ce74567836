// SPDX-License-Identifier: MIT

package simulation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ambroute/dijkstra"
	"github.com/katalvlaran/ambroute/roadnet"
	"github.com/katalvlaran/ambroute/simulation"
)

func pad(s string) string {
	return s + strings.Repeat(" ", simulation.ColumnWidth-len(s))
}

func TestRenderTraffic_Layout(t *testing.T) {
	net, err := roadnet.New([]string{"A", "B"}, [][]int64{{0, 4}, {4, 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, simulation.RenderTraffic(&buf, net))

	want := "\n🚦 Current traffic conditions (minutes between locations):\n\n" +
		pad("") + pad("A") + pad("B") + "\n" +
		pad("A") + pad("-") + pad("4") + "\n" +
		pad("B") + pad("4") + pad("-") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTraffic_Reference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, simulation.RenderTraffic(&buf, roadnet.Reference()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// leading blank, title, blank, header, six rows
	require.Len(t, lines, 1+1+1+1+6)
	assert.True(t, strings.HasPrefix(lines[3], pad("")+pad(roadnet.CityCenter)))
	assert.Equal(t, pad(roadnet.TechPark)+pad("-")+pad("12")+pad("-")+pad("22")+pad("-")+pad("1"), lines[6])
}

func TestRenderRoute(t *testing.T) {
	net := roadnet.Reference()
	tests := []struct {
		name  string
		route dijkstra.Route
		want  []string
	}{
		{
			name:  "Reachable",
			route: dijkstra.Route{Source: 0, Destination: 5, Path: []int{0, 4, 5}, Cost: 20},
			want: []string{
				"🚑 Best route from City Center to Residential Area:",
				"City Center -> Mall -> Residential Area",
				"🕒 Estimated time: 20 minutes",
			},
		},
		{
			name:  "SameLocation",
			route: dijkstra.Route{Source: 2, Destination: 2, Cost: 0},
			want:  []string{"Tech Park\n🕒 Estimated time: 0 minutes"},
		},
		{
			name:  "Unreachable",
			route: dijkstra.Route{Source: 0, Destination: 3, Cost: dijkstra.Unreachable},
			want:  []string{"❌ No route from City Center to Airport under current traffic."},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, simulation.RenderRoute(&buf, net, tc.route))
			for _, w := range tc.want {
				assert.Contains(t, buf.String(), w)
			}
			if !tc.route.Reachable() {
				assert.NotContains(t, buf.String(), "Estimated time")
			}
		})
	}
}

func TestRenderRoute_BadIndex(t *testing.T) {
	var buf bytes.Buffer
	err := simulation.RenderRoute(&buf, roadnet.Reference(), dijkstra.Route{Source: 9})
	assert.ErrorIs(t, err, roadnet.ErrIndexOutOfRange)
}

func TestRenderBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, simulation.RenderBanner(&buf, roadnet.Reference()))
	assert.Contains(t, buf.String(), "SMART AMBULANCE ROUTE FINDER")
	for _, name := range roadnet.ReferenceNames() {
		assert.Contains(t, buf.String(), " - "+name+"\n")
	}
}
