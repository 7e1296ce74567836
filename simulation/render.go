// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ambroute/dijkstra"
	"github.com/katalvlaran/ambroute/roadnet"
)

// ColumnWidth is the fixed width of each traffic table column.
const ColumnWidth = 20

const (
	noRoadCell = "-"
	separator  = "-------------------------------------------------"
)

// RenderBanner writes the title and the list of available locations.
func RenderBanner(w io.Writer, net *roadnet.RoadNetwork) error {
	var b strings.Builder
	b.WriteString("🚨 SMART AMBULANCE ROUTE FINDER (Dynamic Traffic) 🚨\n")
	b.WriteString("--------------------------------------------------\n")
	b.WriteString("Available locations:\n")
	for _, loc := range net.Locations() {
		fmt.Fprintf(&b, " - %s\n", loc.Name)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// RenderTraffic writes the full N×N table, "-" for pairs without a road.
func RenderTraffic(w io.Writer, net *roadnet.RoadNetwork) error {
	var b strings.Builder
	b.WriteString("\n🚦 Current traffic conditions (minutes between locations):\n\n")
	names := net.Names()
	snap := net.Snapshot()

	writeCell(&b, "")
	for _, name := range names {
		writeCell(&b, name)
	}
	b.WriteByte('\n')
	for i, row := range snap {
		writeCell(&b, names[i])
		for _, v := range row {
			if v == roadnet.NoRoad {
				writeCell(&b, noRoadCell)
				continue
			}
			writeCell(&b, strconv.FormatInt(v, 10))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// RenderRoute writes the route as "A -> B -> C" with its estimated minutes,
// or an unreachable notice.
func RenderRoute(w io.Writer, net *roadnet.RoadNetwork, route dijkstra.Route) error {
	from, err := net.Name(route.Source)
	if err != nil {
		return err
	}
	to, err := net.Name(route.Destination)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n🚑 Best route from %s to %s:\n", from, to)
	switch {
	case !route.Reachable():
		fmt.Fprintf(&b, "❌ No route from %s to %s under current traffic.\n", from, to)
	case len(route.Path) == 0:
		fmt.Fprintf(&b, "%s\n🕒 Estimated time: %d minutes\n", from, route.Cost)
	default:
		names, err := route.Names(net)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s\n🕒 Estimated time: %d minutes\n", strings.Join(names, " -> "), route.Cost)
	}
	_, err = io.WriteString(w, b.String())

	return err
}

// writeCell pads s to ColumnWidth, left aligned.
func writeCell(b *strings.Builder, s string) {
	fmt.Fprintf(b, "%-*s", ColumnWidth, s)
}
