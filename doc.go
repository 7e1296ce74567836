// SPDX-License-Identifier: MIT

// Package ambroute is an ambulance route advisor over a small road network
// whose travel times drift with simulated traffic.
//
// 🚑 What it does
//
//	Every cycle it prints the current traffic table, computes the fastest
//	route between a chosen starting place and a hospital, waits, then nudges
//	every road's travel time by a random amount and goes again.
//
// 📦 Layout
//
//	roadnet/       dense symmetric road network: locations, minutes, lookup, components
//	dijkstra/      O(N²) single-source shortest paths with deterministic tie-breaks
//	traffic/       seeded perturbation of road minutes with a lower floor
//	simulation/    session step function, text rendering and the cancellable driver
//	config/        YAML file, .env and environment overrides
//	metrics/       Prometheus collectors over a private registry
//	cmd/ambulance/ the interactive binary
//
// 🔌 Quick start
//
//	net := roadnet.Reference()
//	src, _ := net.Lookup("City Center")
//	dst, _ := net.Lookup("Residential Area")
//	route, _ := dijkstra.ShortestPath(net, src, dst)
//	// route.Path == [0 4 5], route.Cost == 20
//
//	sim := traffic.New(traffic.WithSeed(42))
//	changes, _ := sim.Perturb(net)
//
// The core never sleeps. The only clock read outside the driver is the
// default traffic seed (traffic.New without WithSeed or WithRand); the driver
// in simulation waits between cycles and stops when its context is done.
package ambroute
