// SPDX-License-Identifier: MIT

// Package simulation runs the ambulance advisor loop on top of roadnet,
// dijkstra and traffic.
//
// The loop is split into two explicit steps so that it can be tested
// without real time:
//
//   - (*Session).Observe renders the traffic table and computes the route.
//     It only reads the network.
//   - (*Session).Advance applies one traffic update.
//
// RunCycle is Observe followed by Advance. Driver strings the steps
// together as render → route → wait → perturb → repeat, and owns the wait
// and the cancellation (a context, typically bound to SIGINT/SIGTERM).
// Nothing here runs concurrently; the network is touched by one step at a time.
package simulation
