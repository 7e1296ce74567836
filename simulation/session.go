// SPDX-License-Identifier: MIT

package simulation

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/ambroute/dijkstra"
	"github.com/katalvlaran/ambroute/roadnet"
	"github.com/katalvlaran/ambroute/traffic"
)

// Sentinel errors for session setup.
var (
	ErrNilNetwork   = errors.New("simulation: network is nil")
	ErrNilSimulator = errors.New("simulation: traffic simulator is nil")
)

// Cycle is what one Observe step produced.
type Cycle struct {
	Number   int // 1-based
	Route    dijkstra.Route
	Snapshot [][]int64 // weights the route was computed on
	Output   string    // rendered table and route
}

// Session binds a network, a traffic simulator and one resolved
// (source, destination) pair.
type Session struct {
	ID          uuid.UUID
	Source      int
	Destination int

	net    *roadnet.RoadNetwork
	sim    *traffic.Simulator
	cycles int
}

// NewSession resolves the two location names against net. A name that
// matches nothing yields an error wrapping roadnet.ErrLocationNotFound, and
// no session is created. The session routes over a private copy of net;
// traffic updates never reach the caller's network.
func NewSession(net *roadnet.RoadNetwork, sim *traffic.Simulator, source, destination string) (*Session, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if sim == nil {
		return nil, ErrNilSimulator
	}
	src, err := net.Lookup(source)
	if err != nil {
		return nil, fmt.Errorf("simulation: source: %w", err)
	}
	dst, err := net.Lookup(destination)
	if err != nil {
		return nil, fmt.Errorf("simulation: destination: %w", err)
	}

	return &Session{
		ID:          uuid.New(),
		Source:      src,
		Destination: dst,
		net:         net.Clone(),
		sim:         sim,
	}, nil
}

// Network returns the network the session routes over.
func (s *Session) Network() *roadnet.RoadNetwork { return s.net }

// Cycles returns how many Observe steps have run.
func (s *Session) Cycles() int { return s.cycles }

// Observe renders the current traffic table and computes the route.
// It does not change the network.
func (s *Session) Observe() (Cycle, error) {
	route, err := dijkstra.ShortestPath(s.net, s.Source, s.Destination)
	if err != nil {
		return Cycle{}, err
	}
	var buf bytes.Buffer
	if err = RenderTraffic(&buf, s.net); err != nil {
		return Cycle{}, err
	}
	if err = RenderRoute(&buf, s.net, route); err != nil {
		return Cycle{}, err
	}
	s.cycles++

	return Cycle{
		Number:   s.cycles,
		Route:    route,
		Snapshot: s.net.Snapshot(),
		Output:   buf.String(),
	}, nil
}

// Advance applies one traffic update to the network.
func (s *Session) Advance() ([]traffic.Change, error) {
	return s.sim.Perturb(s.net)
}

// RunCycle observes the current state and then advances traffic. The
// returned Cycle describes the state before the update.
func (s *Session) RunCycle() (Cycle, []traffic.Change, error) {
	cycle, err := s.Observe()
	if err != nil {
		return Cycle{}, nil, err
	}
	changes, err := s.Advance()
	if err != nil {
		return cycle, nil, err
	}

	return cycle, changes, nil
}
