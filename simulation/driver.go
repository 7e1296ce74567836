// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/ambroute/metrics"
	"github.com/katalvlaran/ambroute/traffic"
)

// DefaultInterval is the reference pause between cycles.
const DefaultInterval = 5 * time.Second

// DriverOptions configures a Driver.
//
// Interval  – pause between Observe and Advance; must be > 0.
// MaxCycles – stop after this many cycles; 0 means run until cancelled.
// Out       – where cycle output is written; io.Discard if nil.
// Logger    – operational log; discarded if nil.
// Recorder  – optional metrics sink.
type DriverOptions struct {
	Interval  time.Duration
	MaxCycles int
	Out       io.Writer
	Logger    *log.Logger
	Recorder  *metrics.Recorder
}

// DriverOption represents a functional option for configuring a Driver.
type DriverOption func(*DriverOptions)

// WithInterval sets the pause between cycles. Panics if d <= 0.
func WithInterval(d time.Duration) DriverOption {
	if d <= 0 {
		panic("simulation: WithInterval requires a positive duration")
	}

	return func(o *DriverOptions) { o.Interval = d }
}

// WithMaxCycles stops the driver after k cycles. Panics if k < 0.
func WithMaxCycles(k int) DriverOption {
	if k < 0 {
		panic("simulation: WithMaxCycles requires k >= 0")
	}

	return func(o *DriverOptions) { o.MaxCycles = k }
}

// WithOutput sets the cycle output writer.
func WithOutput(w io.Writer) DriverOption {
	return func(o *DriverOptions) { o.Out = w }
}

// WithLogger sets the operational logger.
func WithLogger(l *log.Logger) DriverOption {
	return func(o *DriverOptions) { o.Logger = l }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r *metrics.Recorder) DriverOption {
	return func(o *DriverOptions) { o.Recorder = r }
}

// Driver runs a Session on a timer.
type Driver struct {
	session *Session
	opts    DriverOptions
}

// NewDriver builds a Driver for s.
func NewDriver(s *Session, opts ...DriverOption) *Driver {
	cfg := DriverOptions{Interval: DefaultInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}

	return &Driver{session: s, opts: cfg}
}

// Run loops render → route → wait → perturb until ctx is done or MaxCycles
// is reached. It returns ctx.Err() on cancellation and nil after MaxCycles.
// When MaxCycles is reached the last cycle is not followed by a wait.
func (d *Driver) Run(ctx context.Context) error {
	s, o := d.session, d.opts
	o.Logger.Printf("session %s: routing %d -> %d every %s, %s",
		s.ID, s.Source, s.Destination, o.Interval, describeTraffic(s.sim))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// 1) Render and route.
		cycle, err := s.Observe()
		if err != nil {
			return fmt.Errorf("simulation: cycle %d: %w", s.Cycles()+1, err)
		}
		if _, err = io.WriteString(o.Out, cycle.Output); err != nil {
			return fmt.Errorf("simulation: write: %w", err)
		}
		d.logCycle(cycle)
		if o.Recorder != nil {
			o.Recorder.ObserveRoute(cycle.Route)
		}
		if o.MaxCycles > 0 && cycle.Number >= o.MaxCycles {
			return nil
		}

		// 2) Wait.
		if _, err = fmt.Fprintf(o.Out, "\n🔄 Updating traffic in %s...\n", formatInterval(o.Interval)); err != nil {
			return fmt.Errorf("simulation: write: %w", err)
		}
		timer := time.NewTimer(o.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		// 3) Perturb.
		changes, err := s.Advance()
		if err != nil {
			return fmt.Errorf("simulation: traffic: %w", err)
		}
		if o.Recorder != nil {
			o.Recorder.ObserveChanges(changes)
		}
		if _, err = fmt.Fprintf(o.Out, "\n%s\n", separator); err != nil {
			return fmt.Errorf("simulation: write: %w", err)
		}
	}
}

// describeTraffic summarizes the perturbation model for the start log line.
func describeTraffic(sim *traffic.Simulator) string {
	if lo, hi, ok := sim.DeltaRange(); ok {
		return fmt.Sprintf("delta [%d, %d], floor %d", lo, hi, sim.Floor())
	}

	return fmt.Sprintf("custom delta, floor %d", sim.Floor())
}

// formatInterval prints whole seconds as "5 seconds", anything else as a
// Go duration ("250ms").
func formatInterval(d time.Duration) string {
	switch {
	case d == time.Second:
		return "1 second"
	case d%time.Second == 0:
		return fmt.Sprintf("%d seconds", d/time.Second)
	default:
		return d.String()
	}
}

func (d *Driver) logCycle(c Cycle) {
	s, l := d.session, d.opts.Logger
	if c.Route.Reachable() {
		l.Printf("session %s cycle %d: %d min over %d roads", s.ID, c.Number, c.Route.Cost, c.Route.Hops())
		return
	}
	l.Printf("session %s cycle %d: destination unreachable (%d components)",
		s.ID, c.Number, len(s.Network().Components()))
}
