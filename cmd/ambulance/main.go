// SPDX-License-Identifier: MIT

// Command ambulance is the interactive ambulance route advisor.
//
// It prints the available locations, reads a starting place and a
// destination from standard input, then loops: print the traffic table and
// the fastest route, wait, perturb traffic. Ctrl+C stops it.
//
// Usage:
//
//	ambulance [-config sim.yaml] [-cycles N] [-metrics] [-print-config]
//
// Environment: AMBULANCE_CONFIG, AMBULANCE_INTERVAL, AMBULANCE_SEED; a .env
// file in the working directory is loaded first if present.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ambroute/config"
	"github.com/katalvlaran/ambroute/metrics"
	"github.com/katalvlaran/ambroute/roadnet"
	"github.com/katalvlaran/ambroute/simulation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

// run is main without process globals. It returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer,
	lookup func(string) (string, bool)) int {
	logger := log.New(stderr, "ambulance: ", log.LstdFlags)

	fs := flag.NewFlagSet("ambulance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "YAML configuration file (default: built-in reference network)")
	cycles := fs.Int("cycles", 0, "stop after N cycles (0: run until interrupted)")
	dumpMetrics := fs.Bool("metrics", false, "write Prometheus text metrics to stderr on exit")
	printConfig := fs.Bool("print-config", false, "print the effective configuration and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *cycles < 0 {
		logger.Printf("-cycles must be >= 0, got %d", *cycles)
		return 2
	}

	if err := config.LoadDotEnv(); err != nil {
		logger.Printf("%v", err)
		return 1
	}
	cfg, err := config.Resolve(*path, lookup)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	if *printConfig {
		out, err := cfg.Marshal()
		if err != nil {
			logger.Printf("%v", err)
			return 1
		}
		_, _ = stdout.Write(out)
		return 0
	}

	net, err := cfg.Network()
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	sim, err := cfg.Simulator()
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	if err = simulation.RenderBanner(stdout, net); err != nil {
		logger.Printf("%v", err)
		return 1
	}
	in := bufio.NewReader(stdin)
	fmt.Fprint(stdout, "\nEnter ambulance starting place: ")
	src := readLine(in)
	fmt.Fprint(stdout, "Enter hospital (destination): ")
	dst := readLine(in)

	session, err := simulation.NewSession(net, sim, src, dst)
	if errors.Is(err, roadnet.ErrLocationNotFound) {
		fmt.Fprintln(stdout, "\n❌ Invalid location entered. Please match exactly one of the names listed above.")
		return 0
	}
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	fmt.Fprintln(stdout, "\n🌐 Starting live simulation... (Press Ctrl+C to stop)")
	opts := []simulation.DriverOption{
		simulation.WithInterval(cfg.IntervalDuration()),
		simulation.WithMaxCycles(*cycles),
		simulation.WithOutput(stdout),
		simulation.WithLogger(logger),
		simulation.WithRecorder(rec),
	}
	err = simulation.NewDriver(session, opts...).Run(ctx)
	if *dumpMetrics {
		if merr := metrics.WriteText(stderr, reg); merr != nil {
			logger.Printf("%v", merr)
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("%v", err)
		return 1
	}

	return 0
}

// readLine returns the next input line without its line ending.
// EOF yields whatever was read so far.
func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')

	return strings.TrimRight(line, "\r\n")
}
