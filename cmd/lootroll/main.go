package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/FocusLoot_Go/internal/config"
	"github.com/osse101/FocusLoot_Go/internal/logger"
	"github.com/osse101/FocusLoot_Go/internal/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Logs go to stderr so command output stays pipeable.
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, cfg.IsDevelopment())
	logger.InitLoggerWithWriter(logCfg, stderr)
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	a, err := newApp(cfg, stdout, isTerminal(stdout))
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load catalog: %v\n", err)
		return 1
	}

	registry := NewRegistry()
	registry.Register(&RollCommand{app: a})
	registry.Register(&VerifyCommand{app: a})
	registry.Register(&SimulateCommand{app: a})
	registry.Register(&CatalogCommand{app: a})

	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		registry.PrintHelp(stdout)
		if len(args) == 0 {
			return 1
		}
		return 0
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		registry.PrintHelp(stderr)
		return 1
	}

	runErr := cmd.Run(args[1:])

	if a.dumpMetrics {
		if err := metrics.WriteText(stderr, prometheus.DefaultGatherer); err != nil {
			fmt.Fprintf(stderr, "Failed to write metrics: %v\n", err)
		}
	}

	switch {
	case runErr == nil:
		return 0
	case errors.Is(runErr, flag.ErrHelp):
		return 0
	case errors.Is(runErr, errDropMismatch):
		return 2
	default:
		a.out.Error("%v", runErr)
		return 1
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
