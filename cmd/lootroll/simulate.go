package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/loot"
)

type SimulateCommand struct {
	app *app
}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Roll many sessions and compare tier odds with the table"
}

func (c *SimulateCommand) Run(args []string) error {
	fs := c.app.flagSet(c.Name())
	trials := fs.Int("trials", 10000, "Sessions per minute value")
	minutesList := fs.String("minutes", "0,30,60,120", "Comma-separated session lengths to compare")
	level := fs.Int("level", 10, "Player level")
	class := fs.String("class", "", "Player class (optional)")
	prefix := fs.String("prefix", loot.DefaultSimulationPrefix, "Session id prefix")
	randomPrefix := fs.Bool("random-prefix", false, "Use a fresh random prefix instead of -prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	minutes, err := parseMinutes(*minutesList)
	if err != nil {
		return err
	}
	if *randomPrefix {
		*prefix = uuid.NewString()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]*loot.Distribution, len(minutes))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range minutes {
		i, m := i, m
		g.Go(func() error {
			dist, err := loot.Simulate(gctx, c.app.engine, loot.SimulationRequest{
				Prefix:  *prefix,
				Trials:  *trials,
				Minutes: m,
				Level:   *level,
				Class:   *class,
				Workers: c.app.cfg.SimWorkers,
			})
			if err != nil {
				return fmt.Errorf("simulate %d minutes: %w", m, err)
			}
			results[i] = dist
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := c.app.out
	out.Header(fmt.Sprintf("%d sessions per row, prefix %q, level %d, class %s",
		*trials, *prefix, *level, displayClass(*class)))

	var header strings.Builder
	fmt.Fprintf(&header, "%8s", "minutes")
	for _, r := range domain.AllRarities() {
		fmt.Fprintf(&header, " %15s", r.Code()+" obs/exp")
	}
	fmt.Fprintf(&header, " %8s %6s %6s", "chi2", "miss", "gated")
	out.Line("%s", header.String())

	for i, m := range minutes {
		dist := results[i]
		expected := c.app.engine.Probabilities(m, *class)

		var row strings.Builder
		fmt.Fprintf(&row, "%8d", m)
		for _, r := range domain.AllRarities() {
			fmt.Fprintf(&row, "   %5.2f%%/%5.2f%%", 100*dist.Proportion(r), 100*expected[r])
		}
		fmt.Fprintf(&row, " %8.2f %6d %6d", dist.ChiSquared(expected), dist.Misses, dist.Gated)
		out.Line("%s", row.String())
	}
	return nil
}

func parseMinutes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: minutes value %q", domain.ErrInvalidInput, part)
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no minutes given", domain.ErrInvalidInput)
	}
	return out, nil
}
