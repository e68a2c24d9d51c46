package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/FocusLoot_Go/internal/catalog"
	"github.com/osse101/FocusLoot_Go/internal/config"
	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/loot"
)

const appName = "lootroll"

// app holds what every command needs: configuration, the engine built from
// it and the output channel.
type app struct {
	cfg     *config.Config
	engine  *loot.Engine
	service loot.Service
	out     *printer

	dumpMetrics bool
}

func newApp(cfg *config.Config, out io.Writer, color bool) (*app, error) {
	items, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	table := loot.DefaultRarityTable()
	table.DurationScale = cfg.DurationScale
	table.DurationBoost = cfg.DurationBoost
	table.ClassBias = cfg.ClassBias

	engine := loot.NewEngine(items,
		loot.WithRarityTable(table),
		loot.WithDropRate(cfg.DropRate),
		loot.WithFallback(loot.ParseFallbackPolicy(cfg.Fallback)),
	)

	return &app{
		cfg:     cfg,
		engine:  engine,
		service: loot.NewService(engine),
		out:     &printer{w: out, color: color},
	}, nil
}

func loadCatalog(cfg *config.Config) ([]domain.LootItem, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

// flagSet returns a flag set for a command with the shared -metrics flag bound.
func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out.w)
	fs.BoolVar(&a.dumpMetrics, "metrics", false, "Print Prometheus metrics to stderr on exit")
	return fs
}

// sessionFlags binds the flags describing one focus session.
type sessionFlags struct {
	id      *string
	minutes *int
	level   *int
	class   *string
}

func bindSessionFlags(fs *flag.FlagSet) sessionFlags {
	return sessionFlags{
		id:      fs.String("session", "", "Session id (the roll seed)"),
		minutes: fs.Int("minutes", 0, "Session length in minutes"),
		level:   fs.Int("level", 0, "Player level"),
		class:   fs.String("class", "", "Player class (optional)"),
	}
}

func (f sessionFlags) context() (domain.SessionContext, error) {
	if *f.id == "" {
		return domain.SessionContext{}, fmt.Errorf("%w: -session is required", domain.ErrInvalidInput)
	}
	return domain.SessionContext{
		SessionID:      *f.id,
		SessionMinutes: *f.minutes,
		PlayerLevel:    *f.level,
		PlayerClass:    *f.class,
	}, nil
}

var titleCaser = cases.Title(language.English)

// displayClass renders a class id for humans.
func displayClass(class string) string {
	class = domain.NormalizeClass(class)
	if class == "" {
		return "-"
	}
	return titleCaser.String(class)
}

// displayRarity renders a tier as "Super Rare (SR)".
func displayRarity(r domain.Rarity) string {
	if !r.Valid() {
		return r.String()
	}
	name := titleCaser.String(strings.ReplaceAll(r.String(), "_", " "))
	return fmt.Sprintf("%s (%s)", name, r.Code())
}
