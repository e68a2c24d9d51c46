package main

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/FocusLoot_Go/internal/catalog"
	"github.com/osse101/FocusLoot_Go/internal/domain"
)

type CatalogCommand struct {
	app *app
}

func (c *CatalogCommand) Name() string {
	return "catalog"
}

func (c *CatalogCommand) Description() string {
	return "Summarize the catalog, or list what a player can receive"
}

func (c *CatalogCommand) Run(args []string) error {
	fs := c.app.flagSet(c.Name())
	level := fs.Int("level", -1, "List items open to this level (omit for a summary)")
	class := fs.String("class", "", "Player class used with -level")
	asJSON := fs.Bool("json", false, "Print items as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items := c.app.service.Catalog()
	if *level >= 0 {
		items = catalog.Eligible(items, *level, *class)
	}

	if *asJSON {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		c.app.out.Line("%s", data)
		return nil
	}

	out := c.app.out
	if *level >= 0 {
		out.Header(fmt.Sprintf("Open to level %d, class %s", *level, displayClass(*class)))
		for _, item := range items {
			out.Line("  %-24s %-16s %-9s %s", item.SKU, displayRarity(item.Rarity), item.Type, item.Name)
		}
		out.Info("%d items", len(items))
		return nil
	}

	s := catalog.Summarize(items)
	out.Header(fmt.Sprintf("Catalog: %d items", s.Total))
	for _, r := range domain.AllRarities() {
		out.Line("  %-18s %3d", displayRarity(r), s.ByTier[r])
	}
	for _, t := range domain.AllItemTypes() {
		out.Line("  %-18s %3d", t, s.ByType[t])
	}
	classes := make([]string, 0, len(s.Classes))
	for _, class := range s.Classes {
		classes = append(classes, displayClass(class))
	}
	out.Info("Class-locked items exist for: %v", classes)
	return nil
}
