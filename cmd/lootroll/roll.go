package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/logger"
)

var errDropMismatch = errors.New("reported drop does not match the session")

type RollCommand struct {
	app *app
}

func (c *RollCommand) Name() string {
	return "roll"
}

func (c *RollCommand) Description() string {
	return "Roll the loot for one finished session"
}

func (c *RollCommand) Run(args []string) error {
	fs := c.app.flagSet(c.Name())
	session := bindSessionFlags(fs)
	asJSON := fs.Bool("json", false, "Print the drop as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := session.context()
	if err != nil {
		return err
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	drop := c.app.service.RollLoot(ctx, s)

	if *asJSON {
		data, err := json.MarshalIndent(dropView(drop), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode drop: %w", err)
		}
		c.app.out.Line("%s", data)
		return nil
	}

	out := c.app.out
	switch {
	case drop.Gated:
		out.Warning("Session %q did not pass the drop gate", drop.SessionID)
	case !drop.HasItem():
		out.Warning("Rolled %s but nothing in that tier is open to level %d, class %s",
			displayRarity(drop.Rarity), s.PlayerLevel, displayClass(s.PlayerClass))
	default:
		out.Success("%s: %s [%s]", displayRarity(drop.Rarity), drop.Item.Name, drop.Item.SKU)
		if drop.Item.Rarity != drop.Rarity {
			out.Info("Downgraded to %s", displayRarity(drop.Item.Rarity))
		}
	}
	return nil
}

// dropJSON is the machine-readable form of a drop.
type dropJSON struct {
	SessionID string           `json:"session_id"`
	Gated     bool             `json:"gated"`
	Rarity    *domain.Rarity   `json:"rarity,omitempty"`
	Item      *domain.LootItem `json:"item"`
}

func dropView(d domain.Drop) dropJSON {
	v := dropJSON{SessionID: d.SessionID, Gated: d.Gated, Item: d.Item}
	if !d.Gated {
		r := d.Rarity
		v.Rarity = &r
	}
	return v
}

type VerifyCommand struct {
	app *app
}

func (c *VerifyCommand) Name() string {
	return "verify"
}

func (c *VerifyCommand) Description() string {
	return "Check a reported drop against its session (empty -sku checks a no-item result)"
}

func (c *VerifyCommand) Run(args []string) error {
	fs := c.app.flagSet(c.Name())
	session := bindSessionFlags(fs)
	sku := fs.String("sku", "", "Reported item SKU")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := session.context()
	if err != nil {
		return err
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	ok, err := c.app.service.VerifyDrop(ctx, s, *sku)
	if err != nil {
		return err
	}

	reported := *sku
	if reported == "" {
		reported = "no item"
	}
	if !ok {
		c.app.out.Error("Session %q does not award %s", s.SessionID, reported)
		return errDropMismatch
	}
	c.app.out.Success("Session %q awards %s", s.SessionID, reported)
	return nil
}
