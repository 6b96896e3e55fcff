// Package cli defines the kong command surface. Every command advances the
// engine clock first, so rollovers and scheduled messages are never missed
// regardless of which command wakes the process.
package cli

import (
	"fmt"
	"strings"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/engine"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// Advance loads the store and runs the time-driven transitions. Freshly
// delivered messages are announced so they are not silently buried.
func (ctx *Context) Advance() error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	batch, err := ctx.Engine.Tick()
	if err != nil {
		return fmt.Errorf("failed to advance day state: %w", err)
	}
	if len(batch) > 0 {
		fmt.Printf("You have %d new message(s) in your inbox.\n\n", len(batch))
	}
	return nil
}

// findTasbih resolves a reference to a tasbih by exact id or case-insensitive
// name, including the general singleton.
func findTasbih(ctx *Context, ref string) (models.Tasbih, error) {
	general, err := ctx.Store.GetGeneralTasbih()
	if err != nil {
		return models.Tasbih{}, err
	}
	if ref == "" || ref == constants.GeneralTasbihID || strings.EqualFold(ref, general.Name) {
		return general, nil
	}

	tasbihs, err := ctx.Store.GetTasbihs()
	if err != nil {
		return models.Tasbih{}, err
	}
	for _, t := range tasbihs {
		if t.ID == ref || strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	return models.Tasbih{}, fmt.Errorf("no tasbih matches %q", ref)
}

// findTarget resolves a reference to a target by exact id or name.
func findTarget(ctx *Context, ref string) (models.TargetAmol, error) {
	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return models.TargetAmol{}, err
	}
	for _, t := range targets {
		if t.ID == ref || strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	return models.TargetAmol{}, fmt.Errorf("no target matches %q", ref)
}

// treeStage maps a tree's count snapshot to its growth stage label.
func treeStage(count int) string {
	switch {
	case count < 200:
		return "sprout"
	case count < 300:
		return "sapling"
	default:
		return "full tree"
	}
}
