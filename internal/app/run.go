package app

import (
	"context"
	"fmt"

	"github.com/vk/canopy/internal/ctxlog"
	"github.com/vk/canopy/internal/module"
	"github.com/vk/canopy/internal/tree"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Run executes one load: build the argument bundle, walk the module
// tree, force the merged namespace, and render it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	bundle := module.Bundle{}
	if a.config.ArgsPath != "" {
		var err error
		bundle, err = module.ParseBundleFile(ctx, a.config.ArgsPath)
		if err != nil {
			return fmt.Errorf("failed to build argument bundle: %w", err)
		}
	}

	thunk, err := tree.Load(ctx, a.config.RootPath, bundle)
	if err != nil {
		return err
	}

	// The CLI is an eager consumer: force the whole namespace up front
	// so faults surface before anything is printed.
	value, err := thunk.Force()
	if err != nil {
		return fmt.Errorf("failed to evaluate namespace: %w", err)
	}

	a.logger.Info("Namespace loaded successfully.", "root", a.config.RootPath, "top_level_keys", topLevelKeys(value))
	return a.render(value)
}

// topLevelKeys counts the namespace's direct children for logging.
func topLevelKeys(v cty.Value) int {
	if v.IsNull() || !v.Type().IsObjectType() {
		return 0
	}
	return len(v.Type().AttributeTypes())
}

// render writes the merged namespace to the output writer.
func (a *App) render(value cty.Value) error {
	if a.config.Output == "none" {
		return nil
	}

	out, err := ctyjson.Marshal(value, value.Type())
	if err != nil {
		return fmt.Errorf("failed to encode namespace as JSON: %w", err)
	}
	if _, err := a.outW.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("failed to write namespace: %w", err)
	}
	return nil
}
