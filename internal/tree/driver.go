package tree

import (
	"context"
	"fmt"

	"github.com/vk/canopy/internal/ctxlog"
	"github.com/vk/canopy/internal/fsutil"
	"github.com/vk/canopy/internal/module"
	"github.com/vk/canopy/pkg/lazy"
	"github.com/zclconf/go-cty/cty"
)

// RootSkippedError is returned when the requested root itself carries
// the skip-tree marker. There is no sensible empty-namespace fallback
// for a root that asks to be erased, so this is fatal.
type RootSkippedError struct {
	Path string
}

// Error implements the error interface for RootSkippedError.
func (e *RootSkippedError) Error() string {
	return fmt.Sprintf("root %s is marked %s and cannot be loaded", e.Path, fsutil.MarkerSkipTree)
}

// Load walks the module tree rooted at rootPath and returns the merged
// namespace as a deferred value. Forcing is the caller's choice: force
// the thunk immediately for fail-fast behavior, or hold on to it and
// fail only on access.
func Load(ctx context.Context, rootPath string, bundle module.Bundle) (*lazy.Thunk[cty.Value], error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading module tree.", "root", rootPath)

	res, err := Walk(ctx, rootPath, true, bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to walk root %s: %w", rootPath, err)
	}
	if res.Skipped() {
		return nil, &RootSkippedError{Path: rootPath}
	}
	return res.Value(), nil
}
