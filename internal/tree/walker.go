package tree

import (
	"context"
	"path/filepath"

	"github.com/vk/canopy/internal/ctxlog"
	"github.com/vk/canopy/internal/fsutil"
	"github.com/vk/canopy/internal/module"
	"github.com/vk/canopy/pkg/lazy"
	"github.com/zclconf/go-cty/cty"
)

// node holds everything the merge step needs for one directory.
type node struct {
	path          string
	self          *lazy.Thunk[cty.Value]
	hasEntryPoint bool
	skipSubtree   bool

	// Deferred loads for this directory's non-entry-point module
	// files, and results for its subdirectories, each with a
	// deterministic key order (os.ReadDir is sorted).
	files     map[string]*lazy.Thunk[cty.Value]
	fileOrder []string
	dirs      map[string]Result
	dirOrder  []string
}

// Walk processes one directory node of a module tree. isRoot marks the
// synthetic root, which is never loaded as a module itself; only its
// children contribute. The returned error covers only this node's own
// directory listing: deeper failures are captured inside the value and
// surface when it is forced, so one branch cannot poison its siblings.
func Walk(ctx context.Context, path string, isRoot bool, bundle module.Bundle) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	entries, err := fsutil.ListVisible(path)
	if err != nil {
		return Result{}, err
	}

	skipTree := false
	skipSubtree := false
	for _, e := range entries {
		switch e.Name {
		case fsutil.MarkerSkipTree:
			skipTree = true
		case fsutil.MarkerSkipSubtree:
			skipSubtree = true
		}
	}
	if skipTree {
		// The node and its whole subtree are erased: no loading, no
		// recursion, nothing contributed to the parent.
		logger.Debug("Directory marked skip-tree, erasing subtree.", "path", path)
		return skipResult(), nil
	}

	n := &node{
		path:        path,
		skipSubtree: skipSubtree,
		files:       map[string]*lazy.Thunk[cty.Value]{},
		dirs:        map[string]Result{},
	}

	for _, e := range entries {
		if e.IsDir {
			continue
		}
		name, ok := fsutil.ModuleName(e.Name)
		if !ok {
			continue
		}
		modulePath := filepath.Join(path, e.Name)
		thunk := lazy.New(func() (cty.Value, error) {
			return module.Load(ctx, modulePath, bundle)
		})
		if name == fsutil.EntryPointName {
			n.hasEntryPoint = true
			n.self = thunk
			continue
		}
		n.files[name] = thunk
		n.fileOrder = append(n.fileOrder, name)
	}

	// The synthetic root is never loaded as a module, even when an
	// entry-point file is present.
	if isRoot || !n.hasEntryPoint {
		n.self = lazy.Of(cty.EmptyObjectVal)
	}

	// Recursion is unconditional, independent of skip-subtree, so a
	// failure deeper in a dropped branch still exists as a value and
	// surfaces if anyone forces it.
	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		subPath := filepath.Join(path, e.Name)
		res, err := Walk(ctx, subPath, false, bundle)
		if err != nil {
			walkErr := err
			res = okResult(lazy.New(func() (cty.Value, error) {
				return cty.NilVal, walkErr
			}))
		}
		if _, shadowed := n.files[e.Name]; shadowed && !n.hasEntryPoint {
			logger.Warn("Module file shadowed by subdirectory with the same name.",
				"dir", subPath, "file", filepath.Join(path, e.Name+fsutil.Ext))
		}
		n.dirs[e.Name] = res
		n.dirOrder = append(n.dirOrder, e.Name)
	}

	return okResult(lazy.New(func() (cty.Value, error) {
		return mergeNode(n)
	})), nil
}
