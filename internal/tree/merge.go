package tree

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// isMapping reports whether a value can absorb child contributions.
// Null values of mapping type are terminal like any other scalar.
func isMapping(v cty.Value) bool {
	if v.IsNull() {
		return false
	}
	return v.Type().IsObjectType() || v.Type().IsMapType()
}

// mergeNode computes a node's final namespace value. Precedence is
// fixed and deliberate: the node's own keys first, then module files,
// then subdirectories, later writers winning on collision.
//
// With an entry-point file present only subdirectory contributions are
// merged; sibling module files belong to the entry point's author, not
// to the walker. Without one, the node's value is the union of its
// module files and subdirectories. A skip-subtree marker drops the
// subdirectory contributions in either mode, and a non-mapping own
// value is returned verbatim, children untouched.
func mergeNode(n *node) (cty.Value, error) {
	own, err := n.self.Force()
	if err != nil {
		return cty.NilVal, err
	}

	if !isMapping(own) {
		return own, nil
	}

	merged := map[string]cty.Value{}
	for k, v := range own.AsValueMap() {
		merged[k] = v
	}

	if !n.hasEntryPoint {
		for _, name := range n.fileOrder {
			val, err := n.files[name].Force()
			if err != nil {
				return cty.NilVal, fmt.Errorf("in %s: %w", n.path, err)
			}
			merged[name] = val
		}
	}

	if !n.skipSubtree {
		for _, name := range n.dirOrder {
			res := n.dirs[name]
			if res.Skipped() {
				continue
			}
			val, err := res.Value().Force()
			if err != nil {
				return cty.NilVal, fmt.Errorf("in %s: %w", n.path, err)
			}
			merged[name] = val
		}
	}

	if len(merged) == 0 {
		return cty.EmptyObjectVal, nil
	}
	return cty.ObjectVal(merged), nil
}
