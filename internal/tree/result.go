package tree

import (
	"github.com/vk/canopy/pkg/lazy"
	"github.com/zclconf/go-cty/cty"
)

// Result is the outcome of walking one directory node: either the node
// is skipped, contributing nothing to its parent, or it carries a
// deferred namespace value. The zero Result is invalid; construct one
// with skipResult or okResult.
type Result struct {
	skipped bool
	value   *lazy.Thunk[cty.Value]
}

// Skipped reports whether the node and everything beneath it were
// erased from the namespace.
func (r Result) Skipped() bool {
	return r.skipped
}

// Value returns the node's deferred namespace value. It panics for a
// skipped result: callers must check Skipped first.
func (r Result) Value() *lazy.Thunk[cty.Value] {
	if r.value == nil {
		panic("tree: Value called on a skipped result")
	}
	return r.value
}

func skipResult() Result {
	return Result{skipped: true}
}

func okResult(value *lazy.Thunk[cty.Value]) Result {
	return Result{value: value}
}
