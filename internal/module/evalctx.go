package module

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// EvalContext builds the context a module is invoked with: the bundle's
// entries as top-level variables plus the fixed function set.
func EvalContext(bundle Bundle) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: bundle,
		Functions: Functions(),
	}
}

// Functions returns the function set available inside module files.
// The set is fixed: modules are declarative and must not depend on
// which invocation evaluated them.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":       stdlib.AbsoluteFunc,
		"ceil":      stdlib.CeilFunc,
		"chomp":     stdlib.ChompFunc,
		"coalesce":  stdlib.CoalesceFunc,
		"concat":    stdlib.ConcatFunc,
		"contains":  stdlib.ContainsFunc,
		"flatten":   stdlib.FlattenFunc,
		"floor":     stdlib.FloorFunc,
		"format":    stdlib.FormatFunc,
		"join":      stdlib.JoinFunc,
		"keys":      stdlib.KeysFunc,
		"length":    stdlib.LengthFunc,
		"lookup":    stdlib.LookupFunc,
		"lower":     stdlib.LowerFunc,
		"max":       stdlib.MaxFunc,
		"merge":     stdlib.MergeFunc,
		"min":       stdlib.MinFunc,
		"range":     stdlib.RangeFunc,
		"split":     stdlib.SplitFunc,
		"trimspace": stdlib.TrimSpaceFunc,
		"upper":     stdlib.UpperFunc,
		"values":    stdlib.ValuesFunc,
	}
}
