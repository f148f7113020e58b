package module

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/canopy/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Bundle is the opaque, caller-supplied argument mapping handed
// unchanged to every module at every depth of a walk. The walker never
// inspects it; modules see its keys as top-level variables.
type Bundle map[string]cty.Value

// ParseBundleFile reads an HCL file whose top-level attributes define
// an argument bundle. Attributes are evaluated with the standard
// function set only; they cannot reference variables or each other.
func ParseBundleFile(ctx context.Context, path string) (Bundle, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arguments file %s: %w", path, err)
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse arguments file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("arguments file %s must contain only attributes: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{Functions: Functions()}
	bundle := make(Bundle, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate argument %q in %s: %w", name, path, diags)
		}
		bundle[name] = val
	}

	logger.Debug("Argument bundle parsed.", "path", path, "arguments", len(bundle))
	return bundle, nil
}
