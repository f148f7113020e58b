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

// NotCallableError reports a module file that does not conform to the
// calling convention: a single expression applicable to the argument
// bundle. Kind describes what the file actually contains.
type NotCallableError struct {
	Path string
	Kind string
}

// Error implements the error interface for NotCallableError.
func (e *NotCallableError) Error() string {
	return fmt.Sprintf(
		"module %s is not callable: the file contains %s instead of a single expression; rewrite it as one HCL expression evaluated against the argument bundle",
		e.Path, e.Kind)
}

// Load reads the module file at path and invokes it with the bundle.
// Loading does not fail confusingly deep in the merge logic: any shape
// or evaluation problem is reported here, against the file's own path.
func Load(ctx context.Context, path string, bundle Bundle) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to read module %s: %w", path, err)
	}

	expr, diags := hclsyntax.ParseExpression(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		// A file that parses as a configuration body is a convention
		// violation, not a syntax error: tell the author what the file
		// actually is.
		if kind, ok := bodyKind(src, path); ok {
			return cty.NilVal, &NotCallableError{Path: path, Kind: kind}
		}
		return cty.NilVal, fmt.Errorf("failed to parse module %s: %w", path, diags)
	}
	logger.Debug("Module parsed.", "path", path)

	val, diags := expr.Value(EvalContext(bundle))
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate module %s: %w", path, diags)
	}

	logger.Debug("Module invoked.", "path", path, "result_type", val.Type().FriendlyName())
	return val, nil
}

// bodyKind reparses src as an HCL configuration body and describes its
// top-level shape. ok is false when src is not a valid body either, in
// which case the original expression diagnostics are the better report.
func bodyKind(src []byte, path string) (kind string, ok bool) {
	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return "", false
	}

	body, isSyntax := file.Body.(*hclsyntax.Body)
	if !isSyntax {
		return "", false
	}

	switch {
	case len(body.Blocks) > 0 && len(body.Attributes) > 0:
		return fmt.Sprintf("a configuration body (%d blocks, %d attributes)", len(body.Blocks), len(body.Attributes)), true
	case len(body.Blocks) > 0:
		return fmt.Sprintf("a configuration body (%d blocks)", len(body.Blocks)), true
	case len(body.Attributes) > 0:
		return fmt.Sprintf("a configuration body (%d attributes)", len(body.Attributes)), true
	default:
		return "an empty file", true
	}
}
