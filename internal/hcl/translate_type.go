package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/john-livingston/DNest4/internal/model"
)

// elemTypeFromExpr converts a bare `type` keyword expression (`int` or
// `real`) into the model element type. A nil expression means the attribute
// was omitted and defaults to real.
func elemTypeFromExpr(expr hcl.Expression) (model.ElemType, hcl.Diagnostics) {
	if expr == nil {
		return model.TypeReal, nil
	}

	// The attribute must be a simple keyword, not a computed expression.
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() || len(traversal) != 1 {
		return model.TypeReal, hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid type specification",
			Detail:   "The 'type' attribute must be the bare keyword 'int' or 'real'.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	switch name := traversal.RootName(); name {
	case "int":
		return model.TypeInt, nil
	case "real":
		return model.TypeReal, nil
	default:
		return model.TypeReal, hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported type",
			Detail:   fmt.Sprintf("The keyword '%s' is not a valid element type. Supported types are: int, real.", name),
			Subject:  expr.Range().Ptr(),
		}}
	}
}
