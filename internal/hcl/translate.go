package hcl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/john-livingston/DNest4/internal/dist"
	"github.com/john-livingston/DNest4/internal/emitter"
	"github.com/john-livingston/DNest4/internal/schema"
)

// indexToken is replaced, inside string parameters and formulas of counted
// blocks, with each member's index. Member indices are 1-based, matching the
// member names the other fragments emit, so `mu[{i}]` in a data prior refers
// to the derived member defined in the same position. Zero-based access into
// an embedded data array is written as `t[{i}-1]`, which stays valid C++
// after substitution.
const indexToken = "{i}"

// priorParamNames lists the required parameter attributes per prior kind.
var priorParamNames = map[string][]string{
	"uniform":    {"a", "b"},
	"loguniform": {"a", "b"},
	"normal":     {"mu", "sigma"},
}

// memberIndices expands an optional count into node indices: nil or absent
// count means one scalar (index 0), count n means members 1..n.
func memberIndices(name string, count *int) ([]int, error) {
	if count == nil {
		return []int{0}, nil
	}
	if *count < 1 {
		return nil, fmt.Errorf("block %q: count must be >= 1, got %d", name, *count)
	}
	indices := make([]int, *count)
	for i := range indices {
		indices[i] = i + 1
	}
	return indices, nil
}

// expandIndex substitutes the member index into a parameter string. A
// scalar node (index 0) keeps its text untouched.
func expandIndex(s string, index int) string {
	if index == 0 {
		return s
	}
	return strings.ReplaceAll(s, indexToken, strconv.Itoa(index))
}

// priorParams reads and formats the parameter attributes of a prior block.
// Unknown kinds, missing parameters, and stray attributes are all errors.
func priorParams(owner string, block *schema.PriorBlock) (map[string]string, error) {
	want, ok := priorParamNames[block.Kind]
	if !ok {
		return nil, fmt.Errorf("block %q: unknown prior kind %q (want uniform, loguniform, or normal)", owner, block.Kind)
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("block %q: invalid prior parameters: %s", owner, diags.Error())
	}

	params := make(map[string]string, len(want))
	for _, name := range want {
		attr, ok := attrs[name]
		if !ok {
			return nil, fmt.Errorf("block %q: prior %q is missing parameter %q", owner, block.Kind, name)
		}
		s, err := paramString(attr.Expr)
		if err != nil {
			return nil, fmt.Errorf("block %q: prior parameter %q: %w", owner, name, err)
		}
		params[name] = s
	}

	for name := range attrs {
		known := false
		for _, w := range want {
			if name == w {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("block %q: prior %q does not take parameter %q", owner, block.Kind, name)
		}
	}
	return params, nil
}

// paramString renders a prior parameter expression as C++ text. A bare
// identifier refers to another node and becomes its name; a number becomes
// its literal; a quoted string is taken verbatim, which is how formulas and
// indexed references are written.
func paramString(expr hcl.Expression) (string, error) {
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() && len(traversal) == 1 {
		return traversal.RootName(), nil
	}

	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("cannot evaluate expression: %s", diags.Error())
	}
	switch v.Type() {
	case cty.Number:
		return v.AsBigFloat().Text('g', -1), nil
	case cty.String:
		return v.AsString(), nil
	default:
		return "", fmt.Errorf("must be a number, a node name, or a string, got %s", v.Type().FriendlyName())
	}
}

// makeDist instantiates a distribution for one member, with the member
// position already substituted into the parameters.
func makeDist(kind string, params map[string]string, index int) dist.Distribution {
	switch kind {
	case "uniform":
		return dist.NewUniform(expandIndex(params["a"], index), expandIndex(params["b"], index))
	case "loguniform":
		return dist.NewLogUniform(expandIndex(params["a"], index), expandIndex(params["b"], index))
	case "normal":
		return dist.NewNormal(expandIndex(params["mu"], index), expandIndex(params["sigma"], index))
	}
	panic(fmt.Sprintf("hcl: unreachable prior kind %q", kind))
}

// dataEntries reads the values block into emitter data entries, keeping the
// attributes in source order so the emitted constants match the file.
func dataEntries(block *schema.ValuesBlock) ([]emitter.DataEntry, error) {
	if block == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("values block: %s", diags.Error())
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	entries := make([]emitter.DataEntry, 0, len(ordered))
	for _, attr := range ordered {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("values block: attribute %q: %s", attr.Name, diags.Error())
		}
		entries = append(entries, emitter.DataEntry{Name: attr.Name, Value: v})
	}
	return entries, nil
}
