// Package schema defines the HCL shapes of a model description file. These
// structs are decode targets for gohcl; the hcl package translates them into
// the symbolic model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// PriorBlock is a labeled `prior "kind" { ... }` block. Its parameter
// attributes depend on the kind (a/b for uniform and loguniform, mu/sigma
// for normal), so the body is kept raw and interpreted by the loader.
type PriorBlock struct {
	Kind string   `hcl:"kind,label"`
	Body hcl.Body `hcl:",remain"`
}

// CoordinateBlock declares a free parameter. A count of n declares the
// vector members name[1] through name[n].
type CoordinateBlock struct {
	Name  string         `hcl:"name,label"`
	Type  hcl.Expression `hcl:"type,optional"`
	Count *int           `hcl:"count,optional"`
	Prior *PriorBlock    `hcl:"prior,block"`
}

// DerivedBlock declares a value computed from the coordinates by a formula.
type DerivedBlock struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type,optional"`
	Count   *int           `hcl:"count,optional"`
	Formula string         `hcl:"formula"`
}

// DataBlock declares an observed value whose prior is the likelihood term.
type DataBlock struct {
	Name  string         `hcl:"name,label"`
	Type  hcl.Expression `hcl:"type,optional"`
	Count *int           `hcl:"count,optional"`
	Prior *PriorBlock    `hcl:"prior,block"`
}

// PriorInfoBlock declares a fixed constant. It deliberately has no prior
// field: prior information is never sampled, and the schema makes the
// invalid state unrepresentable in the file format.
type PriorInfoBlock struct {
	Name  string         `hcl:"name,label"`
	Type  hcl.Expression `hcl:"type,optional"`
	Count *int           `hcl:"count,optional"`
}

// ValuesBlock carries the numeric values to embed in the generated source,
// one attribute per data or prior-info entry. The body stays raw so the
// loader can keep the attributes in source order.
type ValuesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// OutputBlock optionally overrides the generated file names.
type OutputBlock struct {
	Header string `hcl:"header,optional"`
	Source string `hcl:"source,optional"`
}

// ModelConfig is the top-level structure of a model description file.
type ModelConfig struct {
	Coordinates []*CoordinateBlock `hcl:"coordinate,block"`
	Derived     []*DerivedBlock    `hcl:"derived,block"`
	Data        []*DataBlock       `hcl:"data,block"`
	PriorInfo   []*PriorInfoBlock  `hcl:"prior_info,block"`
	Values      *ValuesBlock       `hcl:"values,block"`
	Output      *OutputBlock       `hcl:"output,block"`
}
