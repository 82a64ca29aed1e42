package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/john-livingston/DNest4/internal/ctxlog"
	"github.com/john-livingston/DNest4/internal/dist"
	"github.com/john-livingston/DNest4/internal/emitter"
	"github.com/john-livingston/DNest4/internal/model"
	"github.com/john-livingston/DNest4/internal/schema"
)

// Result is a fully translated model description: the symbolic model, the
// ordered data entries, and any output file name overrides ("" means the
// default name).
type Result struct {
	Model      *model.Model
	Data       []emitter.DataEntry
	HeaderName string
	SourceName string
}

// Loader parses and translates model description files.
type Loader struct{}

// NewLoader creates an HCL model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads one model description file.
func (l *Loader) Load(ctx context.Context, path string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding model description file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	var config schema.ModelConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", path, diags.Error())
	}

	result, err := l.translate(&config)
	if err != nil {
		return nil, err
	}
	logger.Debug("Model description loaded.",
		"path", path,
		"nodes", result.Model.Len(),
		"data_entries", len(result.Data),
	)
	return result, nil
}

// translate registers every declared node into a fresh model, coordinates
// first, then derived values, data, and prior information, each kind in
// source order.
func (l *Loader) translate(config *schema.ModelConfig) (*Result, error) {
	m := model.New()

	for _, block := range config.Coordinates {
		if err := addPriorNodes(m, block.Name, block.Type, block.Count, block.Prior, model.Coordinate); err != nil {
			return nil, err
		}
	}

	for _, block := range config.Derived {
		if err := addDerivedNodes(m, block); err != nil {
			return nil, err
		}
	}

	for _, block := range config.Data {
		if err := addPriorNodes(m, block.Name, block.Type, block.Count, block.Prior, model.Data); err != nil {
			return nil, err
		}
	}

	for _, block := range config.PriorInfo {
		if err := addPriorInfoNodes(m, block); err != nil {
			return nil, err
		}
	}

	data, err := dataEntries(config.Values)
	if err != nil {
		return nil, err
	}

	result := &Result{Model: m, Data: data}
	if config.Output != nil {
		result.HeaderName = config.Output.Header
		result.SourceName = config.Output.Source
	}
	return result, nil
}

// addPriorNodes registers the members of a coordinate or data block.
func addPriorNodes(m *model.Model, name string, typeExpr hcl.Expression, count *int, prior *schema.PriorBlock, role model.Role) error {
	if prior == nil {
		return fmt.Errorf("block %q: %s blocks require a prior block", name, role)
	}
	et, diags := elemTypeFromExpr(typeExpr)
	if diags.HasErrors() {
		return fmt.Errorf("block %q: %s", name, diags.Error())
	}
	params, err := priorParams(name, prior)
	if err != nil {
		return err
	}
	indices, err := memberIndices(name, count)
	if err != nil {
		return err
	}

	for _, idx := range indices {
		n, err := model.NewNode(et, name, makeDist(prior.Kind, params, idx), role, idx)
		if err != nil {
			return fmt.Errorf("block %q: %w", name, err)
		}
		m.Add(n)
	}
	return nil
}

// addDerivedNodes registers the members of a derived block, each carrying
// the formula with its member position substituted in.
func addDerivedNodes(m *model.Model, block *schema.DerivedBlock) error {
	et, diags := elemTypeFromExpr(block.Type)
	if diags.HasErrors() {
		return fmt.Errorf("block %q: %s", block.Name, diags.Error())
	}
	indices, err := memberIndices(block.Name, block.Count)
	if err != nil {
		return err
	}

	for _, idx := range indices {
		formula := expandIndex(block.Formula, idx)
		n, err := model.NewNode(et, block.Name, dist.NewDeterministic(formula), model.Derived, idx)
		if err != nil {
			return fmt.Errorf("block %q: %w", block.Name, err)
		}
		m.Add(n)
	}
	return nil
}

// addPriorInfoNodes registers the members of a prior_info block. The schema
// gives these blocks no prior field, so the node constructor's invariant
// holds structurally.
func addPriorInfoNodes(m *model.Model, block *schema.PriorInfoBlock) error {
	et, diags := elemTypeFromExpr(block.Type)
	if diags.HasErrors() {
		return fmt.Errorf("block %q: %s", block.Name, diags.Error())
	}
	indices, err := memberIndices(block.Name, block.Count)
	if err != nil {
		return err
	}

	for _, idx := range indices {
		n, err := model.NewNode(et, block.Name, nil, model.PriorInfo, idx)
		if err != nil {
			return fmt.Errorf("block %q: %w", block.Name, err)
		}
		m.Add(n)
	}
	return nil
}
