package emitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/john-livingston/DNest4/internal/ctxlog"
	"github.com/john-livingston/DNest4/internal/model"
)

// Template and output file names. The templates are looked up in the
// emitter's template directory; the outputs land in its output directory.
const (
	HeaderTemplateName = "MyModel.h.template"
	SourceTemplateName = "MyModel.cpp.template"
	HeaderFileName     = "MyModel.h"
	SourceFileName     = "MyModel.cpp"
)

// Emitter fills the header and source templates for one generation run.
// HeaderName and SourceName may be overridden before Emit to rename the
// output files.
type Emitter struct {
	templateDir string
	outputDir   string

	HeaderName string
	SourceName string
}

// New builds an emitter reading templates from templateDir and writing the
// generated files into outputDir.
func New(templateDir, outputDir string) *Emitter {
	return &Emitter{
		templateDir: templateDir,
		outputDir:   outputDir,
		HeaderName:  HeaderFileName,
		SourceName:  SourceFileName,
	}
}

// Emit generates both output files from the model and data. Both templates
// are substituted in memory first; nothing is written unless every slot in
// both templates resolves.
func (e *Emitter) Emit(ctx context.Context, m *model.Model, data []DataEntry) error {
	logger := ctxlog.FromContext(ctx)

	if err := validateDataCoverage(ctx, m, data); err != nil {
		return err
	}

	header, err := e.RenderHeader(m)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", e.HeaderName, err)
	}
	source, err := e.RenderSource(m, data)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", e.SourceName, err)
	}

	headerPath := filepath.Join(e.outputDir, e.HeaderName)
	if err := os.WriteFile(headerPath, []byte(header), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", headerPath, err)
	}
	logger.Info("Wrote generated header.", "path", headerPath)

	sourcePath := filepath.Join(e.outputDir, e.SourceName)
	if err := os.WriteFile(sourcePath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", sourcePath, err)
	}
	logger.Info("Wrote generated source.", "path", sourcePath)

	return nil
}

// RenderHeader fills the header template's declarations slot.
func (e *Emitter) RenderHeader(m *model.Model) (string, error) {
	template, err := os.ReadFile(filepath.Join(e.templateDir, HeaderTemplateName))
	if err != nil {
		return "", err
	}

	declarations, err := declarations(m)
	if err != nil {
		return "", err
	}

	return substituteSlot(string(template), SlotDeclarations, declarations)
}

// RenderSource fills every slot of the source template: the four pass
// bodies, the serialized data constants, and the constructor initializer
// list sizing each sampled vector.
func (e *Emitter) RenderSource(m *model.Model, data []DataEntry) (string, error) {
	template, err := os.ReadFile(filepath.Join(e.templateDir, SourceTemplateName))
	if err != nil {
		return "", err
	}

	statics, err := staticDeclarations(m, data)
	if err != nil {
		return "", err
	}

	s := string(template)
	for _, sub := range []struct {
		token, text string
	}{
		{SlotFromPrior, indentBody(m.FromPrior())},
		{SlotPerturb, indentBody(m.Perturb())},
		{SlotLogLikelihood, indentBody(m.LogLikelihood())},
		{SlotPrint, indentBody(m.PrintCode())},
		{SlotDescription, indentBody(m.Description())},
		{SlotStaticDeclarations, statics},
		{SlotInitializerList, initializerList(m)},
	} {
		if s, err = substituteSlot(s, sub.token, sub.text); err != nil {
			return "", err
		}
	}
	return s, nil
}

// validateDataCoverage enforces the pairing between declarations and
// embedded constants: every data and prior-info group declared in the header
// needs a value entry to define it. Entries that match no registered group
// are emitted anyway but flagged, since the header will not declare them.
func validateDataCoverage(ctx context.Context, m *model.Model, data []DataEntry) error {
	have := make(map[string]bool, len(data))
	for _, entry := range data {
		have[entry.Name] = true
	}

	known := make(map[string]bool)
	for _, role := range []model.Role{model.Data, model.PriorInfo} {
		for _, name := range append(m.VectorNames(role), m.ScalarNames(role)...) {
			known[name] = true
			if !have[name] {
				return fmt.Errorf("%s group %q has no value entry to define it", role, name)
			}
		}
	}

	logger := ctxlog.FromContext(ctx)
	for _, entry := range data {
		if !known[entry.Name] {
			logger.Warn("Value entry matches no registered data or prior_info group; the header will not declare it.", "name", entry.Name)
		}
	}
	return nil
}

// declarations builds the header's member declaration block: the known
// (data and prior-info) groups as static constants, then the unknown
// (coordinate and derived) groups as mutable members, vectors before
// scalars, all in registration order.
func declarations(m *model.Model) (string, error) {
	var b strings.Builder

	known := append(m.VectorNames(model.Data), m.VectorNames(model.PriorInfo)...)
	for _, vec := range known {
		et, err := m.VectorElemType(vec)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "        static const std::vector<%s> %s;\n", et, vec)
	}
	for _, name := range append(m.ScalarNames(model.Data), m.ScalarNames(model.PriorInfo)...) {
		n, _ := m.Node(name)
		fmt.Fprintf(&b, "        static const %s %s;\n", n.ElemType(), name)
	}

	b.WriteString("\n")

	unknown := append(m.VectorNames(model.Coordinate), m.VectorNames(model.Derived)...)
	for _, vec := range unknown {
		et, err := m.VectorElemType(vec)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "        std::vector<%s> %s;\n", et, vec)
	}
	for _, name := range append(m.ScalarNames(model.Coordinate), m.ScalarNames(model.Derived)...) {
		n, _ := m.Node(name)
		fmt.Fprintf(&b, "        %s %s;\n", n.ElemType(), name)
	}

	return b.String(), nil
}

// initializerList builds the constructor initializer list sizing every
// coordinate and derived vector, e.g. ":mu(100),y(100)". Empty when the
// model has no sampled vectors.
func initializerList(m *model.Model) string {
	vecs := append(m.VectorNames(model.Coordinate), m.VectorNames(model.Derived)...)
	if len(vecs) == 0 {
		return ""
	}
	parts := make([]string, len(vecs))
	for i, vec := range vecs {
		parts[i] = fmt.Sprintf("%s(%d)", vec, m.VectorSize(vec))
	}
	return ":" + strings.Join(parts, ",")
}
