package emitter

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/john-livingston/DNest4/internal/model"
)

// DataEntry is one observed value or prior constant to embed in the
// generated source: a number, or an ordered sequence of numbers. Entries
// keep the order they were declared in, and that order is the order of the
// emitted constants.
type DataEntry struct {
	Name  string
	Value cty.Value
}

// staticDeclarations serializes every data entry into a constant definition,
// e.g.
//
//	const std::vector<double> MyModel::t{1.2, 3.4};
//	const int MyModel::N{5};
//
// The element type comes from the registered node of the same name when the
// model has one, otherwise it is inferred from the value. Anything that is
// not a number or a sequence of numbers is a hard error.
func staticDeclarations(m *model.Model, data []DataEntry) (string, error) {
	var b strings.Builder
	for _, entry := range data {
		decl, err := staticDeclaration(m, entry)
		if err != nil {
			return "", err
		}
		b.WriteString(decl)
	}
	return b.String(), nil
}

func staticDeclaration(m *model.Model, entry DataEntry) (string, error) {
	v := entry.Value
	if v.IsNull() || !v.IsKnown() {
		return "", fmt.Errorf("data entry %q: value must be a known, non-null number or sequence", entry.Name)
	}

	if v.Type().IsTupleType() || v.Type().IsListType() {
		return vectorDeclaration(m, entry)
	}
	if v.Type() == cty.Number {
		et := entryElemType(m, entry.Name, v)
		lit, err := numberLiteral(v, et, entry.Name)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("const %s MyModel::%s{%s};\n", et, entry.Name, lit), nil
	}
	return "", fmt.Errorf("data entry %q: unsupported element type %s", entry.Name, v.Type().FriendlyName())
}

func vectorDeclaration(m *model.Model, entry DataEntry) (string, error) {
	var elems []cty.Value
	it := entry.Value.ElementIterator()
	for it.Next() {
		_, ev := it.Element()
		if ev.Type() != cty.Number {
			return "", fmt.Errorf("data entry %q: unsupported element type %s", entry.Name, ev.Type().FriendlyName())
		}
		elems = append(elems, ev)
	}
	if len(elems) == 0 {
		return "", fmt.Errorf("data entry %q: sequence must not be empty", entry.Name)
	}

	et := entryElemType(m, fmt.Sprintf("%s[1]", entry.Name), elems...)

	lits := make([]string, len(elems))
	for i, ev := range elems {
		lit, err := numberLiteral(ev, et, entry.Name)
		if err != nil {
			return "", err
		}
		lits[i] = lit
	}
	return fmt.Sprintf("const std::vector<%s> MyModel::%s{%s};\n", et, entry.Name, strings.Join(lits, ", ")), nil
}

// entryElemType resolves the C++ element type of a data entry. The
// registered node wins when one exists, keeping the constant's type in step
// with the declarations block; otherwise the values decide, and integral
// values everywhere mean int.
func entryElemType(m *model.Model, memberName string, values ...cty.Value) model.ElemType {
	if n, ok := m.Node(memberName); ok {
		return n.ElemType()
	}
	for _, v := range values {
		if !v.AsBigFloat().IsInt() {
			return model.TypeReal
		}
	}
	return model.TypeInt
}

// numberLiteral formats a cty number as C++ source text.
func numberLiteral(v cty.Value, et model.ElemType, name string) (string, error) {
	bf := v.AsBigFloat()
	if et == model.TypeInt {
		if !bf.IsInt() {
			return "", fmt.Errorf("data entry %q: value %s is not an integer", name, bf.Text('g', -1))
		}
		i, _ := bf.Int64()
		return fmt.Sprintf("%d", i), nil
	}
	return bf.Text('g', -1), nil
}
