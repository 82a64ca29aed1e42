package model

import (
	"fmt"
	"strings"
)

// FromPrior generates the body of the initialization routine: every
// coordinate is sampled in registration order, then every derived value is
// computed in registration order.
func (m *Model) FromPrior() string {
	var b strings.Builder
	m.each(func(n *Node) {
		if n.Role() == Coordinate {
			b.WriteString(n.FromPrior())
		}
	})
	m.each(func(n *Node) {
		if n.Role() == Derived {
			b.WriteString(n.FromPrior())
		}
	})
	return b.String()
}

// Perturb generates the body of the proposal routine. One coordinate is
// chosen uniformly at random and perturbed; every derived value is then
// recomputed, since any of them may depend on the changed coordinate. The
// routine returns the accumulated log_H correction.
func (m *Model) Perturb() string {
	numCoords := 0
	m.each(func(n *Node) {
		if n.Role() == Coordinate {
			numCoords++
		}
	})

	var b strings.Builder
	b.WriteString("double log_H = 0.0;\n")
	fmt.Fprintf(&b, "int which = rng.rand_int(%d);\n", numCoords)

	k := 0
	m.each(func(n *Node) {
		if n.Role() != Coordinate {
			return
		}
		fmt.Fprintf(&b, "if(which == %d)\n{\n", k)
		b.WriteString(indent(n.Perturb(), "    "))
		b.WriteString("\n}\n")
		k++
	})

	m.each(func(n *Node) {
		if n.Role() == Derived {
			b.WriteString(n.FromPrior())
		}
	})

	b.WriteString("return log_H;\n")
	return b.String()
}

// LogLikelihood generates the body of the likelihood routine: the density
// contributions of the data nodes, in registration order, summed into logp.
func (m *Model) LogLikelihood() string {
	var b strings.Builder
	b.WriteString("double logp = 0.0;\n\n")
	m.each(func(n *Node) {
		if n.Role() == Data {
			b.WriteString(n.LogDensity())
		}
	})
	b.WriteString("\nreturn logp;")
	return b.String()
}

// PrintCode generates the body of the print routine, one space-separated
// coordinate value per statement.
func (m *Model) PrintCode() string {
	var b strings.Builder
	m.each(func(n *Node) {
		if n.Role() == Coordinate {
			b.WriteString("out<<" + n.Name() + "<<\" \";\n")
		}
	})
	return b.String()
}

// Description generates the body of the description routine: a
// comma-joined list of the coordinate names.
func (m *Model) Description() string {
	var names []string
	m.each(func(n *Node) {
		if n.Role() == Coordinate {
			names = append(names, n.Name())
		}
	})

	var b strings.Builder
	b.WriteString("string s;\n")
	for i, name := range names {
		if i == len(names)-1 {
			fmt.Fprintf(&b, "s += \"%s\";", name)
		} else {
			fmt.Fprintf(&b, "s += \"%s, \";\n", name)
		}
	}
	b.WriteString("\nreturn s;")
	return b.String()
}

// indent prefixes every line of s, which may end in a newline, without
// introducing a trailing newline of its own.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
