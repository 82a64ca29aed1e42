package model

import "fmt"

// VectorNames returns the base names, in registration order, of the vector
// groups of a role, meaning bases with at least one indexed member.
func (m *Model) VectorNames(role Role) []string {
	seen := make(map[string]bool)
	var vecs []string
	m.each(func(n *Node) {
		if n.Role() == role && n.Index() != 0 && !seen[n.Base()] {
			seen[n.Base()] = true
			vecs = append(vecs, n.Base())
		}
	})
	return vecs
}

// ScalarNames returns the names, in registration order, of a role's scalar
// members: index-0 nodes whose base does not belong to a vector group.
func (m *Model) ScalarNames(role Role) []string {
	vecs := make(map[string]bool)
	for _, v := range m.VectorNames(role) {
		vecs[v] = true
	}
	var scalars []string
	m.each(func(n *Node) {
		if n.Role() == role && !vecs[n.Base()] {
			scalars = append(scalars, n.Name())
		}
	})
	return scalars
}

// VectorSize returns the member count of a vector group, counting every
// registered node sharing the base name.
func (m *Model) VectorSize(base string) int {
	count := 0
	m.each(func(n *Node) {
		if n.Base() == base {
			count++
		}
	})
	return count
}

// VectorElemType resolves the element type of a vector group from its first
// registered member.
func (m *Model) VectorElemType(base string) (ElemType, error) {
	var (
		found bool
		et    ElemType
	)
	m.each(func(n *Node) {
		if !found && n.Base() == base && n.Index() != 0 {
			found = true
			et = n.ElemType()
		}
	})
	if !found {
		return TypeReal, fmt.Errorf("vector %q has no registered members", base)
	}
	return et, nil
}
