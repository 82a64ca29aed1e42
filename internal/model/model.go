package model

// Model is an insertion-ordered registry of nodes, keyed by full node name.
// Re-registering a name replaces the node in place, keeping its original
// position. No pass mutates the registry, so every pass is a pure function
// of its current content and may be re-run with identical results.
type Model struct {
	order []string
	nodes map[string]*Node
}

// New returns an empty model.
func New() *Model {
	return &Model{nodes: make(map[string]*Node)}
}

// Add registers a node under its full name. Last write wins.
func (m *Model) Add(n *Node) {
	if _, ok := m.nodes[n.Name()]; !ok {
		m.order = append(m.order, n.Name())
	}
	m.nodes[n.Name()] = n
}

// Len returns the number of registered nodes.
func (m *Model) Len() int { return len(m.order) }

// Node looks up a node by full name.
func (m *Model) Node(name string) (*Node, bool) {
	n, ok := m.nodes[name]
	return n, ok
}

// Names returns the registered full names in insertion order.
func (m *Model) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// each calls fn for every node in insertion order.
func (m *Model) each(fn func(*Node)) {
	for _, name := range m.order {
		fn(m.nodes[name])
	}
}
