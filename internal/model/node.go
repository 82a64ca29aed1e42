package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/john-livingston/DNest4/internal/dist"
)

// ElemType is the element type of a node's value in the generated C++.
type ElemType int

const (
	TypeReal ElemType = iota
	TypeInt
)

// String returns the C++ spelling of the element type.
func (t ElemType) String() string {
	if t == TypeInt {
		return "int"
	}
	return "double"
}

// Role classifies what part a node plays in the generated sampler.
type Role int

const (
	// Coordinate is a free parameter sampled from its prior and perturbed.
	Coordinate Role = iota
	// Derived is computed deterministically from coordinates and recomputed
	// whenever any coordinate changes.
	Derived
	// Data is an observed value whose prior acts as a likelihood term.
	Data
	// PriorInfo is a fixed constant, never sampled.
	PriorInfo
)

// String returns the role's configuration-file spelling.
func (r Role) String() string {
	switch r {
	case Coordinate:
		return "coordinate"
	case Derived:
		return "derived"
	case Data:
		return "data"
	case PriorInfo:
		return "prior_info"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ErrPriorInfoPrior is returned when a prior_info node is constructed with a
// prior distribution. Prior information is a constant, not a sampled value.
var ErrPriorInfoPrior = errors.New("prior_info node must not carry a prior")

// Node is a single parameter or data value. Vector members are individual
// nodes sharing a base name with a positional index suffix; index 0 denotes
// a scalar.
type Node struct {
	elemType ElemType
	base     string
	name     string
	index    int
	prior    dist.Distribution
	role     Role
}

// NewNode builds a node. A positive index gives the node the externally
// visible name base[index]. The one checked construction invariant is that a
// PriorInfo node has no prior.
func NewNode(elemType ElemType, name string, prior dist.Distribution, role Role, index int) (*Node, error) {
	if role == PriorInfo && prior != nil {
		return nil, fmt.Errorf("node %q: %w", name, ErrPriorInfoPrior)
	}
	if index < 0 {
		return nil, fmt.Errorf("node %q: index must be >= 0, got %d", name, index)
	}
	n := &Node{
		elemType: elemType,
		base:     name,
		name:     name,
		index:    index,
		prior:    prior,
		role:     role,
	}
	if index > 0 {
		n.name = fmt.Sprintf("%s[%d]", name, index)
	}
	return n, nil
}

// Name returns the node's full, possibly indexed, name.
func (n *Node) Name() string { return n.name }

// Base returns the name without any index suffix.
func (n *Node) Base() string { return n.base }

// Index returns the vector position, 0 for a scalar.
func (n *Node) Index() int { return n.index }

// Role returns the node's role tag.
func (n *Node) Role() Role { return n.role }

// ElemType returns the node's element type.
func (n *Node) ElemType() ElemType { return n.elemType }

// FromPrior emits the node's sampling statements.
func (n *Node) FromPrior() string {
	return n.substitute(n.mustPrior().FromPrior())
}

// Perturb emits the node's proposal statements.
func (n *Node) Perturb() string {
	return n.substitute(n.mustPrior().Perturb())
}

// LogDensity emits the node's density accumulation statements.
func (n *Node) LogDensity() string {
	return n.substitute(n.mustPrior().LogDensity())
}

func (n *Node) mustPrior() dist.Distribution {
	if n.prior == nil {
		panic(fmt.Sprintf("model: node %q has no prior to generate from", n.name))
	}
	return n.prior
}

func (n *Node) substitute(fragment string) string {
	return strings.ReplaceAll(fragment, dist.Placeholder, n.name)
}
