package dist

// Deterministic assigns the result of a formula instead of sampling. It is
// the variant carried by derived nodes, which are recomputed from the
// coordinates rather than perturbed in their own right.
type Deterministic struct {
	Formula string
}

// NewDeterministic builds a deterministic "prior" from a C++ formula.
func NewDeterministic(formula string) Deterministic {
	return Deterministic{Formula: formula}
}

// FromPrior evaluates the formula.
func (d Deterministic) FromPrior() string {
	s := "{x} = {formula};\n"
	return expand(s, "{formula}", d.Formula)
}

// Perturb re-evaluates the formula, same as FromPrior.
func (d Deterministic) Perturb() string {
	return d.FromPrior()
}

// LogDensity panics: a deterministic node has no density and must never sit
// behind a data or coordinate node.
func (d Deterministic) LogDensity() string {
	panic("dist: deterministic distribution has no log density")
}
