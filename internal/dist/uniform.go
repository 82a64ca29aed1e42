package dist

// Uniform is a bounded-uniform prior on [A, B]. A and B are C++ expressions.
type Uniform struct {
	A, B string
}

// NewUniform builds a bounded-uniform prior from pre-formatted bound
// expressions.
func NewUniform(a, b string) Uniform {
	return Uniform{A: a, B: b}
}

// FromPrior draws uniformly between the bounds.
func (u Uniform) FromPrior() string {
	s := "{x} = {a} + ({b} - ({a}))*rng.rand();\n"
	return expand(s, "{a}", u.A, "{b}", u.B)
}

// Perturb adds a heavy-tailed increment scaled to the support width, then
// wraps the value back into [A, B]. Wrapping keeps the move symmetric, so no
// log_H term is needed.
func (u Uniform) Perturb() string {
	s := "{x} += ({b} - ({a}))*rng.randh();\n"
	s += "wrap({x}, {a}, {b});\n"
	return expand(s, "{a}", u.A, "{b}", u.B)
}

// LogDensity adds -log(B-A) inside the support and floors logp at the most
// negative representable value outside it.
func (u Uniform) LogDensity() string {
	s := "if({x} < ({a}) || {x} > ({b}))\n"
	s += "    logp = -numeric_limits<double>::max();\n"
	s += "logp += -log({b} - ({a}));\n"
	return expand(s, "{a}", u.A, "{b}", u.B)
}
