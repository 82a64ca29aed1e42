package dist

// LogUniform is a log-uniform prior on [A, B], with both bounds positive.
// Sampling and perturbation happen in log space; the density is evaluated on
// the linear value.
type LogUniform struct {
	A, B string
}

// NewLogUniform builds a log-uniform prior from pre-formatted bound
// expressions.
func NewLogUniform(a, b string) LogUniform {
	return LogUniform{A: a, B: b}
}

// FromPrior draws uniformly in log space and exponentiates.
func (l LogUniform) FromPrior() string {
	s := "{x} = exp(log({a}) + log(({b})/({a}))*rng.rand());\n"
	return expand(s, "{a}", l.A, "{b}", l.B)
}

// Perturb moves to log space, steps, wraps within the log bounds, and moves
// back. The log_H correction for the change of coordinate is exactly
// cancelled by the log-uniform density, so none is emitted.
func (l LogUniform) Perturb() string {
	s := "{x} = log({x});\n"
	s += "{x} += log(({b})/({a}))*rng.randh();\n"
	s += "wrap({x}, log({a}), log({b}));\n"
	s += "{x} = exp({x});\n"
	return expand(s, "{a}", l.A, "{b}", l.B)
}

// LogDensity adds -log(x) - log(B/A) inside the support, with the same
// floor-to-minimum support check as Uniform.
func (l LogUniform) LogDensity() string {
	s := "if({x} < ({a}) || {x} > ({b}))\n"
	s += "    logp = -numeric_limits<double>::max();\n"
	s += "logp += -log({x}) - log(({b})/({a}));\n"
	return expand(s, "{a}", l.A, "{b}", l.B)
}
