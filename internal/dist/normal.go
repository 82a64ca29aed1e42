package dist

// Normal is an unbounded normal prior. Mu and Sigma are C++ expressions, so
// a data node's mean can be another node's name or a formula.
type Normal struct {
	Mu, Sigma string
}

// NewNormal builds a normal prior from pre-formatted mean and scale
// expressions.
func NewNormal(mu, sigma string) Normal {
	return Normal{Mu: mu, Sigma: sigma}
}

// FromPrior draws mu + sigma*z for a standard-normal z.
func (n Normal) FromPrior() string {
	s := "{x} = {mu} + {sigma}*rng.randn();\n"
	return expand(s, "{mu}", n.Mu, "{sigma}", n.Sigma)
}

// Perturb adds a scaled heavy-tailed increment with no wrap. The proposal is
// not symmetric in density terms, so the statements bracket the mutation:
// log_H loses the log-density at the old value and gains it back at the new
// one.
func (n Normal) Perturb() string {
	s := "log_H -= -0.5*pow((({x}) - ({mu}))/({sigma}), 2);\n"
	s += "{x} += ({sigma})*rng.randh();\n"
	s += "log_H += -0.5*pow((({x}) - ({mu}))/({sigma}), 2);\n"
	return expand(s, "{mu}", n.Mu, "{sigma}", n.Sigma)
}

// LogDensity adds the full normal log-density, normalising constant included.
func (n Normal) LogDensity() string {
	s := "logp += -0.5*log(2*M_PI) - log({sigma}) "
	s += "- 0.5*pow((({x}) - ({mu}))/({sigma}), 2);\n"
	return expand(s, "{mu}", n.Mu, "{sigma}", n.Sigma)
}
