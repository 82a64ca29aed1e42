package dist

import "strings"

// Placeholder is the generic variable token every fragment is emitted
// against. Keeping it in one constant stops the substitution contract from
// drifting between distributions and nodes.
const Placeholder = "{x}"

// Distribution is the closed interface over the four prior variants. All
// parameters are carried as already-formatted C++ expressions (a number
// literal, a node name, or a formula), so a Normal's mean can reference a
// derived node just as easily as a constant.
type Distribution interface {
	// FromPrior emits statements drawing a fresh value for the placeholder
	// variable from the prior.
	FromPrior() string

	// Perturb emits statements proposing a new value for an existing
	// placeholder variable, including any log_H bookkeeping the proposal
	// needs to stay a valid Metropolis-Hastings move.
	Perturb() string

	// LogDensity emits statements adding the log-density at the current
	// value into the logp accumulator, with the support check. Panics for
	// Deterministic, which has no density.
	LogDensity() string
}

// expand substitutes parameter tokens into a fragment template. Pairs is an
// alternating token/value list, e.g. "{a}", "0.5".
func expand(fragment string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(fragment)
}
