// Package dist defines the closed set of prior distributions a model node
// can carry, and the C++ code fragments each one knows how to emit. A
// distribution is a pure fragment producer: given its parameters it emits
// sampling (FromPrior), proposal (Perturb), and density accumulation
// (LogDensity) statements against the generic Placeholder token. The node
// that owns the distribution substitutes its concrete name afterwards, so a
// single distribution value is reusable across any number of nodes.
package dist
