// Package model holds the symbolic representation of a probabilistic model:
// nodes binding a name, an element type, a role, and a prior distribution,
// registered into an insertion-ordered Model. The Model is the compilation
// unit: each composition pass walks the registry once and concatenates the
// per-node fragments into one of the generated routines (initialization,
// perturbation, likelihood, output). Registration order is load-bearing:
// fragments are emitted in the order nodes were added, with every coordinate
// emitted before any derived value, because derived values are functions of
// the coordinates.
package model
