// Package emitter turns a finished model into the two generated C++ source
// files. It loads the header and source templates, asks the model for its
// composition passes, serializes the observed data into constant
// declarations, and substitutes everything into the template slots. Slot
// substitution is strict: a slot token that is missing from or duplicated in
// a template fails the run instead of silently leaving the template
// untouched. Both substitutions happen in memory before either file is
// written, so a failed run leaves no partial output behind.
package emitter
