// Package hcl loads a declarative model description file and translates it
// into the symbolic model plus the data entries the emitter embeds in the
// generated source. Parsing uses hclparse and gohcl against the schema
// package's structs; translation walks the decoded blocks role by role,
// registering coordinates first, then derived values, data, and prior
// information, each in source order.
package hcl
