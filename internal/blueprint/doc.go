// Package blueprint describes layout trees as data.
//
// A Blueprint is a YAML or TOML document mirroring the builders and modifiers
// of package backer. Build turns it into a tree over [Canvas], whose leaves
// record the rectangles they are drawn in. The backer command uses this to
// dump and preview layouts without writing Go.
package blueprint
