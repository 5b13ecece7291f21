// Package utils provides value coercion helpers shared by the resolver and the differ.
// Feed values arrive as loosely typed scalars, sequences and mappings; these helpers
// answer questions like "is this numeric", "is this empty" and "is this a sequence"
// the same way everywhere.
package utils
