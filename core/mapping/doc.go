// Package mapping resolves target field values from flattened feed records.
//
// A feed row is flattened into path/value pairs where repeated groups carry
// their index, e.g. "Block/0/Images/0". Field mappings refer to the logical
// path without indices ("Block/Images"). The Resolver reconciles the two,
// merges repeated and delimited values, and applies mapping defaults.
//
// # Operations
//
//   - ResolveSimple: exact-key lookup with default fallback.
//   - ResolveMulti: every matching value as a sequence.
//   - ResolveForWrite: the value to assign to a field, with single values
//     unwrapped and empty values turned into nil.
//   - ParseFieldDataForElement: best-effort object template rendering.
//
// # Usage
//
//	r, err := mapping.NewResolver(cfg.Import.DataDelimiter)
//	value := r.ResolveForWrite(record, mapping.FieldMapping{Node: "Block/Images"}, settings)
package mapping
