// Package records reads existing CMS elements as compare.RecordSnapshot values.
//
// An element's custom field values and native attributes are stored as JSON
// objects on the elements table; group relations live in element_groups.
// Integral JSON numbers are decoded as int64 so they compare cleanly with
// resolved feed values.
package records
