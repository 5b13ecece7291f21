// Package compare decides whether resolved feed content changes an existing record.
//
// The Differ walks a candidate ContentMapping and compares each value with the
// record's serialized field values, then with its attributes. Equality is type
// tolerant: related-record ID lists match regardless of order, numeric strings
// match numbers, dates are compared in one canonical layout, and strings of
// different length never match ("637" vs "0637").
//
// # Record Snapshots
//
// The record is read through the RecordSnapshot interface. MapSnapshot serves
// in-memory data; core/records loads snapshots from the content database.
//
// # Diagnostics
//
// For every changed key the Differ logs the structural diff (ArrayCompare) and
// the old and new values at debug level, and a change entry at info level.
// Logging never affects the result.
//
// # Usage
//
//	d := compare.NewDiffer(logger)
//	changes := d.ComputeChangeSet(content, snapshot)
//	if len(changes) == 0 {
//	    // nothing to write
//	}
package compare
