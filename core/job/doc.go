// Package job loads import job documents.
//
// A job carries one flattened feed record, the ordered field bindings to
// resolve from it, optional record settings, and either the id of the element
// to compare against or an inline snapshot of it. Documents are YAML or JSON,
// read from disk or from the import bucket:
//
//	element_id: 42
//	record:
//	  Sku: "0637"
//	  Block/0/Images/0: a.jpg
//	fields:
//	  - handle: sku
//	    node: Sku
//	  - handle: images
//	    node: Block/Images
//	settings:
//	  set_empty_values: false
package job
