// Package preview runs import jobs end to end without writing: every field
// binding is resolved from the feed record, rendered against the existing
// element and the result diffed against it.
//
// # Endpoints
//
//   - POST /preview          job document in the body (JSON, or YAML by content type)
//   - GET  /preview/object   job document from the import bucket (?name=jobs/x.yaml)
//   - GET  /preview/batch    every job document under a prefix (?prefix=jobs/&workers=8)
//   - GET  /preview/health   liveness
//
// A job naming an element_id is compared against the stored element; an
// inline "existing" snapshot takes precedence. Jobs with neither describe a
// new element and report every field as a change.
package preview
