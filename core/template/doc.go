// Package template renders object templates for imported field values.
//
// An object template is field text such as "Posted by {author}" whose tags
// are evaluated against the target record. Shorthand tags are rewritten to
// text/template actions before execution; missing handles fail the render so
// callers can fall back to the literal text.
//
// # Usage
//
//	r := template.NewObjectRenderer()
//	out, err := r.RenderObjectTemplate("{title} ({id})", map[string]any{"title": "News", "id": 4})
package template
