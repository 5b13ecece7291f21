package template

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// shorthandPattern matches "{handle}" and "{handle.sub}" tags that are not
// part of a "{{ ... }}" action.
var shorthandPattern = regexp.MustCompile(`(^|[^{])\{\s*([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\s*\}`)

// ObjectRenderer renders object templates against a record context.
//
// Object templates accept the shorthand "{title}" for "{{ .title }}" as well
// as regular text/template actions. Unknown handles are errors.
type ObjectRenderer struct{}

// NewObjectRenderer creates an object template renderer.
func NewObjectRenderer() *ObjectRenderer {
	return &ObjectRenderer{}
}

// RenderObjectTemplate evaluates text against element.
func (r *ObjectRenderer) RenderObjectTemplate(text string, element map[string]any) (string, error) {
	if !strings.Contains(text, "{") {
		return text, nil
	}

	source := expandShorthand(text)

	tmpl, err := template.New("object").Option("missingkey=error").Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse object template: %w", err)
	}

	if element == nil {
		element = map[string]any{}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, element); err != nil {
		return "", fmt.Errorf("failed to render object template: %w", err)
	}
	return out.String(), nil
}

func expandShorthand(text string) string {
	// Run twice: adjacent tags like "{a}{b}" share the boundary character.
	for i := 0; i < 2; i++ {
		text = shorthandPattern.ReplaceAllString(text, "$1{{.$2}}")
	}
	return text
}
