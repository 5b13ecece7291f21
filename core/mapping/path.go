package mapping

import "regexp"

var (
	innerIndexPattern    = regexp.MustCompile(`/\d+/`)
	leadingIndexPattern  = regexp.MustCompile(`^\d+/`)
	trailingIndexPattern = regexp.MustCompile(`/\d+$`)
)

// NormalizePath strips array index segments from a feed path so it can be
// matched against a field mapping node.
//
//	NormalizePath("Block/0/Images/0") == "Block/Images"
//	NormalizePath("0/Title")          == "Title"
func NormalizePath(path string) string {
	// Adjacent index segments share a slash, so a single pass leaves one behind.
	for innerIndexPattern.MatchString(path) {
		path = innerIndexPattern.ReplaceAllString(path, "/")
	}
	path = leadingIndexPattern.ReplaceAllString(path, "")
	return trailingIndexPattern.ReplaceAllString(path, "")
}

// matchesNode reports whether a raw feed path belongs to node.
func matchesNode(path, node string) bool {
	return path == node || NormalizePath(path) == node
}
