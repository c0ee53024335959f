// Package parser turns source files into the intermediate document model.
package parser

import (
	"path/filepath"
	"strings"
)

// Stem returns the file's base name without its extension. Parsers use it as
// the default document title.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
