package writer

import (
	"fmt"
	"strings"
)

const (
	// MaxSheetNameLength is the longest sheet name a workbook accepts.
	MaxSheetNameLength = 31
	fallbackSheetName  = "Sheet"
)

var invalidSheetNameChars = strings.NewReplacer(
	`\`, "", "/", "", "?", "", "*", "", "[", "", "]", "", ":", "",
)

// SanitizeSheetName truncates name to MaxSheetNameLength runes and removes
// the characters a workbook rejects. An empty result becomes "Sheet".
func SanitizeSheetName(name string) string {
	name = truncateRunes(name, MaxSheetNameLength)
	name = invalidSheetNameChars.Replace(name)
	name = strings.Trim(name, "'")
	if strings.TrimSpace(name) == "" {
		return fallbackSheetName
	}
	return name
}

// sheetNamer hands out sanitized sheet names that are unique within one
// workbook, appending _1, _2, ... on collision. Comparison ignores case, as
// workbooks do.
type sheetNamer struct {
	used map[string]struct{}
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]struct{})}
}

// Assign returns the output name for a sheet called name and reserves it.
func (n *sheetNamer) Assign(name string) string {
	base := SanitizeSheetName(name)
	if !n.taken(base) {
		n.reserve(base)
		return base
	}

	for i := 1; ; i++ {
		suffix := fmt.Sprintf("_%d", i)
		candidate := truncateRunes(base, MaxSheetNameLength-len(suffix)) + suffix
		if !n.taken(candidate) {
			n.reserve(candidate)
			return candidate
		}
	}
}

func (n *sheetNamer) taken(name string) bool {
	_, ok := n.used[strings.ToLower(name)]
	return ok
}

func (n *sheetNamer) reserve(name string) {
	n.used[strings.ToLower(name)] = struct{}{}
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
