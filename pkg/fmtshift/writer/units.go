package writer

import (
	"golang.org/x/text/width"
)

const (
	// DefaultMaxColumnWidth caps an auto-sized column, padding included.
	DefaultMaxColumnWidth = 80
	// DefaultColumnPadding is added to the longest value of a column.
	DefaultColumnPadding = 2
)

// DisplayWidth returns the number of column units s occupies. East Asian wide
// and fullwidth runes count as two units, everything else as one.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// ColumnWidth returns the width of a column whose longest value is longest
// units wide.
func ColumnWidth(longest, padding, limit int) int {
	w := longest + padding
	if limit > 0 && w > limit {
		return limit
	}
	return w
}

// columnWidths tracks the longest value written to each 1-based column.
type columnWidths map[int]int

func (c columnWidths) observe(col int, value string) {
	if w := DisplayWidth(value); w > c[col] {
		c[col] = w
		return
	}
	if _, ok := c[col]; !ok {
		c[col] = 0
	}
}
