// Package fmtshift converts documents between spreadsheet and markdown
// formats through a shared intermediate model.
package fmtshift

import (
	"github.com/adreamer1074/fmtshift/pkg/fmtshift/writer"
	"github.com/adreamer1074/fmtshift/pkg/logging"
)

// Options configures the default parsers and writers of a Converter.
type Options struct {
	// Logger receives conversion events. Nil discards them.
	Logger logging.Logger
	// MaxColumnWidth caps auto-sized spreadsheet columns.
	// Zero means the default of 80.
	MaxColumnWidth int
	// ColumnPadding is added to the longest value of a spreadsheet column.
	// Nil means the default of 2.
	ColumnPadding *int
	// KeepUnterminatedCode specifies whether a code block still open at end of
	// markdown input is emitted. If nil, defaults to true.
	KeepUnterminatedCode *bool
	// FrontMatter writes the title and metadata as YAML front matter in
	// markdown output.
	FrontMatter bool
	// ReadFrontMatter moves a leading YAML mapping between "---" lines of
	// markdown input into the document metadata. Off by default, in which
	// case those lines are parsed as text.
	ReadFrontMatter bool
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

// ColumnWidthLimit returns the spreadsheet column width cap.
func (o Options) ColumnWidthLimit() int {
	if o.MaxColumnWidth > 0 {
		return o.MaxColumnWidth
	}
	return writer.DefaultMaxColumnWidth
}

// ColumnPaddingWidth returns the spreadsheet column padding.
func (o Options) ColumnPaddingWidth() int {
	if o.ColumnPadding != nil {
		return *o.ColumnPadding
	}
	return writer.DefaultColumnPadding
}

// ShouldKeepUnterminatedCode returns whether an open code block is emitted at
// end of input.
func (o Options) ShouldKeepUnterminatedCode() bool {
	if o.KeepUnterminatedCode != nil {
		return *o.KeepUnterminatedCode
	}
	return true
}
