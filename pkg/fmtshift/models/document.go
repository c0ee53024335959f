// Package models defines the intermediate document model shared by every
// parser and writer.
package models

// Document represents a whole converted file: an optional title, its sheets in
// order, and free-form metadata.
type Document struct {
	// Title is the document title. Parsers default it to the source file's
	// base name without extension.
	Title string
	// Sheets holds the document's sheets in order.
	Sheets []*Sheet
	// Metadata carries provenance and front matter values.
	Metadata Metadata
}

// NewDocument creates an empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{
		Title:    title,
		Metadata: Metadata{},
	}
}

// AddSheet appends a sheet to the document.
func (d *Document) AddSheet(s *Sheet) {
	d.Sheets = append(d.Sheets, s)
}

// Sheet returns the first sheet with the given name, or nil.
func (d *Document) Sheet(name string) *Sheet {
	for _, s := range d.Sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}
