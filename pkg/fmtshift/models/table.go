package models

// Table is tabular content: a fixed set of headers and rows of cells.
// Rows may be ragged on input; writers normalize them with NormalizeRow.
type Table struct {
	// Headers defines the column count.
	Headers []string
	// Rows holds the data rows.
	Rows [][]string
	// Metadata carries provenance, e.g. {"source": "spreadsheet"}.
	Metadata Metadata
}

// NewTable creates a table tagged with the given source.
func NewTable(source string, headers []string, rows [][]string) *Table {
	t := &Table{
		Headers: headers,
		Rows:    rows,
	}
	if source != "" {
		t.Metadata = Metadata{MetaSource: source}
	}
	return t
}

func (*Table) Kind() Kind       { return KindTable }
func (t *Table) Meta() Metadata { return t.Metadata }
func (*Table) content()         {}

// Width returns the column count defined by the headers.
func (t *Table) Width() int {
	return len(t.Headers)
}

// NormalizeRow returns row padded with empty cells or truncated so that it has
// exactly Width cells. The input slice is not modified.
func (t *Table) NormalizeRow(row []string) []string {
	out := make([]string, t.Width())
	copy(out, row)
	return out
}

// NormalizedRows returns every data row normalized to Width cells.
func (t *Table) NormalizedRows() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = t.NormalizeRow(row)
	}
	return out
}
