package models

// Metadata keys and values used for provenance tagging.
const (
	MetaSource        = "source"
	SourceSpreadsheet = "spreadsheet"
	SourceMarkdown    = "markdown"
)

// Metadata is an open string map. Nothing downstream interprets it.
type Metadata map[string]string

// Clone returns a copy of m. A nil map clones to nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
