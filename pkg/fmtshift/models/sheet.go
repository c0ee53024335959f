package models

// Sheet represents a named section of a document.
type Sheet struct {
	// Name is the sheet name. It need not be unique within a document.
	Name string
	// Contents holds the sheet's content items in order.
	Contents []Content
}

// NewSheet creates an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{Name: name}
}

// Add appends a content item.
func (s *Sheet) Add(c Content) {
	s.Contents = append(s.Contents, c)
}

// IsEmpty reports whether the sheet holds no content.
func (s *Sheet) IsEmpty() bool {
	return len(s.Contents) == 0
}
