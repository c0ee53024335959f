package writer

import (
	"encoding/json"
	"io"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
)

// JSONWriter renders documents as JSON.
type JSONWriter struct {
	// Pretty indents the output.
	Pretty bool
}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter(pretty bool) *JSONWriter {
	return &JSONWriter{Pretty: pretty}
}

type jsonDocument struct {
	Title    string            `json:"title,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Sheets   []jsonSheet       `json:"sheets"`
}

type jsonSheet struct {
	Name     string        `json:"name"`
	Contents []jsonContent `json:"contents"`
}

type jsonContent struct {
	Type     models.Kind       `json:"type"`
	Value    string            `json:"value,omitempty"`
	Language string            `json:"language,omitempty"`
	Headers  []string          `json:"headers,omitempty"`
	Rows     [][]string        `json:"rows,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Write renders doc into the file at path.
func (w *JSONWriter) Write(doc *models.Document, path string) error {
	return writeFile(path, func(out io.Writer) error {
		return w.Render(doc, out)
	})
}

// Render writes doc to out as a single JSON object.
func (w *JSONWriter) Render(doc *models.Document, out io.Writer) error {
	enc := json.NewEncoder(out)
	if w.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(toJSONDocument(doc))
}

func toJSONDocument(doc *models.Document) jsonDocument {
	out := jsonDocument{
		Title:    doc.Title,
		Metadata: doc.Metadata,
		Sheets:   make([]jsonSheet, 0, len(doc.Sheets)),
	}
	for _, sheet := range doc.Sheets {
		js := jsonSheet{
			Name:     sheet.Name,
			Contents: make([]jsonContent, 0, len(sheet.Contents)),
		}
		for _, c := range sheet.Contents {
			js.Contents = append(js.Contents, toJSONContent(c))
		}
		out.Sheets = append(out.Sheets, js)
	}
	return out
}

func toJSONContent(c models.Content) jsonContent {
	jc := jsonContent{
		Type:     c.Kind(),
		Metadata: c.Meta(),
	}
	switch v := c.(type) {
	case models.Title:
		jc.Value = v.Value
	case models.Text:
		jc.Value = v.Value
	case models.ListItem:
		jc.Value = v.Value
	case models.NumberedListItem:
		jc.Value = v.Value
	case models.CodeBlock:
		jc.Value = v.Body
		jc.Language = v.Language
	case *models.Table:
		jc.Headers = v.Headers
		jc.Rows = v.NormalizedRows()
	}
	return jc
}
