package writer

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLWriter renders documents as a standalone HTML page. The document is
// first rendered as markdown and then converted with goldmark, so the page
// mirrors the markdown output.
type HTMLWriter struct {
	engine goldmark.Markdown
}

// NewHTMLWriter creates an HTMLWriter with GitHub flavoured tables.
func NewHTMLWriter() *HTMLWriter {
	return &HTMLWriter{
		engine: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Write renders doc into the file at path.
func (w *HTMLWriter) Write(doc *models.Document, path string) error {
	return writeFile(path, func(out io.Writer) error {
		return w.Render(doc, out)
	})
}

// Render writes doc to out as an HTML page.
func (w *HTMLWriter) Render(doc *models.Document, out io.Writer) error {
	var src bytes.Buffer
	if err := NewMarkdownWriter().Render(doc, &src); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := w.engine.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	_, err := fmt.Fprintf(out, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(doc.Title), body.Bytes())
	return err
}
