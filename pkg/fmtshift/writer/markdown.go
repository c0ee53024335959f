package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
	"gopkg.in/yaml.v3"
)

var cellNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// MarkdownWriter renders documents as markdown text.
type MarkdownWriter struct {
	// FrontMatter emits the title and metadata as a leading YAML block.
	FrontMatter bool
}

// NewMarkdownWriter creates a MarkdownWriter without front matter.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Write renders doc into the file at path.
func (w *MarkdownWriter) Write(doc *models.Document, path string) error {
	return writeFile(path, func(out io.Writer) error {
		return w.Render(doc, out)
	})
}

// Render writes doc to out. Sheet headings are only written when the
// document has more than one sheet. The first write error is returned.
func (w *MarkdownWriter) Render(doc *models.Document, out io.Writer) error {
	mw := &markdownOutput{w: out}

	if w.FrontMatter {
		if err := mw.frontMatter(doc); err != nil {
			return err
		}
	}

	multi := len(doc.Sheets) > 1
	for i, sheet := range doc.Sheets {
		if multi {
			if i > 0 {
				mw.printf("\n")
			}
			mw.printf("## %s\n\n", sheet.Name)
		}
		if err := mw.contents(sheet.Contents); err != nil {
			return err
		}
	}

	return mw.err
}

// markdownOutput writes to w until the first error, which it keeps.
type markdownOutput struct {
	w   io.Writer
	err error
}

func (m *markdownOutput) printf(format string, args ...any) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format, args...)
}

func (m *markdownOutput) contents(contents []models.Content) error {
	for _, c := range contents {
		switch v := c.(type) {
		case models.Title:
			m.printf("# %s\n\n", v.Value)
		case models.Text:
			m.printf("%s\n\n", v.Value)
		case models.ListItem:
			m.printf("- %s\n", v.Value)
		case models.NumberedListItem:
			m.printf("1. %s\n", v.Value)
		case models.CodeBlock:
			m.printf("```%s\n%s\n```\n\n", v.Language, v.Body)
		case *models.Table:
			m.table(v)
		case models.Empty:
			m.printf("\n")
		default:
			return fmt.Errorf("unsupported content kind %q", c.Kind())
		}
	}
	return nil
}

// table writes a pipe table. Every data row is padded or truncated to the
// header count. A table without headers writes nothing.
func (m *markdownOutput) table(t *models.Table) {
	if t.Width() == 0 {
		return
	}

	m.row(t.Headers)

	sep := make([]string, t.Width())
	for i := range sep {
		sep[i] = "---"
	}
	m.row(sep)

	for _, row := range t.NormalizedRows() {
		m.row(row)
	}
	m.printf("\n")
}

func (m *markdownOutput) row(cells []string) {
	clean := make([]string, len(cells))
	for i, cell := range cells {
		clean[i] = cellNewlines.Replace(cell)
	}
	m.printf("| %s |\n", strings.Join(clean, " | "))
}

func (m *markdownOutput) frontMatter(doc *models.Document) error {
	meta := doc.Metadata.Clone()
	if meta == nil {
		meta = models.Metadata{}
	}
	if doc.Title != "" {
		meta["title"] = doc.Title
	}
	if len(meta) == 0 {
		return nil
	}

	data, err := yaml.Marshal(map[string]string(meta))
	if err != nil {
		return fmt.Errorf("marshal front matter: %w", err)
	}
	m.printf("---\n%s---\n\n", data)
	return nil
}
