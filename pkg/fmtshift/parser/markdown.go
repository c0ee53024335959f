package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/adrg/frontmatter"
	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
	"github.com/adreamer1074/fmtshift/pkg/logging"
	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

const (
	codeFence        = "```"
	tableMarker      = "|"
	tableSepToken    = "---"
	frontMatterDelim = "---"

	// maxLineBytes bounds a single input line.
	maxLineBytes = 16 << 20
)

var yamlFrontMatter = frontmatter.NewFormat(frontMatterDelim, frontMatterDelim, yaml.Unmarshal)

// MarkdownParser reads markdown text into documents with a single forward
// pass over its lines.
type MarkdownParser struct {
	Logger logging.Logger
	// KeepUnterminatedCode emits a code block left open at end of input
	// instead of dropping its body.
	KeepUnterminatedCode bool
	// FrontMatter reads a leading YAML block into the document metadata.
	// When false, "---" lines are ordinary text.
	FrontMatter bool
}

// NewMarkdownParser creates a MarkdownParser that keeps unterminated code
// blocks and ignores front matter. A nil logger discards output.
func NewMarkdownParser(logger logging.Logger) *MarkdownParser {
	return &MarkdownParser{
		Logger:               logging.OrNoOp(logger),
		KeepUnterminatedCode: true,
	}
}

// Parse reads the markdown file at path. The document title defaults to the
// file's base name.
func (p *MarkdownParser) Parse(path string) (*models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.ParseReader(f, Stem(path))
}

// ParseReader reads markdown from r. defaultTitle is used as the document
// title until front matter or a top-level heading replaces it.
func (p *MarkdownParser) ParseReader(r io.Reader, defaultTitle string) (*models.Document, error) {
	logger := logging.OrNoOp(p.Logger)

	// UTF-8 with an optional BOM; a UTF-16 BOM switches the decoder.
	decoded := transform.NewReader(r, textunicode.BOMOverride(textunicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	doc := models.NewDocument(defaultTitle)
	body := data
	if p.FrontMatter {
		body = readFrontMatter(data, doc, logger)
	}

	lines, err := splitLines(body)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	s := &markdownScanner{
		doc:          doc,
		defaultTitle: defaultTitle,
		sheet:        models.NewSheet("Sheet1"),
		keepOpenCode: p.KeepUnterminatedCode,
		logger:       logger,
	}
	s.run(newLineCursor(lines))

	return doc, nil
}

// readFrontMatter moves a leading YAML front matter block into the document
// metadata and returns the remaining body. A "title" key sets the title.
// A block that is not a non-empty mapping is left in the body untouched.
func readFrontMatter(data []byte, doc *models.Document, logger logging.Logger) []byte {
	if !hasFrontMatter(data) {
		return data
	}

	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta, yamlFrontMatter)
	if err != nil {
		logger.Debug("front matter ignored", "error", err)
		return data
	}
	if len(meta) == 0 {
		return data
	}

	for key, value := range meta {
		if value == nil {
			continue
		}
		doc.Metadata[key] = fmt.Sprint(value)
	}
	if title := strings.TrimSpace(doc.Metadata["title"]); title != "" {
		doc.Title = title
	}
	return body
}

// hasFrontMatter reports whether data opens with a "---" line that is closed
// by a later "---" line.
func hasFrontMatter(data []byte) bool {
	lines, err := splitLines(data)
	if err != nil || len(lines) < 2 || strings.TrimSpace(lines[0]) != frontMatterDelim {
		return false
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == frontMatterDelim {
			return true
		}
	}
	return false
}

// splitLines splits data on line terminators. A trailing newline does not
// produce a final empty line and "\r\n" is accepted.
func splitLines(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// markdownScanner holds the state of one pass over the input.
type markdownScanner struct {
	doc          *models.Document
	defaultTitle string
	sheet        *models.Sheet

	inCode    bool
	codeLang  string
	codeLines []string

	keepOpenCode bool
	logger       logging.Logger
}

// scanRule inspects the current line and, when it applies, consumes one or
// more lines and reports true. Rules are tried in order.
type scanRule func(s *markdownScanner, c *lineCursor) bool

var scanRules = []scanRule{
	(*markdownScanner).codeFence,
	(*markdownScanner).codeBody,
	(*markdownScanner).sheetHeading,
	(*markdownScanner).table,
	(*markdownScanner).listItem,
	(*markdownScanner).numberedItem,
	(*markdownScanner).title,
	(*markdownScanner).textOrBlank,
}

func (s *markdownScanner) run(c *lineCursor) {
	for !c.Done() {
		for _, rule := range scanRules {
			if rule(s, c) {
				break
			}
		}
	}
	s.finish(c)
}

func (s *markdownScanner) finish(c *lineCursor) {
	if s.inCode {
		if s.keepOpenCode {
			s.logger.Warn("unterminated code block emitted", "line", c.Pos(), "language", s.codeLang)
			s.emitCode()
		} else {
			s.logger.Warn("unterminated code block dropped", "line", c.Pos(), "language", s.codeLang)
		}
	}
	s.flush()
}

func (s *markdownScanner) flush() {
	if !s.sheet.IsEmpty() {
		s.doc.AddSheet(s.sheet)
	}
}

func (s *markdownScanner) emitCode() {
	s.sheet.Add(models.CodeBlock{
		Body:     strings.Join(s.codeLines, "\n"),
		Language: s.codeLang,
	})
	s.inCode = false
	s.codeLang = ""
	s.codeLines = nil
}

func (s *markdownScanner) codeFence(c *lineCursor) bool {
	trimmed := strings.TrimSpace(c.Peek())
	if !strings.HasPrefix(trimmed, codeFence) {
		return false
	}
	c.Advance(1)

	if s.inCode {
		s.emitCode()
		return true
	}
	s.inCode = true
	s.codeLang = strings.TrimSpace(trimmed[len(codeFence):])
	s.codeLines = nil
	return true
}

func (s *markdownScanner) codeBody(c *lineCursor) bool {
	if !s.inCode {
		return false
	}
	s.codeLines = append(s.codeLines, c.Next())
	return true
}

func (s *markdownScanner) sheetHeading(c *lineCursor) bool {
	trimmed := strings.TrimSpace(c.Peek())
	if !strings.HasPrefix(trimmed, "##") || strings.HasPrefix(trimmed, "###") {
		return false
	}
	c.Advance(1)

	s.flush()
	s.sheet = models.NewSheet(headingText(trimmed))
	return true
}

func (s *markdownScanner) table(c *lineCursor) bool {
	trimmed := strings.TrimSpace(c.Peek())
	if !strings.HasPrefix(trimmed, tableMarker) {
		return false
	}
	c.Advance(1)

	if strings.Contains(trimmed, tableSepToken) {
		return true
	}

	rows := [][]string{splitCells(trimmed)}
	for !c.Done() {
		next := strings.TrimSpace(c.Peek())
		if !strings.HasPrefix(next, tableMarker) {
			break
		}
		c.Advance(1)
		if strings.Contains(next, tableSepToken) {
			continue
		}
		rows = append(rows, splitCells(next))
	}

	s.sheet.Add(models.NewTable(models.SourceMarkdown, rows[0], rows[1:]))
	return true
}

func (s *markdownScanner) listItem(c *lineCursor) bool {
	trimmed := strings.TrimSpace(c.Peek())
	if !strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(trimmed, "* ") {
		return false
	}
	c.Advance(1)

	s.sheet.Add(models.ListItem{Value: trimmed[2:]})
	return true
}

func (s *markdownScanner) numberedItem(c *lineCursor) bool {
	trimmed := strings.TrimSpace(c.Peek())
	text, ok := numberedText(trimmed)
	if !ok {
		return false
	}
	c.Advance(1)

	s.sheet.Add(models.NumberedListItem{Value: text})
	return true
}

func (s *markdownScanner) title(c *lineCursor) bool {
	trimmed := strings.TrimSpace(c.Peek())
	if !strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "##") {
		return false
	}
	c.Advance(1)

	text := headingText(trimmed)
	if s.doc.Title == "" || s.doc.Title == s.defaultTitle {
		s.doc.Title = text
	}
	s.sheet.Add(models.Title{Value: text})
	return true
}

func (s *markdownScanner) textOrBlank(c *lineCursor) bool {
	trimmed := strings.TrimSpace(c.Next())
	switch {
	case trimmed != "":
		s.sheet.Add(models.Text{Value: trimmed})
	case !s.sheet.IsEmpty():
		s.sheet.Add(models.Empty{})
	}
	return true
}

// headingText strips the leading '#' markers and surrounding whitespace.
func headingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// splitCells splits a table row on '|' and trims every cell. The empty cells
// produced by the leading and trailing markers are discarded.
func splitCells(line string) []string {
	parts := strings.Split(line, tableMarker)
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, strings.TrimSpace(part))
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// numberedText matches a line starting with a digit and holding ". " within
// its first four characters, returning the text after the first ". ".
func numberedText(line string) (string, bool) {
	runes := []rune(line)
	if len(runes) == 0 || !unicode.IsDigit(runes[0]) {
		return "", false
	}
	head := runes
	if len(head) > 4 {
		head = head[:4]
	}
	if !strings.Contains(string(head), ". ") {
		return "", false
	}
	idx := strings.Index(line, ". ")
	return line[idx+2:], true
}
