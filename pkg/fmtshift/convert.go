package fmtshift

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
	"github.com/adreamer1074/fmtshift/pkg/fmtshift/parser"
	"github.com/adreamer1074/fmtshift/pkg/fmtshift/writer"
	"github.com/adreamer1074/fmtshift/pkg/logging"
)

// Extensions registered by New.
var (
	SpreadsheetExtensions = []string{".xlsx", ".xls"}
	MarkdownExtensions    = []string{".md"}
)

// Parser reads a source file into a document.
type Parser interface {
	Parse(path string) (*models.Document, error)
}

// Writer renders a document into a destination file.
type Writer interface {
	Write(doc *models.Document, path string) error
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(path string) (*models.Document, error)

// Parse calls fn(path).
func (fn ParserFunc) Parse(path string) (*models.Document, error) {
	return fn(path)
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(doc *models.Document, path string) error

// Write calls fn(doc, path).
func (fn WriterFunc) Write(doc *models.Document, path string) error {
	return fn(doc, path)
}

// Formats lists registered extensions in registration order.
type Formats struct {
	Inputs  []string
	Outputs []string
}

// Converter routes a conversion to the parser registered for the source
// extension and the writer registered for the destination extension.
type Converter struct {
	mu      sync.RWMutex
	parsers map[string]Parser
	writers map[string]Writer
	inputs  []string
	outputs []string
	logger  logging.Logger
}

// New creates a Converter with the spreadsheet and markdown formats
// registered.
func New(opts Options) *Converter {
	logger := logging.OrNoOp(opts.Logger)
	c := &Converter{
		parsers: make(map[string]Parser),
		writers: make(map[string]Writer),
		logger:  logger,
	}

	excelParser := parser.NewExcelParser(logger.WithFields(map[string]any{"component": "excel_parser"}))
	excelWriter := writer.NewExcelWriter(logger.WithFields(map[string]any{"component": "excel_writer"}))
	excelWriter.MaxColumnWidth = opts.ColumnWidthLimit()
	excelWriter.ColumnPadding = opts.ColumnPaddingWidth()
	for _, ext := range SpreadsheetExtensions {
		c.RegisterParser(ext, excelParser)
		c.RegisterWriter(ext, excelWriter)
	}

	markdownParser := parser.NewMarkdownParser(logger.WithFields(map[string]any{"component": "markdown_parser"}))
	markdownParser.KeepUnterminatedCode = opts.ShouldKeepUnterminatedCode()
	markdownParser.FrontMatter = opts.ReadFrontMatter
	markdownWriter := &writer.MarkdownWriter{FrontMatter: opts.FrontMatter}
	for _, ext := range MarkdownExtensions {
		c.RegisterParser(ext, markdownParser)
		c.RegisterWriter(ext, markdownWriter)
	}

	return c
}

// RegisterParser maps ext to p, replacing any earlier registration.
// The extension is matched case-insensitively; the leading dot is optional.
func (c *Converter) RegisterParser(ext string, p Parser) {
	ext = normalizeExt(ext)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.parsers[ext]; !ok {
		c.inputs = append(c.inputs, ext)
	}
	c.parsers[ext] = p
}

// RegisterWriter maps ext to w, replacing any earlier registration.
// The extension is matched case-insensitively; the leading dot is optional.
func (c *Converter) RegisterWriter(ext string, w Writer) {
	ext = normalizeExt(ext)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.writers[ext]; !ok {
		c.outputs = append(c.outputs, ext)
	}
	c.writers[ext] = w
}

// SupportedFormats returns the registered input and output extensions.
func (c *Converter) SupportedFormats() Formats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.formatsLocked()
}

func (c *Converter) formatsLocked() Formats {
	return Formats{
		Inputs:  append([]string(nil), c.inputs...),
		Outputs: append([]string(nil), c.outputs...),
	}
}

// ParserFor returns the parser registered for the extension of path.
func (c *Converter) ParserFor(path string) (Parser, error) {
	ext := normalizeExt(filepath.Ext(path))
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.parsers[ext]
	if !ok {
		return nil, c.unsupportedLocked(ext, DirectionInput)
	}
	return p, nil
}

// WriterFor returns the writer registered for the extension of path.
func (c *Converter) WriterFor(path string) (Writer, error) {
	ext := normalizeExt(filepath.Ext(path))
	c.mu.RLock()
	defer c.mu.RUnlock()
	w, ok := c.writers[ext]
	if !ok {
		return nil, c.unsupportedLocked(ext, DirectionOutput)
	}
	return w, nil
}

func (c *Converter) unsupportedLocked(ext string, dir Direction) error {
	formats := c.formatsLocked()
	return &UnsupportedFormatError{
		Extension: ext,
		Direction: dir,
		Inputs:    formats.Inputs,
		Outputs:   formats.Outputs,
	}
}

// Convert parses src and writes the result to dst. Both extensions are
// checked before the source file is touched.
func (c *Converter) Convert(src, dst string) error {
	p, err := c.ParserFor(src)
	if err != nil {
		return err
	}
	w, err := c.WriterFor(dst)
	if err != nil {
		return err
	}

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return NewIOError("stat", src, err)
	}

	logger := c.logger.WithFields(map[string]any{"source": src, "destination": dst})
	logger.Debug("converting", "parser", fmt.Sprintf("%T", p), "writer", fmt.Sprintf("%T", w))

	doc, err := p.Parse(src)
	if err != nil {
		return NewIOError("parse", src, err)
	}
	if err := w.Write(doc, dst); err != nil {
		return NewIOError("write", dst, err)
	}

	logger.Info("conversion complete", "sheets", len(doc.Sheets))
	return nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
