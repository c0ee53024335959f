package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
	"github.com/adreamer1074/fmtshift/pkg/logging"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheetName = "Sheet1"
	emptyDocument    = "(empty document)"
	bullet           = "• "
)

// ExcelWriter renders documents as workbooks, one worksheet per sheet.
type ExcelWriter struct {
	Logger logging.Logger
	// MaxColumnWidth caps auto-sized columns. Zero disables the cap.
	MaxColumnWidth int
	// ColumnPadding is added to the longest value of each column.
	ColumnPadding int
}

// NewExcelWriter creates an ExcelWriter with the default column sizing.
func NewExcelWriter(logger logging.Logger) *ExcelWriter {
	return &ExcelWriter{
		Logger:         logging.OrNoOp(logger),
		MaxColumnWidth: DefaultMaxColumnWidth,
		ColumnPadding:  DefaultColumnPadding,
	}
}

// Write renders doc and saves the workbook at path. The workbook content is
// always OOXML, whatever the extension of path.
func (w *ExcelWriter) Write(doc *models.Document, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.Build(f, doc); err != nil {
		return err
	}

	return writeFile(path, func(out io.Writer) error {
		return f.Write(out)
	})
}

// Build renders doc into f, which must be a fresh workbook holding only its
// default sheet.
func (w *ExcelWriter) Build(f *excelize.File, doc *models.Document) error {
	logger := logging.OrNoOp(w.Logger)

	styles, err := newCellStyles(f)
	if err != nil {
		return err
	}
	if err := setDocProps(f, doc); err != nil {
		return err
	}

	if len(doc.Sheets) == 0 {
		return f.SetCellValue(defaultSheetName, "A1", emptyDocument)
	}

	namer := newSheetNamer()
	for i, sheet := range doc.Sheets {
		name := namer.Assign(sheet.Name)
		if name != sheet.Name {
			logger.Debug("sheet renamed", "sheet", sheet.Name, "name", name)
		}

		// The default sheet is reused for the first sheet so that it never
		// appears in the output.
		if i == 0 {
			if name != defaultSheetName {
				if err := f.SetSheetName(defaultSheetName, name); err != nil {
					return fmt.Errorf("create sheet %q: %w", name, err)
				}
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := w.writeSheet(f, name, sheet, styles); err != nil {
			return fmt.Errorf("write sheet %q: %w", name, err)
		}
	}

	f.SetActiveSheet(0)
	return nil
}

func (w *ExcelWriter) writeSheet(f *excelize.File, name string, sheet *models.Sheet, styles cellStyles) error {
	sw := &sheetWriter{
		f:      f,
		name:   name,
		row:    1,
		widths: columnWidths{},
	}

	for _, c := range sheet.Contents {
		var err error
		switch v := c.(type) {
		case models.Title:
			err = sw.line(v.Value, styles.title)
		case models.Text:
			err = sw.line(v.Value, 0)
		case models.ListItem:
			err = sw.line(bullet+v.Value, 0)
		case models.NumberedListItem:
			err = sw.line(v.Value, 0)
		case models.CodeBlock:
			for _, line := range strings.Split(v.Body, "\n") {
				if err = sw.line(line, styles.code); err != nil {
					break
				}
			}
		case *models.Table:
			err = sw.table(v, styles.header)
		case models.Empty:
			sw.row++
		default:
			err = fmt.Errorf("unsupported content kind %q", c.Kind())
		}
		if err != nil {
			return err
		}
	}

	return w.applyColumnWidths(f, name, sw.widths)
}

func (w *ExcelWriter) applyColumnWidths(f *excelize.File, sheet string, widths columnWidths) error {
	for col, longest := range widths {
		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		width := ColumnWidth(longest, w.ColumnPadding, w.MaxColumnWidth)
		if err := f.SetColWidth(sheet, colName, colName, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// sheetWriter is the row cursor of one worksheet. Every emitted line lands in
// column 1 and advances the cursor by one row.
type sheetWriter struct {
	f      *excelize.File
	name   string
	row    int
	widths columnWidths
}

func (s *sheetWriter) line(value string, style int) error {
	if err := s.cell(1, value, style); err != nil {
		return err
	}
	s.row++
	return nil
}

func (s *sheetWriter) table(t *models.Table, headerStyle int) error {
	for col, header := range t.Headers {
		if err := s.cell(col+1, header, headerStyle); err != nil {
			return err
		}
	}
	s.row++

	for _, row := range t.NormalizedRows() {
		for col, value := range row {
			if err := s.cell(col+1, value, 0); err != nil {
				return err
			}
		}
		s.row++
	}
	return nil
}

func (s *sheetWriter) cell(col int, value string, style int) error {
	ref, err := excelize.CoordinatesToCellName(col, s.row)
	if err != nil {
		return err
	}
	if err := s.f.SetCellValue(s.name, ref, value); err != nil {
		return err
	}
	if style != 0 {
		if err := s.f.SetCellStyle(s.name, ref, ref, style); err != nil {
			return err
		}
	}
	s.widths.observe(col, value)
	return nil
}

// cellStyles holds the style IDs registered once per workbook.
type cellStyles struct {
	title  int
	header int
	code   int
}

func newCellStyles(f *excelize.File) (cellStyles, error) {
	var styles cellStyles
	var err error

	styles.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return styles, err
	}
	styles.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styles, err
	}
	styles.code, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Family: "Courier New", Size: 9}})
	if err != nil {
		return styles, err
	}
	return styles, nil
}

// setDocProps stores the title and the metadata read back by the spreadsheet
// parser in the workbook properties.
func setDocProps(f *excelize.File, doc *models.Document) error {
	return f.SetDocProps(&excelize.DocProperties{
		Title:       doc.Title,
		Creator:     doc.Metadata["creator"],
		Subject:     doc.Metadata["subject"],
		Description: doc.Metadata["description"],
		Keywords:    doc.Metadata["keywords"],
	})
}
