package parser

import (
	"fmt"
	"strings"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
	"github.com/adreamer1074/fmtshift/pkg/logging"
	"github.com/xuri/excelize/v2"
)

// ExcelParser reads workbooks into documents. Every non-empty sheet becomes a
// single Table whose first non-blank row is the header.
type ExcelParser struct {
	Logger logging.Logger
}

// NewExcelParser creates an ExcelParser. A nil logger discards output.
func NewExcelParser(logger logging.Logger) *ExcelParser {
	return &ExcelParser{Logger: logging.OrNoOp(logger)}
}

// Parse reads the workbook at path.
func (p *ExcelParser) Parse(path string) (*models.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logger := logging.OrNoOp(p.Logger)
	doc := models.NewDocument(Stem(path))
	readDocProps(f, doc)

	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}

		sheet := models.NewSheet(sheetName)
		if len(rows) > 0 {
			sheet.Add(models.NewTable(models.SourceSpreadsheet, rows[0], rows[1:]))
		}
		doc.AddSheet(sheet)
		logger.Debug("sheet parsed", "sheet", sheetName, "rows", len(rows))
	}

	return doc, nil
}

// ExtractRows returns the non-blank rows of a sheet in order. A row is blank
// when every cell is empty or whitespace. Kept rows are padded with empty
// cells to the width of the widest kept row.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result [][]string
	width := 0
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if len(row) > width {
			width = len(row)
		}
		result = append(result, row)
	}

	for i, row := range result {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			result[i] = padded
		}
	}

	return result, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// readDocProps copies non-empty workbook properties into the document
// metadata. The title is left alone; it always comes from the file name.
func readDocProps(f *excelize.File, doc *models.Document) {
	props, err := f.GetDocProps()
	if err != nil || props == nil {
		return
	}

	fields := map[string]string{
		"creator":     props.Creator,
		"subject":     props.Subject,
		"description": props.Description,
		"keywords":    props.Keywords,
	}
	for key, value := range fields {
		if value = strings.TrimSpace(value); value != "" {
			doc.Metadata[key] = value
		}
	}
}
