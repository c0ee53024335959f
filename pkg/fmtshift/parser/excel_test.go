package parser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes f into a temp dir and returns the path.
func saveWorkbook(t *testing.T, f *excelize.File, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestExtractRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "C1", "Header3")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	// row 3 holds only whitespace
	f.SetCellValue(sheetName, "B3", "   ")
	f.SetCellValue(sheetName, "A5", "Text")

	path := saveWorkbook(t, f, "test.xlsx")

	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	expected := [][]string{
		{"Header1", "Header2", "Header3"},
		{"100", "200.5", ""},
		{"Text", "", ""},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Expected %q, got %q", expected, rows)
	}
}

func TestExcelParserSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Age")
	f.SetCellValue("Sheet1", "A2", "Alice")
	f.SetCellValue("Sheet1", "B2", 30)
	if _, err := f.NewSheet("Blank"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if _, err := f.NewSheet("Headers"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Headers", "A3", "Name")
	f.SetCellValue("Headers", "B3", "Age")

	path := saveWorkbook(t, f, "people.xlsx")

	doc, err := NewExcelParser(nil).Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.Title != "people" {
		t.Errorf("Expected title 'people', got %q", doc.Title)
	}
	if len(doc.Sheets) != 3 {
		t.Fatalf("Expected 3 sheets, got %d", len(doc.Sheets))
	}

	names := []string{doc.Sheets[0].Name, doc.Sheets[1].Name, doc.Sheets[2].Name}
	if !reflect.DeepEqual(names, []string{"Sheet1", "Blank", "Headers"}) {
		t.Errorf("Unexpected sheet order: %v", names)
	}

	data := doc.Sheets[0]
	if len(data.Contents) != 1 {
		t.Fatalf("Expected 1 content item, got %d", len(data.Contents))
	}
	table, ok := data.Contents[0].(*models.Table)
	if !ok {
		t.Fatalf("Expected *models.Table, got %T", data.Contents[0])
	}
	if !reflect.DeepEqual(table.Headers, []string{"Name", "Age"}) {
		t.Errorf("Unexpected headers: %v", table.Headers)
	}
	if !reflect.DeepEqual(table.Rows, [][]string{{"Alice", "30"}}) {
		t.Errorf("Unexpected rows: %v", table.Rows)
	}
	if table.Metadata[models.MetaSource] != models.SourceSpreadsheet {
		t.Errorf("Expected source tag %q, got %q", models.SourceSpreadsheet, table.Metadata[models.MetaSource])
	}

	if !doc.Sheets[1].IsEmpty() {
		t.Errorf("Expected blank sheet to have no content, got %d items", len(doc.Sheets[1].Contents))
	}

	headerOnly, ok := doc.Sheets[2].Contents[0].(*models.Table)
	if !ok {
		t.Fatalf("Expected *models.Table, got %T", doc.Sheets[2].Contents[0])
	}
	if !reflect.DeepEqual(headerOnly.Headers, []string{"Name", "Age"}) {
		t.Errorf("Unexpected headers: %v", headerOnly.Headers)
	}
	if len(headerOnly.Rows) != 0 {
		t.Errorf("Expected zero data rows, got %d", len(headerOnly.Rows))
	}
}

func TestExcelParserMissingFile(t *testing.T) {
	_, err := NewExcelParser(nil).Parse(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestIsBlankRow(t *testing.T) {
	tests := []struct {
		row      []string
		expected bool
	}{
		{nil, true},
		{[]string{}, true},
		{[]string{"", " ", "\t"}, true},
		{[]string{"", "x"}, false},
	}

	for _, tt := range tests {
		result := isBlankRow(tt.row)
		if result != tt.expected {
			t.Errorf("isBlankRow(%q) = %v, expected %v", tt.row, result, tt.expected)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/tmp/report.xlsx", "report"},
		{"notes.md", "notes"},
		{"archive.tar.gz", "archive.tar"},
		{"README", "README"},
	}

	for _, tt := range tests {
		if result := Stem(tt.input); result != tt.expected {
			t.Errorf("Stem(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
