package writer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift/models"
)

func TestJSONWriterRender(t *testing.T) {
	sheet := models.NewSheet("Data")
	sheet.Add(models.CodeBlock{Body: "echo", Language: "sh"})
	sheet.Add(models.NewTable(models.SourceSpreadsheet, []string{"A", "B"}, [][]string{{"1"}}))
	sheet.Add(models.Empty{})
	doc := models.NewDocument("report")
	doc.AddSheet(sheet)

	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(false).Render(doc, &buf))

	var decoded jsonDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "report", decoded.Title)
	require.Len(t, decoded.Sheets, 1)
	contents := decoded.Sheets[0].Contents
	require.Len(t, contents, 3)

	assert.Equal(t, models.KindCodeBlock, contents[0].Type)
	assert.Equal(t, "echo", contents[0].Value)
	assert.Equal(t, "sh", contents[0].Language)

	assert.Equal(t, models.KindTable, contents[1].Type)
	assert.Equal(t, [][]string{{"1", ""}}, contents[1].Rows)
	assert.Equal(t, models.SourceSpreadsheet, contents[1].Metadata[models.MetaSource])

	assert.Equal(t, models.KindEmpty, contents[2].Type)
}

func TestJSONWriterPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(true).Render(models.NewDocument("x"), &buf))
	assert.True(t, strings.Contains(buf.String(), "\n  \"sheets\": []"))
}
