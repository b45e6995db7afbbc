package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable_Basic(t *testing.T) {
	var buf bytes.Buffer
	columns := []string{"name", "age"}
	rows := [][]string{{"Alice", "30"}, {"Bob", "25"}}

	PrintTable(&buf, columns, rows)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "NAME   AGE", lines[0])
	assert.Equal(t, "Alice  30", lines[1])
	assert.Equal(t, "Bob    25", lines[2])
}

func TestPrintTable_MultibyteWidths(t *testing.T) {
	var buf bytes.Buffer

	PrintTable(&buf, []string{"a", "b"}, [][]string{{"Üretim", "x"}, {"İK", "y"}})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "İK      y", lines[2])
}

func TestPrintTable_EmptyColumns(t *testing.T) {
	var buf bytes.Buffer

	PrintTable(&buf, []string{}, [][]string{{"a"}})

	assert.Empty(t, buf.String(), "empty columns should produce no output")
}

func TestPrintTable_EmptyRows(t *testing.T) {
	var buf bytes.Buffer

	PrintTable(&buf, []string{"id", "value"}, nil)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 1, "only the header line should be present")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "VALUE")
}

func TestPrintJSON_Basic(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintJSON(&buf, map[string]string{"hello": "world"}))

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "world", parsed["hello"])
}

func TestPrintDetail_SortedKeysAndValues(t *testing.T) {
	var buf bytes.Buffer

	PrintDetail(&buf, map[string]interface{}{
		"zeta":   "last",
		"alpha":  nil,
		"nested": map[string]interface{}{"k": "v"},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "alpha:"))
	assert.NotContains(t, lines[0], "<nil>")
	assert.Contains(t, lines[1], `{"k":"v"}`)
	assert.True(t, strings.HasPrefix(lines[2], "zeta:"))
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
