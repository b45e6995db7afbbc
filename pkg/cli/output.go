package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintTable writes rows under upper-cased column headers, separated by two
// spaces. Headers are bold on a terminal.
func PrintTable(w io.Writer, columns []string, rows [][]string) {
	if len(columns) == 0 {
		return
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range rows {
		for i := 0; i < len(columns) && i < len(row); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = pad(strings.ToUpper(c), widths[i])
	}
	line := strings.TrimRight(strings.Join(header, "  "), " ")
	if isTerminal(w) {
		line = ansiBold + line + ansiReset
	}
	_, _ = fmt.Fprintln(w, line)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i := range columns {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			cells[i] = pad(v, widths[i])
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// PrintDetail writes one "key: value" line per field, keys sorted.
func PrintDetail(w io.Writer, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	width := 0
	for k := range fields {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%-*s  %s\n", width+1, k+":", formatValue(fields[k]))
	}
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]interface{}, []interface{}, []string:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
