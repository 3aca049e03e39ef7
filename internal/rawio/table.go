package rawio

import (
	"strconv"
	"strings"
)

// Table is a raw CSV table: a header and string rows. Cells hold the source
// text verbatim; empty cells mean missing values.
type Table struct {
	Name    string
	Header  []string
	Rows    [][]string
	Skipped int

	index map[string]int
}

// Col returns the index of the named column, or -1 when absent.
func (t *Table) Col(name string) int {
	if t.index == nil {
		t.index = make(map[string]int, len(t.Header))
		for i, col := range t.Header {
			if _, ok := t.index[col]; !ok {
				t.index[col] = i
			}
		}
	}
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Cell returns the trimmed cell of row at the named column, or "" when the
// column is absent.
func (t *Table) Cell(row []string, name string) string {
	i := t.Col(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Int64Cell parses the named cell as an integer, tolerating float encodings
// such as "862.0" that appear throughout the dataset.
func (t *Table) Int64Cell(row []string, name string) (int64, bool) {
	return ParseInt64(t.Cell(row, name))
}

// Float64Cell parses the named cell as a float.
func (t *Table) Float64Cell(row []string, name string) (float64, bool) {
	raw := t.Cell(row, name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt64 parses integers that may be serialized as floats ("862.0").
func ParseInt64(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}
