package rawio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrMissingFile marks a structural failure: a required raw input is absent.
var ErrMissingFile = errors.New("missing input file")

// Load reads one raw CSV into a Table. The file bytes are decoded as UTF-8
// when valid and as Latin-1 otherwise. Rows wider than the header are
// truncated, narrower rows are skipped and counted.
func Load(name, path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrMissingFile, name, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("decode %s as latin-1: %w", path, decErr)
		}
		data = decoded
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty", ErrMissingFile, name)
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF"))
	}

	table := &Table{Name: name, Header: header}
	width := len(header)
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// encoding/csv only fails per record here; treat the row as
			// malformed and keep going.
			table.Skipped++
			continue
		}
		switch {
		case len(row) == width:
			table.Rows = append(table.Rows, row)
		case len(row) > width:
			table.Rows = append(table.Rows, row[:width])
		default:
			table.Skipped++
		}
	}

	return table, nil
}

// LoadAll loads the named raw files, failing fast on the first structural
// problem. Keys of files are logical table names.
func LoadAll(files map[string]string) (map[string]*Table, error) {
	tables := make(map[string]*Table, len(files))
	for name, path := range files {
		table, err := Load(name, path)
		if err != nil {
			return nil, err
		}
		tables[name] = table
	}
	return tables, nil
}
