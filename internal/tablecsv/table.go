package tablecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Codec binds a table name and header to row conversion functions.
type Codec[T any] struct {
	Name   string
	Header []string
	Encode func(T) []string
	Decode func([]string) (T, error)
}

// Path returns the file the codec reads and writes inside dir.
func (c Codec[T]) Path(dir string) string {
	return filepath.Join(dir, c.Name+".csv")
}

// Write persists rows to dir/<name>.csv, creating dir as needed.
func Write[T any](dir string, codec Codec[T], rows []T) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %q: %w", dir, err)
	}
	path := codec.Path(dir)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(codec.Header); err != nil {
		return "", fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, row := range rows {
		record := codec.Encode(row)
		if len(record) != len(codec.Header) {
			return "", fmt.Errorf("encode %s: row has %d fields, header has %d", codec.Name, len(record), len(codec.Header))
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write row of %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	return path, nil
}

// Read loads dir/<name>.csv back into rows, verifying the header matches.
func Read[T any](dir string, codec Codec[T]) ([]T, error) {
	path := codec.Path(dir)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	if strings.Join(header, ",") != strings.Join(codec.Header, ",") {
		return nil, fmt.Errorf("%s: unexpected header %v", path, header)
	}

	var rows []T
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		row, err := codec.Decode(record)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadRaw loads any CSV as header plus string rows, for consumers that do not
// need typed rows (the SQLite builder).
func ReadRaw(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

// Null-tolerant cell helpers shared by the codecs.

func formatInt64Ptr(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseInt64(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func parseInt64Ptr(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseFloatPtr(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
