package nested

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Record is one untyped entry of a parsed list. Absent keys read as zero
// values via the typed accessors.
type Record map[string]any

// ParseList decodes a textual list-of-record encoding. Malformed or empty
// input yields nil, never an error.
func ParseList(raw string) []Record {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "[]" {
		return nil
	}

	if records, ok := decodeJSONList(trimmed); ok {
		return records
	}
	if coerced, ok := pythonToJSON(trimmed); ok {
		if records, ok := decodeJSONList(coerced); ok {
			return records
		}
	}
	return nil
}

func decodeJSONList(raw string) ([]Record, bool) {
	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if m, ok := entry.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records, true
}

// String returns the value under key rendered as a trimmed string, or "" when
// the key is absent or not a string.
func (r Record) String(key string) string {
	if r == nil {
		return ""
	}
	if s, ok := r[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Int64 extracts an integer value, tolerating float and string encodings.
func (r Record) Int64(key string) (int64, bool) {
	if r == nil {
		return 0, false
	}
	switch v := r[key].(type) {
	case float64:
		if math.IsNaN(v) || v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// pythonToJSON rewrites a Python literal list into JSON: single-quoted
// strings become double-quoted, None/True/False become null/true/false.
// Returns false when the input is not even bracket-balanced text.
func pythonToJSON(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return "", false
	}

	var out strings.Builder
	out.Grow(len(raw) + 16)

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch ch {
		case '\'', '"':
			converted, next, ok := convertString(runes, i, ch)
			if !ok {
				return "", false
			}
			out.WriteString(converted)
			i = next
		default:
			if word, next, ok := matchBareword(runes, i); ok {
				out.WriteString(word)
				i = next
				continue
			}
			out.WriteRune(ch)
		}
	}
	return out.String(), true
}

// convertString consumes a quoted literal starting at start and re-emits it
// as a JSON string. Returns the index of the closing quote.
func convertString(runes []rune, start int, quote rune) (string, int, bool) {
	var out strings.Builder
	out.WriteByte('"')
	for i := start + 1; i < len(runes); i++ {
		ch := runes[i]
		switch ch {
		case '\\':
			if i+1 >= len(runes) {
				return "", 0, false
			}
			next := runes[i+1]
			// Python escapes \' which JSON does not know.
			if next == '\'' {
				out.WriteRune('\'')
			} else {
				out.WriteRune('\\')
				out.WriteRune(next)
			}
			i++
		case quote:
			out.WriteByte('"')
			return out.String(), i, true
		case '"':
			out.WriteString(`\"`)
		case '\n':
			out.WriteString(`\n`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteRune(ch)
		}
	}
	return "", 0, false
}

func matchBareword(runes []rune, start int) (string, int, bool) {
	for _, candidate := range [...]struct {
		python string
		json   string
	}{
		{"None", "null"},
		{"True", "true"},
		{"False", "false"},
	} {
		end := start + len(candidate.python)
		if end > len(runes) {
			continue
		}
		if string(runes[start:end]) != candidate.python {
			continue
		}
		if end < len(runes) && isIdentRune(runes[end]) {
			continue
		}
		if start > 0 && isIdentRune(runes[start-1]) {
			continue
		}
		return candidate.json, end - 1, true
	}
	return "", 0, false
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
