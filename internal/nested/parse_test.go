package nested

import "testing"

func TestParseListJSON(t *testing.T) {
	records := ParseList(`[{"id": 16, "name": "Animation"}, {"id": 35, "name": "Comedy"}]`)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].String("name"); got != "Animation" {
		t.Fatalf("unexpected name: %q", got)
	}
	id, ok := records[1].Int64("id")
	if !ok || id != 35 {
		t.Fatalf("unexpected id: %d ok=%v", id, ok)
	}
}

func TestParseListPythonLiteral(t *testing.T) {
	raw := `[{'id': 16, 'name': 'Animation'}, {'id': 10749, 'name': 'Romance'}]`
	records := ParseList(raw)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[1].String("name"); got != "Romance" {
		t.Fatalf("unexpected name: %q", got)
	}
}

func TestParseListPythonEscapesAndNone(t *testing.T) {
	raw := `[{'name': "O'Brien", 'character': 'Det. "Dee" Smith', 'order': None}]`
	records := ParseList(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].String("name"); got != "O'Brien" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := records[0].String("character"); got != `Det. "Dee" Smith` {
		t.Fatalf("unexpected character: %q", got)
	}
	if _, ok := records[0].Int64("order"); ok {
		t.Fatal("expected missing order for None")
	}
}

func TestParseListEscapedSingleQuote(t *testing.T) {
	raw := `[{'name': 'It\'s Alive', 'id': 1}]`
	records := ParseList(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].String("name"); got != "It's Alive" {
		t.Fatalf("unexpected name: %q", got)
	}
}

func TestParseListMalformed(t *testing.T) {
	for _, raw := range []string{"", "[]", "nan", "not a list", "[{'id': }", "{'id': 1}"} {
		if got := ParseList(raw); len(got) != 0 {
			t.Fatalf("expected empty result for %q, got %v", raw, got)
		}
	}
}

func TestParseListSkipsNonRecordEntries(t *testing.T) {
	records := ParseList(`[1, "x", {"id": 2, "name": "Drama"}]`)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].String("name"); got != "Drama" {
		t.Fatalf("unexpected name: %q", got)
	}
}

func TestRecordInt64Tolerance(t *testing.T) {
	records := ParseList(`[{"a": 1.0, "b": "7", "c": 1.5, "d": "x"}]`)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if v, ok := rec.Int64("a"); !ok || v != 1 {
		t.Fatalf("float coercion failed: %d %v", v, ok)
	}
	if v, ok := rec.Int64("b"); !ok || v != 7 {
		t.Fatalf("string coercion failed: %d %v", v, ok)
	}
	if _, ok := rec.Int64("c"); ok {
		t.Fatal("fractional float should not coerce")
	}
	if _, ok := rec.Int64("d"); ok {
		t.Fatal("non-numeric string should not coerce")
	}
}
