package csvparser

import (
	"reflect"
	"testing"
)

func TestParseLine_QuotedCommas(t *testing.T) {
	got := ParseLine(`"Doe, John",42,"Madrid, Spain"`)
	want := []string{"Doe, John", "42", "Madrid, Spain"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseLine_QuoteStrippingOneLayer(t *testing.T) {
	got := ParseLine(`'single',plain`)
	if got[0] != "single" || got[1] != "plain" {
		t.Fatalf("unexpected fields: %v", got)
	}

	// A value with no wrapping quotes is unchanged; stripping is applied
	// at most once.
	if v := stripWrappingQuotes("no quotes"); v != "no quotes" {
		t.Fatalf("unwrapped value changed: %q", v)
	}
	if v := stripWrappingQuotes(`''double-wrapped''`); v != `'double-wrapped'` {
		t.Fatalf("expected exactly one layer stripped, got %q", v)
	}
}

func TestParseLine_UnterminatedQuote(t *testing.T) {
	// The dangling quote toggles the state, so the comma stays inside the
	// field; the line is still flushed without error.
	got := ParseLine(`"abc,def`)
	want := []string{"abc,def"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseLine_EmptyLine(t *testing.T) {
	got := ParseLine("")
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("empty line should yield one empty field, got %v", got)
	}
}

func TestParseLine_WhitespaceTrimmed(t *testing.T) {
	got := ParseLine(` a , b ,  "c"  `)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDocument_HeaderValueMismatch(t *testing.T) {
	doc := ParseDocument("id,name,city\n1,Ana\n2,Luis,Madrid,extra")

	if doc.RowCount != 2 || doc.ColumnCount != 3 {
		t.Fatalf("unexpected counts: rows=%d cols=%d", doc.RowCount, doc.ColumnCount)
	}
	if doc.Rows[0]["city"] != "" {
		t.Fatalf("missing trailing field should be empty, got %q", doc.Rows[0]["city"])
	}
	if doc.Rows[1]["city"] != "Madrid" {
		t.Fatalf("got %q", doc.Rows[1]["city"])
	}
}

func TestParseDocument_CRLF(t *testing.T) {
	doc := ParseDocument("id,name\r\n1,Ana\r\n")
	if doc.Rows[0]["name"] != "Ana" {
		t.Fatalf("carriage return not stripped: %q", doc.Rows[0]["name"])
	}
}

func TestParseDocument_EmptyHeaderLabel(t *testing.T) {
	doc := ParseDocument("id,,name\n1,x,Ana")
	if doc.Headers[1] != "Columna_2" {
		t.Fatalf("empty header not replaced: %v", doc.Headers)
	}
	if doc.Rows[0]["Columna_2"] != "x" {
		t.Fatalf("placeholder column not addressable: %v", doc.Rows[0])
	}
}
