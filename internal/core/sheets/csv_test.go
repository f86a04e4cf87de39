package sheets

import (
	"reflect"
	"testing"
)

func TestParseCSVQuotedComma(t *testing.T) {
	got := ParseCSV("a,\"b,c\",d\n1,2,3")
	want := [][]string{{"a", "b,c", "d"}, {"1", "2", "3"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCSVEscapedQuote(t *testing.T) {
	got := ParseCSV(`a,"b""c",d`)
	want := [][]string{{"a", `b"c`, "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCSVQuotedNewline(t *testing.T) {
	got := ParseCSV("a,\"b\nc\",d\n1,2,3")
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(got), got)
	}
	if got[0][1] != "b\nc" {
		t.Fatalf("embedded newline lost: %q", got[0][1])
	}
}

func TestParseCSVCRLF(t *testing.T) {
	got := ParseCSV("a,b\r\nc,d\r\n")
	want := [][]string{{"a", "b"}, {"c", "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCSVTrailingRowWithoutNewline(t *testing.T) {
	got := ParseCSV("a,b\nc,d")
	if len(got) != 2 {
		t.Fatalf("expected trailing row to be emitted, got %v", got)
	}
}

func TestParseCSVUnterminatedQuote(t *testing.T) {
	got := ParseCSV(`a,"bc`)
	want := [][]string{{"a", "bc"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCSVTrimsCells(t *testing.T) {
	got := ParseCSV("  a  , b \n")
	want := [][]string{{"a", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	if got := ParseCSV(""); len(got) != 0 {
		t.Fatalf("expected no rows, got %v", got)
	}
}

func TestCellAtShortRow(t *testing.T) {
	row := []string{"10/05/2024", "ALFA"}
	if got := cellAt(row, 25); got != "" {
		t.Fatalf("short row access should be empty, got %q", got)
	}
	if got := cellAt(row, -1); got != "" {
		t.Fatalf("negative index should be empty, got %q", got)
	}
	if got := cellAt(row, 1); got != "ALFA" {
		t.Fatalf("got %q, want ALFA", got)
	}
}
