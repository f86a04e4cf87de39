package sheets

import (
	"testing"
	"time"
)

func TestParseSheetDate(t *testing.T) {
	got, ok := ParseSheetDate("05/03/2024")
	if !ok {
		t.Fatal("expected ok for valid date")
	}
	if got.Day() != 5 || got.Month() != time.March || got.Year() != 2024 {
		t.Fatalf("got %v, want 05/03/2024", got)
	}
	if got.Hour() != 12 {
		t.Fatalf("expected noon anchor, got hour %d", got.Hour())
	}
}

func TestParseSheetDateIgnoresTimeOfDay(t *testing.T) {
	early, ok1 := ParseSheetDate("05/03/2024 00:00:01")
	late, ok2 := ParseSheetDate("05/03/2024 23:59:59")
	if !ok1 || !ok2 {
		t.Fatal("expected both timestamps to parse")
	}
	if !early.Equal(late) {
		t.Fatalf("same calendar day should be equal: %v vs %v", early, late)
	}
}

func TestParseSheetDateInvalid(t *testing.T) {
	cases := []string{"", "05-03-2024", "05/03", "aa/bb/cccc", "05/03/2024/01"}
	for _, c := range cases {
		if _, ok := ParseSheetDate(c); ok {
			t.Fatalf("ParseSheetDate(%q) should not parse", c)
		}
	}
}

func TestParseSheetDateRollsOver(t *testing.T) {
	// 31/02 não existe; time.Date normaliza por rolagem, nunca falha.
	got, ok := ParseSheetDate("31/02/2024")
	if !ok {
		t.Fatal("structurally valid 3-part date should parse")
	}
	if got.Month() != time.March || got.Day() != 2 {
		t.Fatalf("expected rollover to 02/03/2024, got %v", got)
	}
}

func TestWindowContains(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	end := time.Date(2024, 5, 31, 12, 0, 0, 0, time.Local)
	w := Window{Start: &start, End: &end}

	inside, _ := ParseSheetDate("10/05/2024 23:50:00")
	if !w.Contains(inside) {
		t.Fatal("date inside window excluded")
	}
	onStart, _ := ParseSheetDate("01/05/2024")
	if !w.Contains(onStart) {
		t.Fatal("window must be closed on the start bound")
	}
	onEnd, _ := ParseSheetDate("31/05/2024")
	if !w.Contains(onEnd) {
		t.Fatal("window must be closed on the end bound")
	}
	before, _ := ParseSheetDate("30/04/2024")
	if w.Contains(before) {
		t.Fatal("date before window included")
	}
}

func TestWindowUnbounded(t *testing.T) {
	var w Window
	any, _ := ParseSheetDate("01/01/1990")
	if !w.Contains(any) {
		t.Fatal("fully unbounded window must contain everything")
	}

	end := time.Date(2024, 5, 31, 12, 0, 0, 0, time.Local)
	w.End = &end
	after, _ := ParseSheetDate("01/06/2024")
	if w.Contains(after) {
		t.Fatal("date after end included in half-bounded window")
	}
}

func TestWindowPriorYear(t *testing.T) {
	start := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	prior := Window{Start: &start, End: &end}.PriorYear()

	if prior.Start.Year() != 2023 || prior.Start.Month() != time.May || prior.Start.Day() != 10 {
		t.Fatalf("prior start = %v, want 10/05/2023", prior.Start)
	}
	if prior.End.Year() != 2023 || prior.End.Month() != time.June || prior.End.Day() != 10 {
		t.Fatalf("prior end = %v, want 10/06/2023", prior.End)
	}
}

func TestWindowPriorYearLeapDay(t *testing.T) {
	// 29/02/2024 - 1 ano = 29/02/2023, que não existe: rola para 01/03/2023.
	start := time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local)
	prior := Window{Start: &start}.PriorYear()
	if prior.Start.Year() != 2023 || prior.Start.Month() != time.March || prior.Start.Day() != 1 {
		t.Fatalf("prior leap start = %v, want 01/03/2023", prior.Start)
	}
}

func TestFilterRowsExcludesUnparseableDates(t *testing.T) {
	rows := [][]string{
		{"10/05/2024", "1"},
		{"sem data", "2"},
		{"", "3"},
		{"20/05/2024 10:00:00", "4"},
	}
	got := filterRows(rows, 0, Window{})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows with parseable dates, got %d", len(got))
	}
}
