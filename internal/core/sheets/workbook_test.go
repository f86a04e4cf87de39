package sheets

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadUploadedGridCSV(t *testing.T) {
	grid, err := LoadUploadedGrid(strings.NewReader("a,\"b,c\"\n1,2\n"), "export.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grid) != 2 || grid[0][1] != "b,c" {
		t.Fatalf("got %v", grid)
	}
}

func TestLoadUploadedGridXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Carimbo de data/hora", "PA"}); err != nil {
		t.Fatalf("set header: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]interface{}{"10/05/2024", "2"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	grid, err := LoadUploadedGrid(bytes.NewReader(buf.Bytes()), "export.xlsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("expected 2 rows, got %v", grid)
	}
	if grid[0][1] != "PA" || grid[1][0] != "10/05/2024" {
		t.Fatalf("got %v", grid)
	}
}

func TestLoadUploadedGridUnsupportedExtension(t *testing.T) {
	if _, err := LoadUploadedGrid(strings.NewReader("x"), "export.pdf"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadUploadedGridCorruptWorkbook(t *testing.T) {
	if _, err := LoadUploadedGrid(strings.NewReader("not a workbook"), "export.xlsx"); err == nil {
		t.Fatal("expected error for corrupt workbook")
	}
}
