package excel

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tkoide/rrtab/internal/schedule"
)

func TestGenerateSingleTable(t *testing.T) {
	tables := schedule.Build(schedule.Participants(4))
	f, err := Generate(tables)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	t.Run("single table uses Tournament sheet", func(t *testing.T) {
		idx, err := f.GetSheetIndex(SingleTableSheet)
		if err != nil {
			t.Fatalf("GetSheetIndex error: %v", err)
		}
		if idx < 0 {
			t.Fatal("Tournament sheet not found")
		}
	})

	t.Run("default Sheet1 removed", func(t *testing.T) {
		idx, _ := f.GetSheetIndex("Sheet1")
		if idx >= 0 {
			t.Error("Sheet1 should be removed")
		}
	})

	t.Run("match order block", func(t *testing.T) {
		val, _ := f.GetCellValue(SingleTableSheet, "A1")
		if val != "Match Order" {
			t.Errorf("A1 = %q, want Match Order", val)
		}
		for cell, want := range map[string]string{"A2": "1P", "B2": "-", "C2": "2P"} {
			if val, _ := f.GetCellValue(SingleTableSheet, cell); val != want {
				t.Errorf("%s = %q, want %q", cell, val, want)
			}
		}

		// First scheduled match is A vs B; rows 3-8 hold the 6 matches.
		if val, _ := f.GetCellValue(SingleTableSheet, "A3"); val != "A" {
			t.Errorf("A3 = %q, want A", val)
		}
		if val, _ := f.GetCellValue(SingleTableSheet, "B3"); val != "vs" {
			t.Errorf("B3 = %q, want vs", val)
		}
		if val, _ := f.GetCellValue(SingleTableSheet, "C3"); val != "B" {
			t.Errorf("C3 = %q, want B", val)
		}
		if val, _ := f.GetCellValue(SingleTableSheet, "A8"); val == "" {
			t.Error("A8 empty, want last match row")
		}
	})

	t.Run("results block", func(t *testing.T) {
		if val, _ := f.GetCellValue(SingleTableSheet, "A11"); val != "Results" {
			t.Errorf("A11 = %q, want Results", val)
		}
		for cell, want := range map[string]string{
			"A12": "-", "B12": "A", "C12": "B", "D12": "C", "E12": "D",
			"F12": "Wins", "G12": "Points", "H12": "Rank",
		} {
			if val, _ := f.GetCellValue(SingleTableSheet, cell); val != want {
				t.Errorf("%s = %q, want %q", cell, val, want)
			}
		}

		// Diagonal dashes in the grid
		for _, cell := range []string{"B13", "C14", "D15", "E16"} {
			if val, _ := f.GetCellValue(SingleTableSheet, cell); val != "-" {
				t.Errorf("%s = %q, want -", cell, val)
			}
		}
	})
}

func TestGenerateMultiTable(t *testing.T) {
	tables := schedule.Build(schedule.Participants(9))
	f, err := Generate(tables)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, sheet := range []string{"Table A", "Table B"} {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			t.Fatalf("GetSheetIndex error: %v", err)
		}
		if idx < 0 {
			t.Errorf("sheet %q not found", sheet)
		}
	}

	// Table B holds F-I: 6 matches in rows 3-8, nothing in row 9.
	if val, _ := f.GetCellValue("Table B", "A3"); val != "F" {
		t.Errorf("Table B A3 = %q, want F", val)
	}
	if val, _ := f.GetCellValue("Table B", "A9"); val != "" {
		t.Errorf("Table B A9 = %q, want empty", val)
	}
}

func TestWriteAndRead(t *testing.T) {
	tables := schedule.Build(schedule.Participants(6))
	f, err := Generate(tables)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	path := t.TempDir() + "/" + DefaultFilename(6)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs error: %v", err)
	}

	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile error: %v", err)
	}
	defer f2.Close()

	val, _ := f2.GetCellValue(SingleTableSheet, "A1")
	if val != "Match Order" {
		t.Errorf("re-read A1 = %q, want Match Order", val)
	}
}

func TestDefaultFilename(t *testing.T) {
	if got := DefaultFilename(12); got != "tournament_12.xlsx" {
		t.Errorf("DefaultFilename(12) = %q", got)
	}
}
