package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tkoide/rrtab/internal/schedule"
)

// SingleTableSheet is the sheet name used when the whole group fits at
// one table. Multi-table runs name sheets "Table A", "Table B", ...
const SingleTableSheet = "Tournament"

// SheetName returns the sheet name for a table given the total table count.
func SheetName(table schedule.Table, total int) string {
	if total == 1 {
		return SingleTableSheet
	}
	return "Table " + table.Label
}

// DefaultFilename derives the output path from the participant count.
func DefaultFilename(count int) string {
	return fmt.Sprintf("tournament_%d.xlsx", count)
}

// Generate renders one sheet per table: the match order (preserving the
// schedule's order and seats exactly) followed by an empty result-entry
// grid for score keeping.
func Generate(tables []schedule.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	for _, table := range tables {
		if err := writeTableSheet(f, SheetName(table, len(tables)), table); err != nil {
			return nil, fmt.Errorf("writing sheet for table %s: %w", table.Label, err)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeTableSheet(f *excelize.File, sheet string, table schedule.Table) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Match order block
	row := 1
	f.SetCellValue(sheet, cellRef(1, row), "Match Order")
	f.SetCellStyle(sheet, cellRef(1, row), cellRef(1, row), titleStyle)
	row++

	for col, h := range []string{"1P", "-", "2P"} {
		f.SetCellValue(sheet, cellRef(col+1, row), h)
		f.SetCellStyle(sheet, cellRef(col+1, row), cellRef(col+1, row), headerStyle)
	}
	row++

	for _, m := range table.Matches {
		f.SetCellValue(sheet, cellRef(1, row), m.First)
		f.SetCellValue(sheet, cellRef(2, row), "vs")
		f.SetCellValue(sheet, cellRef(3, row), m.Second)
		f.SetCellStyle(sheet, cellRef(1, row), cellRef(3, row), cellStyle)
		row++
	}

	// Result-entry block
	row += 2
	f.SetCellValue(sheet, cellRef(1, row), "Results")
	f.SetCellStyle(sheet, cellRef(1, row), cellRef(1, row), titleStyle)
	row++

	n := len(table.Participants)
	winsCol, pointsCol, rankCol := n+2, n+3, n+4

	f.SetCellValue(sheet, cellRef(1, row), "-")
	for i, p := range table.Participants {
		f.SetCellValue(sheet, cellRef(i+2, row), p)
	}
	f.SetCellValue(sheet, cellRef(winsCol, row), "Wins")
	f.SetCellValue(sheet, cellRef(pointsCol, row), "Points")
	f.SetCellValue(sheet, cellRef(rankCol, row), "Rank")
	f.SetCellStyle(sheet, cellRef(1, row), cellRef(rankCol, row), headerStyle)
	row++

	for i, p := range table.Participants {
		f.SetCellValue(sheet, cellRef(1, row), p)
		f.SetCellStyle(sheet, cellRef(1, row), cellRef(1, row), headerStyle)

		for j := range table.Participants {
			if i == j {
				f.SetCellValue(sheet, cellRef(j+2, row), "-")
			}
		}
		// Empty bordered cells for results and the three stat columns
		f.SetCellStyle(sheet, cellRef(2, row), cellRef(rankCol, row), cellStyle)
		row++
	}

	for col := 1; col <= rankCol; col++ {
		width := 8.0
		if col >= winsCol {
			width = 10.0
		}
		f.SetColWidth(sheet, colLetter(col), colLetter(col), width)
	}

	return nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
