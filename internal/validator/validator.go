// Package validator re-reads a generated tournament workbook and checks
// that its match schedule still holds the generator's guarantees. Hard
// failures (missing or duplicated pairs, unknown names, wrong table
// shape) are errors; degraded fairness from manual reordering is a
// warning.
package validator

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tkoide/rrtab/internal/schedule"
)

// Violation represents a problem found during validation.
type Violation struct {
	Sheet   string
	Type    string // "error" or "warning"
	Message string
}

// tableData is one table sheet parsed back from the workbook.
type tableData struct {
	Sheet   string
	Roster  []string
	Matches []schedule.Match
}

// Validate reads a tournament workbook and checks every table sheet.
func Validate(path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	var tables []tableData
	var violations []Violation
	for _, sheet := range f.GetSheetList() {
		table, errs := parseSheet(f, sheet)
		violations = append(violations, errs...)
		if table != nil {
			tables = append(tables, *table)
		}
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("no table sheets found in %s", path)
	}

	for _, table := range tables {
		violations = append(violations, checkPairCoverage(table)...)
		violations = append(violations, checkOrderBalance(table)...)
		violations = append(violations, checkSeatBalance(table)...)
	}
	violations = append(violations, checkTableShape(tables)...)

	return violations, nil
}

// parseSheet extracts the match order block and the results-grid roster.
// Returns nil plus error violations when either block is missing.
func parseSheet(f *excelize.File, sheet string) (*tableData, []Violation) {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) == 0 {
		return nil, []Violation{{
			Sheet: sheet, Type: "error",
			Message: "sheet is empty or unreadable",
		}}
	}

	table := tableData{Sheet: sheet}

	inMatches := false
	for i, row := range rows {
		if len(row) == 0 {
			inMatches = false
			continue
		}
		switch row[0] {
		case "Match Order":
			inMatches = true
			continue
		case "Results":
			if i+1 < len(rows) {
				table.Roster = parseRosterHeader(rows[i+1])
			}
			inMatches = false
			continue
		}

		if inMatches && len(row) >= 3 && row[1] == "vs" {
			table.Matches = append(table.Matches, schedule.Match{First: row[0], Second: row[2]})
		}
	}

	var violations []Violation
	if len(table.Matches) == 0 {
		violations = append(violations, Violation{
			Sheet: sheet, Type: "error",
			Message: "no match order block found",
		})
	}
	if len(table.Roster) == 0 {
		violations = append(violations, Violation{
			Sheet: sheet, Type: "error",
			Message: "no results grid found",
		})
	}
	if len(violations) > 0 {
		return nil, violations
	}
	return &table, nil
}

// parseRosterHeader reads participant names from the results-grid header
// row: a leading "-", the names, then the Wins/Points/Rank columns.
func parseRosterHeader(row []string) []string {
	var roster []string
	for i, cell := range row {
		if i == 0 {
			continue
		}
		if cell == "Wins" {
			break
		}
		if cell != "" {
			roster = append(roster, cell)
		}
	}
	return roster
}

// checkPairCoverage verifies the match list is exactly the roster's full
// combination set: every unordered pair once, nothing extra.
func checkPairCoverage(table tableData) []Violation {
	members := make(map[string]bool, len(table.Roster))
	for _, p := range table.Roster {
		members[p] = true
	}

	var violations []Violation
	counts := make(map[schedule.Pair]int)
	for _, m := range table.Matches {
		if m.First == m.Second {
			violations = append(violations, Violation{
				Sheet: table.Sheet, Type: "error",
				Message: fmt.Sprintf("%s is paired against themselves", m.First),
			})
			continue
		}
		for _, p := range []string{m.First, m.Second} {
			if !members[p] {
				violations = append(violations, Violation{
					Sheet: table.Sheet, Type: "error",
					Message: fmt.Sprintf("%s plays a match but is not in the results grid", p),
				})
			}
		}
		counts[normalizePair(m.First, m.Second)]++
	}

	for pair, count := range counts {
		if count > 1 {
			violations = append(violations, Violation{
				Sheet: table.Sheet, Type: "error",
				Message: fmt.Sprintf("%s vs %s scheduled %d times, want 1", pair.A, pair.B, count),
			})
		}
	}
	for i := 0; i < len(table.Roster); i++ {
		for j := i + 1; j < len(table.Roster); j++ {
			pair := normalizePair(table.Roster[i], table.Roster[j])
			if counts[pair] == 0 {
				violations = append(violations, Violation{
					Sheet: table.Sheet, Type: "error",
					Message: fmt.Sprintf("%s vs %s is missing from the match order", pair.A, pair.B),
				})
			}
		}
	}
	return violations
}

// checkOrderBalance replays the match order and warns when the running
// per-participant match counts drift apart. Tables of up to 5 keep the
// spread within 1; 6-player tables reach 2 at one point, never more.
func checkOrderBalance(table tableData) []Violation {
	allowed := 1
	if len(table.Roster) >= 6 {
		allowed = 2
	}

	load := make(map[string]int, len(table.Roster))
	for _, p := range table.Roster {
		load[p] = 0
	}

	for i, m := range table.Matches {
		load[m.First]++
		load[m.Second]++

		min, max := load[table.Roster[0]], load[table.Roster[0]]
		for _, p := range table.Roster {
			if load[p] < min {
				min = load[p]
			}
			if load[p] > max {
				max = load[p]
			}
		}
		if max-min > allowed {
			return []Violation{{
				Sheet: table.Sheet, Type: "warning",
				Message: fmt.Sprintf("after match %d the match-count spread is %d (max %d); the order looks hand-edited", i+1, max-min, allowed),
			}}
		}
	}
	return nil
}

// checkSeatBalance warns when a participant's 1P/2P split is lopsided.
func checkSeatBalance(table tableData) []Violation {
	weight := make(map[string]int, len(table.Roster))
	for _, m := range table.Matches {
		weight[m.First]++
		weight[m.Second]--
	}

	var violations []Violation
	for _, p := range table.Roster {
		if weight[p] < -2 || weight[p] > 2 {
			violations = append(violations, Violation{
				Sheet: table.Sheet, Type: "warning",
				Message: fmt.Sprintf("%s has a 1P/2P imbalance of %+d", p, weight[p]),
			})
		}
	}
	return violations
}

// checkTableShape verifies the workbook's tables match the sizing rule
// for the combined roster: right table count, sizes within 1 of each other.
func checkTableShape(tables []tableData) []Violation {
	total := 0
	for _, table := range tables {
		total += len(table.Roster)
	}

	var violations []Violation
	expected := schedule.Split(schedule.Participants(total))
	if len(expected) != len(tables) {
		violations = append(violations, Violation{
			Type:    "error",
			Message: fmt.Sprintf("%d participants should play at %d tables, found %d", total, len(expected), len(tables)),
		})
	}

	min, max := len(tables[0].Roster), len(tables[0].Roster)
	for _, table := range tables {
		if len(table.Roster) < min {
			min = len(table.Roster)
		}
		if len(table.Roster) > max {
			max = len(table.Roster)
		}
	}
	if max-min > 1 {
		violations = append(violations, Violation{
			Type:    "error",
			Message: fmt.Sprintf("table sizes range from %d to %d, want a spread of at most 1", min, max),
		})
	}
	return violations
}

func normalizePair(a, b string) schedule.Pair {
	if a > b {
		a, b = b, a
	}
	return schedule.Pair{A: a, B: b}
}
