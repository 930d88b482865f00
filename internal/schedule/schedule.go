// Package schedule builds fair round-robin match schedules. Large groups
// are split into independent tables; within a table every pair of
// participants meets exactly once, match order keeps per-participant
// match counts level, and seat assignment (1P/2P) is balanced over time.
package schedule

// Pair is an unordered matchup between two participants.
type Pair struct {
	A string
	B string
}

// Match is a Pair with seats resolved: First takes the 1P side.
type Match struct {
	First  string
	Second string
}

// Table is one independent round-robin group with its finished schedule.
type Table struct {
	Label        string // "A", "B", ...
	Participants []string
	Matches      []Match
}

// Participants generates letter labels for a participant count: A, B, C...
func Participants(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	return names
}

// Build splits participants into tables and produces each table's
// ordered, seat-balanced schedule. Tables are computed independently;
// identical input always yields identical output.
func Build(participants []string) []Table {
	groups := Split(participants)

	tables := make([]Table, 0, len(groups))
	for i, group := range groups {
		pairs := OrderPairs(group)
		tables = append(tables, Table{
			Label:        string(rune('A' + i)),
			Participants: group,
			Matches:      BalanceSeats(group, pairs),
		})
	}
	return tables
}
