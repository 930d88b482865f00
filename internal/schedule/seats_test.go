package schedule

import (
	"reflect"
	"testing"
)

func TestBalanceSeatsFourPlayers(t *testing.T) {
	participants := []string{"A", "B", "C", "D"}
	matches := BalanceSeats(participants, OrderPairs(participants))

	want := []Match{
		{"A", "B"}, {"C", "D"}, {"A", "C"}, {"B", "D"}, {"D", "A"}, {"B", "C"},
	}
	if !reflect.DeepEqual(matches, want) {
		t.Fatalf("matches = %v, want %v", matches, want)
	}

	// Everyone plays 3 matches; nobody should sit first more than twice.
	firsts := make(map[string]int)
	for _, m := range matches {
		firsts[m.First]++
	}
	for _, p := range participants {
		if firsts[p] > 2 {
			t.Errorf("%s sits first %d times out of 3 matches", p, firsts[p])
		}
	}
}

func TestBalanceSeatsEqualWeightsKeepPairOrder(t *testing.T) {
	matches := BalanceSeats([]string{"X", "Y"}, []Pair{{"X", "Y"}})
	if matches[0].First != "X" || matches[0].Second != "Y" {
		t.Errorf("match = %v, want X first", matches[0])
	}
}

func TestBalanceSeatsLowerWeightSitsFirst(t *testing.T) {
	participants := []string{"A", "B", "C"}
	pairs := []Pair{{"A", "B"}, {"A", "C"}}
	matches := BalanceSeats(participants, pairs)

	// A sits first in the opener, so A's weight is +1 and C takes the
	// first seat in the second match.
	want := []Match{{"A", "B"}, {"C", "A"}}
	if !reflect.DeepEqual(matches, want) {
		t.Errorf("matches = %v, want %v", matches, want)
	}
}

// Replaying the weight updates over a full table schedule, no
// participant's net first-seat advantage should drift beyond ±2.
func TestBalanceSeatsWeightStaysBounded(t *testing.T) {
	for _, n := range []int{4, 9, 15, 20, 24} {
		for _, table := range Build(Participants(n)) {
			weight := make(map[string]int)
			for _, m := range table.Matches {
				weight[m.First]++
				weight[m.Second]--
			}
			for _, p := range table.Participants {
				if weight[p] < -2 || weight[p] > 2 {
					t.Errorf("n=%d table %s: %s final seat weight %d", n, table.Label, p, weight[p])
				}
			}
		}
	}
}

func TestBalanceSeatsEmpty(t *testing.T) {
	if matches := BalanceSeats([]string{"A"}, nil); len(matches) != 0 {
		t.Errorf("empty pair list: %d matches, want 0", len(matches))
	}
}
