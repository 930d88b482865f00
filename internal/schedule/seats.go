package schedule

// BalanceSeats assigns the 1P/2P seats for an ordered pair sequence.
//
// Each participant carries a running weight: +1 every time it sits
// first, -1 every time it sits second. The lower-weight member of a
// pair takes the first seat, so repeated first-seat assignments make a
// participant progressively less likely to sit first again. Equal
// weights keep the pair's original member order. The input order is
// processed as-is; the policy is history-dependent and must not be
// applied to a re-sorted sequence.
func BalanceSeats(participants []string, pairs []Pair) []Match {
	weight := make(map[string]int, len(participants))
	for _, p := range participants {
		weight[p] = 0
	}

	matches := make([]Match, 0, len(pairs))
	for _, pair := range pairs {
		first, second := pair.A, pair.B
		if weight[pair.B] < weight[pair.A] {
			first, second = pair.B, pair.A
		}
		weight[first]++
		weight[second]--
		matches = append(matches, Match{First: first, Second: second})
	}
	return matches
}
