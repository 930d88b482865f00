package schedule

// OrderPairs returns every unordered pair of participants exactly once,
// ordered so that at any prefix no participant is far ahead of or behind
// the others in matches played.
//
// Pairs are generated in the lexicographic order implied by the input,
// then emitted greedily: each step picks the remaining pair whose
// members have the lowest combined match count so far. Ties prefer the
// pair containing the single least-played member; remaining ties keep
// the earliest-generated pair, which makes the order deterministic.
func OrderPairs(participants []string) []Pair {
	remaining := combinations(participants)

	load := make(map[string]int, len(participants))
	for _, p := range participants {
		load[p] = 0
	}

	ordered := make([]Pair, 0, len(remaining))
	for len(remaining) > 0 {
		best := 0
		bestScore := load[remaining[0].A] + load[remaining[0].B]
		for i := 1; i < len(remaining); i++ {
			score := load[remaining[i].A] + load[remaining[i].B]
			switch {
			case score < bestScore:
				best, bestScore = i, score
			case score == bestScore:
				if minLoad(load, remaining[i]) < minLoad(load, remaining[best]) {
					best = i
				}
			}
		}

		pair := remaining[best]
		ordered = append(ordered, pair)
		load[pair.A]++
		load[pair.B]++
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return ordered
}

// combinations generates all C(n,2) pairs in input order: (0,1), (0,2)...
func combinations(participants []string) []Pair {
	n := len(participants)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{A: participants[i], B: participants[j]})
		}
	}
	return pairs
}

func minLoad(load map[string]int, p Pair) int {
	if load[p.A] < load[p.B] {
		return load[p.A]
	}
	return load[p.B]
}
