package schedule

// tableCount returns how many tables a group of the given size plays at.
func tableCount(n int) int {
	switch {
	case n <= 6:
		return 1
	case n <= 12:
		return 2
	case n <= 18:
		return 3
	default:
		return 4
	}
}

// Split partitions participants into contiguous tables. Groups of up to
// 6 stay at one table; 7-12 split into two, 13-18 into three, larger
// groups into four. When the count doesn't divide evenly, the leading
// tables take the extra member, so table sizes differ by at most one.
// Concatenating the result in order reproduces the input exactly.
func Split(participants []string) [][]string {
	n := len(participants)
	if n == 0 {
		return nil
	}

	k := tableCount(n)
	base, rem := n/k, n%k

	tables := make([][]string, 0, k)
	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < rem {
			size++
		}
		tables = append(tables, participants[start:start+size])
		start += size
	}
	return tables
}
