package themes

import "sort"

// TopByUsage returns the n most-used themes, sorted by usage count descending.
// Ties keep their original order. The input is not modified.
func TopByUsage(all []Theme, n int) []Theme {
	if n <= 0 {
		return nil
	}

	ranked := make([]Theme, len(all))
	copy(ranked, all)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UsageCount > ranked[j].UsageCount
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
