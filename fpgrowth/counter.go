package fpgrowth

// CountItems first scan: support of every single item, items below minSupport are dropped.
// An item repeated inside one transaction counts once for that transaction.
func CountItems(transactions [][]Item, minSupport int) map[Item]int {
	counts := make(map[Item]int)
	seen := make(map[Item]struct{})
	for _, transaction := range transactions {
		for _, item := range transaction {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			counts[item]++
		}
		for item := range seen {
			delete(seen, item)
		}
	}
	for item, count := range counts {
		if count < minSupport {
			delete(counts, item)
		}
	}
	return counts
}

// countPatternBase item totals inside a conditional pattern base, weighted by path count
func countPatternBase(base []PatternPath, minSupport int) map[Item]int {
	counts := make(map[Item]int)
	for _, path := range base {
		for _, item := range path.Items {
			counts[item] += path.Count
		}
	}
	for item, count := range counts {
		if count < minSupport {
			delete(counts, item)
		}
	}
	return counts
}
