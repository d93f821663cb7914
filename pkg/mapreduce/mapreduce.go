// Package mapreduce counts string occurrences per document (Map) and merges
// the per-document counts into corpus-wide totals (Reduce).
package mapreduce

// Map counts every occurrence of each string in a single document.
// A paragraph repeated inside one document contributes once per occurrence.
func Map(items []string) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[item]++
	}
	return counts
}

// Reduce aggregates a slice of count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for key, count := range counts {
			finalResults[key] += count
		}
	}

	return finalResults
}
