package dedup

import "fmt"

// DefaultThreshold is the repeat count at which a paragraph is treated as boilerplate.
const DefaultThreshold = 5

// Eliminator removes paragraphs whose corpus-wide count reaches the threshold.
//
// A threshold of 1 or less removes every paragraph that was counted at all,
// including paragraphs repeated only inside a single document.
type Eliminator struct {
	table     Table
	threshold int
}

// NewEliminator returns an eliminator reading from a fully built table.
func NewEliminator(table Table, threshold int) *Eliminator {
	return &Eliminator{table: table, threshold: threshold}
}

// Eliminate keeps paragraphs with count < threshold, preserving order.
func (e *Eliminator) Eliminate(paragraphs []string) ([]string, error) {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		n, err := e.table.Count(p)
		if err != nil {
			return nil, fmt.Errorf("failed to look up paragraph count: %w", err)
		}
		if n < e.threshold {
			kept = append(kept, p)
		}
	}
	return kept, nil
}
