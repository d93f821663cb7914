// Package dedup holds the corpus-wide paragraph frequency table and the
// eliminator that drops paragraphs repeated across the corpus.
package dedup

import "sync"

// Table maps an exact paragraph string to its corpus-wide occurrence count.
// It is filled during pass 1 and only read during pass 2.
type Table interface {
	// Merge adds per-document counts (see mapreduce.Map) to the table.
	Merge(counts map[string]int) error
	// Count returns the occurrences recorded for paragraph, 0 if unseen.
	Count(paragraph string) (int, error)
	// Len returns the number of distinct paragraphs.
	Len() (int, error)
	Close() error
}

// MemoryTable is the default in-process Table.
type MemoryTable struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewMemoryTable returns an empty in-memory table.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{counts: make(map[string]int)}
}

// Merge folds counts into the table.
func (t *MemoryTable) Merge(counts map[string]int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for paragraph, n := range counts {
		t.counts[paragraph] += n
	}
	return nil
}

// Count returns the recorded count for paragraph.
func (t *MemoryTable) Count(paragraph string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[paragraph], nil
}

// Len returns the number of distinct paragraphs.
func (t *MemoryTable) Len() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.counts), nil
}

// Close releases the table contents.
func (t *MemoryTable) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts = nil
	return nil
}
