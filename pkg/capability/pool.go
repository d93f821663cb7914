// Package capability caches one expensive, language-specific component per
// language code for the lifetime of a run.
package capability

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Factory builds the component for a normalized language code.
type Factory[T any] func(code string) (T, error)

// Pool lazily creates and memoizes a component per language code.
// Creation for a given code runs at most once at a time; successful
// results are kept until the pool is dropped, failures are not cached.
type Pool[T any] struct {
	name    string
	factory Factory[T]

	mu    sync.RWMutex
	items map[string]T
	group singleflight.Group
}

// NewPool returns an empty pool. name is used in error messages.
func NewPool[T any](name string, factory Factory[T]) *Pool[T] {
	return &Pool[T]{
		name:    name,
		factory: factory,
		items:   make(map[string]T),
	}
}

// GetOrCreate returns the cached component for code, building it on first use.
func (p *Pool[T]) GetOrCreate(code string) (T, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	p.mu.RLock()
	item, ok := p.items[code]
	p.mu.RUnlock()
	if ok {
		return item, nil
	}

	v, err, _ := p.group.Do(code, func() (any, error) {
		p.mu.RLock()
		existing, ok := p.items[code]
		p.mu.RUnlock()
		if ok {
			return existing, nil
		}

		created, err := p.factory(code)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.items[code] = created
		p.mu.Unlock()
		return created, nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s[%s]: %w", p.name, code, err)
	}
	return v.(T), nil
}

// Put stores item under code, replacing any cached value.
func (p *Pool[T]) Put(code string, item T) {
	code = strings.ToLower(strings.TrimSpace(code))
	p.mu.Lock()
	p.items[code] = item
	p.mu.Unlock()
}

// Languages returns the cached codes, sorted.
func (p *Pool[T]) Languages() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	codes := make([]string, 0, len(p.items))
	for code := range p.items {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
