// apps/go-solver/internal/store/memory.go
//
// In-memory implementation of Store.
//
// Characteristics:
//   - Runs keyed by ID in a map, guarded by an RWMutex.
//   - State is lost when the process restarts.

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

type memory struct {
	mu   sync.RWMutex    // guards runs
	runs map[string]*Run // keyed by Run.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]*Run)}
}

func (m *memory) Save(ctx context.Context, r *Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runs[r.ID]; !ok {
		m.runs[r.ID] = r
	}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) List(ctx context.Context, limit int) ([]*Run, error) {
	m.mu.RLock()
	out := make([]*Run, 0, len(m.runs))
	for _, r := range m.runs {
		out = append(out, r)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
