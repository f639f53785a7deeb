package history

import (
	"context"
	"sync"
)

type memRepo struct {
	mu      sync.Mutex
	records map[string]*Record
	order   []string // newest last
}

func NewMemoryRepo() Repo {
	return &memRepo{records: make(map[string]*Record)}
}

// 内存版忽略 TTL，只保留最近 recentCap 条
func (m *memRepo) Save(ctx context.Context, rec *Record, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.ID]; !ok {
		m.order = append(m.order, rec.ID)
	}
	m.records[rec.ID] = rec
	for len(m.order) > recentCap {
		delete(m.records, m.order[0])
		m.order = m.order[1:]
	}
	return nil
}

func (m *memRepo) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (m *memRepo) Recent(ctx context.Context, n int) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Record, 0, n)
	for i := len(m.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.records[m.order[i]])
	}
	return out, nil
}
