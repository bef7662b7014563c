package store

import (
	"context"
	"fmt"
	"sync"
)

var _ KV = (*Memory)(nil)

// Memory is a process-local KV. A non-zero quota caps the number of distinct
// keys it will hold; writes that would exceed it fail with ErrQuotaExceeded.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
	quota   int
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func NewMemoryWithQuota(quota int) *Memory {
	m := NewMemory()
	m.quota = quota
	return m
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[key]; !exists && m.quota > 0 && len(m.entries) >= m.quota {
		return fmt.Errorf("setting %s: %w", key, ErrQuotaExceeded)
	}
	m.entries[key] = value
	return nil
}

func (m *Memory) Close(ctx context.Context) error {
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
