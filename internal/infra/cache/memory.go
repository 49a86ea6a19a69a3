package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	slotIDs   []string
	expiresAt time.Time
}

// Memory кеш занятых слотов в памяти процесса
type Memory struct {
	mu       sync.RWMutex
	entries  map[string]memoryEntry
	versions map[string]int64
	ttl      time.Duration
	clock    Clock
}

// NewMemory создаёт кеш в памяти. clock == nil означает реальное время
func NewMemory(ttl time.Duration, clock Clock) *Memory {
	if clock == nil {
		clock = realClock{}
	}
	return &Memory{
		entries:  make(map[string]memoryEntry),
		versions: make(map[string]int64),
		ttl:      ttl,
		clock:    clock,
	}
}

// Get возвращает занятые слоты даты, если запись есть и не истекла
func (m *Memory) Get(_ context.Context, date string) ([]string, bool) {
	m.mu.RLock()
	entry, ok := m.entries[date]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !m.clock.Now().Before(entry.expiresAt) {
		m.mu.Lock()
		// между RUnlock и Lock запись могли перезаписать
		if current, ok := m.entries[date]; ok && !m.clock.Now().Before(current.expiresAt) {
			delete(m.entries, date)
		}
		m.mu.Unlock()
		return nil, false
	}
	return cloneIDs(entry.slotIDs), true
}

// Version текущее поколение даты, растёт при каждой инвалидации
func (m *Memory) Version(_ context.Context, date string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.versions[date]
}

// Set сохраняет слоты, только если поколение даты всё ещё равно version
func (m *Memory) Set(_ context.Context, date string, version int64, slotIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.versions[date] != version {
		return
	}
	m.entries[date] = memoryEntry{
		slotIDs:   cloneIDs(slotIDs),
		expiresAt: m.clock.Now().Add(m.ttl),
	}
}

func (m *Memory) Invalidate(_ context.Context, date string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, date)
	m.versions[date]++
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
