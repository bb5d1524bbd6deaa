package repository

import (
	"context"
	"sync"
	"time"

	"oficina/internal/models"
)

// MemoryStateRepository is the in-process fallback used while Redis is down
// or not configured.
type MemoryStateRepository struct {
	mu         sync.Mutex
	states     map[int64]memoryEntry
	rateLimits map[int64]rateLimitEntry
	ttl        time.Duration
	now        func() time.Time
}

type memoryEntry struct {
	state     models.UserState
	expiresAt time.Time
}

type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

func NewMemoryStateRepository(ttl time.Duration) *MemoryStateRepository {
	return &MemoryStateRepository{
		states:     make(map[int64]memoryEntry),
		rateLimits: make(map[int64]rateLimitEntry),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (r *MemoryStateRepository) GetState(ctx context.Context, userID int64) (*models.UserState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.states[userID]
	if !ok {
		return nil, nil
	}
	if r.ttl > 0 && r.now().After(entry.expiresAt) {
		delete(r.states, userID)
		return nil, nil
	}
	state := entry.state
	return &state, nil
}

func (r *MemoryStateRepository) SetState(ctx context.Context, state *models.UserState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.UserID] = memoryEntry{state: *state, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *MemoryStateRepository) ClearState(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, userID)
	return nil
}

func (r *MemoryStateRepository) CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, ok := r.rateLimits[userID]
	if !ok || now.After(entry.expiresAt) {
		entry = rateLimitEntry{count: 0, expiresAt: now.Add(window)}
	}
	entry.count++
	r.rateLimits[userID] = entry
	return entry.count <= limit, nil
}
