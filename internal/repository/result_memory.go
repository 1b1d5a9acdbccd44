package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/gamehub/internal/entity"
)

type memoryResult struct {
	mu       sync.Mutex
	sessions map[string][]*entity.Result
}

// NewMemoryResultRepository - keeps results in process memory only.
func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{
		sessions: make(map[string][]*entity.Result),
	}
}

func (that *memoryResult) Save(_ context.Context, result *entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored := *result
	that.sessions[result.SessionID] = append(that.sessions[result.SessionID], &stored)

	return nil
}

func (that *memoryResult) ListBySession(_ context.Context, sessionID string) ([]*entity.Result, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	results := make([]*entity.Result, 0, len(that.sessions[sessionID]))
	for _, result := range that.sessions[sessionID] {
		stored := *result
		results = append(results, &stored)
	}

	return results, nil
}

func (that *memoryResult) DeleteBySession(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, sessionID)

	return nil
}
