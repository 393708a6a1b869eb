package memory

import (
	"context"
	"sync"
)

type EliminationRepository struct {
	mu         sync.RWMutex
	eliminated map[string]struct{}
}

func NewEliminationRepository(playerIDs []string) *EliminationRepository {
	eliminated := make(map[string]struct{}, len(playerIDs))
	for _, playerID := range playerIDs {
		eliminated[playerID] = struct{}{}
	}

	return &EliminationRepository{eliminated: eliminated}
}

func (r *EliminationRepository) IsEliminated(_ context.Context, playerID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.eliminated[playerID]
	return ok, nil
}

// Eliminate marks a player out. Grading happens elsewhere.
func (r *EliminationRepository) Eliminate(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.eliminated[playerID] = struct{}{}
	return nil
}
