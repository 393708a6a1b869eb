package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/survivor-pool/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	order   []string
	players map[string]player.Player
}

func NewPlayerRepository(items []player.Player) *PlayerRepository {
	repo := &PlayerRepository{players: make(map[string]player.Player, len(items))}
	for _, item := range items {
		if _, exists := repo.players[item.ID]; !exists {
			repo.order = append(repo.order, item.ID)
		}
		repo.players[item.ID] = item
	}

	return repo
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, playerID := range r.order {
		out = append(out, r.players[playerID])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) name(playerID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.players[playerID].Name
}
