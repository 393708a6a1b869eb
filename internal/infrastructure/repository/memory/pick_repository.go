package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
)

type pickKey struct {
	playerID string
	week     int
}

type PickRepository struct {
	mu      sync.RWMutex
	players *PlayerRepository
	picks   map[pickKey]pick.Pick
}

func NewPickRepository(players *PlayerRepository, items []pick.Pick) *PickRepository {
	repo := &PickRepository{
		players: players,
		picks:   make(map[pickKey]pick.Pick, len(items)),
	}
	for _, item := range items {
		repo.picks[pickKey{playerID: item.PlayerID, week: item.Week}] = item
	}

	return repo
}

func (r *PickRepository) GetByPlayerAndWeek(_ context.Context, playerID string, week int) (pick.Pick, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.picks[pickKey{playerID: playerID, week: week}]
	return item, ok, nil
}

func (r *PickRepository) ListByPlayer(_ context.Context, playerID string) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0)
	for key, item := range r.picks {
		if key.playerID == playerID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Week < out[j].Week
	})

	return out, nil
}

func (r *PickRepository) ListRevealedByWeek(_ context.Context, week int) ([]pick.RevealedPick, error) {
	r.mu.RLock()
	items := make([]pick.Pick, 0)
	for key, item := range r.picks {
		if key.week == week {
			items = append(items, item)
		}
	}
	r.mu.RUnlock()

	out := make([]pick.RevealedPick, 0, len(items))
	for _, item := range items {
		name := item.PlayerID
		if r.players != nil {
			// Picks for players missing from the roster are skipped, matching an inner join.
			if name = r.players.name(item.PlayerID); name == "" {
				continue
			}
		}
		out = append(out, pick.RevealedPick{
			PlayerID:   item.PlayerID,
			PlayerName: name,
			Team:       item.Team,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlayerName != out[j].PlayerName {
			return out[i].PlayerName < out[j].PlayerName
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	return out, nil
}

// Upsert decides insert vs update and checks team reuse inside one critical
// section, so concurrent submissions cannot interleave between read and write.
func (r *PickRepository) Upsert(_ context.Context, item pick.Pick) (pick.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pickKey{playerID: item.PlayerID, week: item.Week}
	for other, existing := range r.picks {
		if other.playerID == item.PlayerID && other.week != item.Week && existing.Team == item.Team {
			return pick.Pick{}, pick.ErrTeamAlreadyPicked
		}
	}

	if existing, ok := r.picks[key]; ok {
		item.ID = existing.ID
	}
	r.picks[key] = item

	return item, nil
}
