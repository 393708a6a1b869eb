package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/survivor-pool/internal/domain/game"
)

type GameRepository struct {
	mu    sync.RWMutex
	games []game.Game
}

func NewGameRepository(items []game.Game) *GameRepository {
	games := make([]game.Game, 0, len(items))
	games = append(games, items...)
	sortGames(games)

	return &GameRepository{games: games}
}

func (r *GameRepository) AverageWeek(_ context.Context) (float64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.games) == 0 {
		return 0, false, nil
	}

	sum := 0
	for _, item := range r.games {
		sum += item.Week
	}

	return float64(sum) / float64(len(r.games)), true, nil
}

func (r *GameRepository) MinWeek(_ context.Context) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.games) == 0 {
		return 0, false, nil
	}

	minWeek := r.games[0].Week
	for _, item := range r.games[1:] {
		if item.Week < minWeek {
			minWeek = item.Week
		}
	}

	return minWeek, true, nil
}

// games are kept ordered by kickoff, so the first match is the earliest.
func (r *GameRepository) EarliestKickoff(_ context.Context) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.games) == 0 {
		return time.Time{}, false, nil
	}

	return r.games[0].KickoffAt, true, nil
}

func (r *GameRepository) EarliestKickoffForWeek(_ context.Context, week int) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.games {
		if item.Week == week {
			return item.KickoffAt, true, nil
		}
	}

	return time.Time{}, false, nil
}

func (r *GameRepository) ListByWeekAndTeam(_ context.Context, week int, teamName string) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, 1)
	for _, item := range r.games {
		if item.Week == week && item.Involves(teamName) {
			out = append(out, item)
		}
	}

	return out, nil
}

func sortGames(items []game.Game) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})
}
