package cache

import (
	"context"
	"errors"
	"slices"

	"github.com/riskibarqy/survivor-pool/internal/domain/player"
	"github.com/riskibarqy/survivor-pool/internal/domain/team"
	basecache "github.com/riskibarqy/survivor-pool/internal/platform/cache"
)

// Only reference data is cached. Picks, eliminations and the schedule are read
// through on every call because the submission gate decides on them.

const (
	teamListKey   = "team:list"
	playerListKey = "player:list"
	playerIDKey   = "player:id:"
)

type TeamRepository struct {
	next  team.Repository
	store *basecache.Store
}

func NewTeamRepository(next team.Repository, store *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, store: store}
}

// List hands every caller its own copy so callers cannot mutate the cache.
func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.store, teamListKey, r.next.List)
	return slices.Clone(items), err
}

type PlayerRepository struct {
	next  player.Repository
	store *basecache.Store
}

func NewPlayerRepository(next player.Repository, store *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, store: store}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.store, playerListKey, r.next.List)
	return slices.Clone(items), err
}

// errPlayerMissing keeps a miss out of the cache so a player added by the
// roster process is visible on the next lookup.
var errPlayerMissing = errors.New("player missing")

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	item, err := basecache.Load(ctx, r.store, playerIDKey+playerID, func(ctx context.Context) (player.Player, error) {
		item, found, err := r.next.GetByID(ctx, playerID)
		if err == nil && !found {
			return player.Player{}, errPlayerMissing
		}
		return item, err
	})
	if errors.Is(err, errPlayerMissing) {
		return player.Player{}, false, nil
	}
	if err != nil {
		return player.Player{}, false, err
	}
	return item, true, nil
}
