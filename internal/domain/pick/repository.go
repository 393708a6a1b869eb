package pick

import "context"

// Repository owns the pick lifecycle.
//
// Upsert must be atomic per (PlayerID, Week): when a row exists its team, game
// and timestamp are replaced and its ID is kept, otherwise the given pick is
// inserted. The stored row is returned.
type Repository interface {
	GetByPlayerAndWeek(ctx context.Context, playerID string, week int) (Pick, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Pick, error)
	ListRevealedByWeek(ctx context.Context, week int) ([]RevealedPick, error)
	Upsert(ctx context.Context, item Pick) (Pick, error)
}
