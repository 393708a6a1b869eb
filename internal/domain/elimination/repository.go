package elimination

import "context"

// Repository reads elimination markers written by the settlement process.
type Repository interface {
	IsEliminated(ctx context.Context, playerID string) (bool, error)
}
