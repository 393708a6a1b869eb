package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/survivor-pool/internal/platform/querybuilder"
)

type EliminationRepository struct {
	db *sqlx.DB
}

func NewEliminationRepository(db *sqlx.DB) *EliminationRepository {
	return &EliminationRepository{db: db}
}

func (r *EliminationRepository) IsEliminated(ctx context.Context, playerID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("eliminations").
		Where(qb.Eq("player_public_id", playerID)).
		ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build select elimination query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, crerr.Wrapf(err, "select elimination player=%s", playerID)
	}

	return count > 0, nil
}
