package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/survivor-pool/internal/domain/team"
	qb "github.com/riskibarqy/survivor-pool/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List returns teams alphabetically. Only the name is read; it is the key
// games and picks reference.
func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("name").From("nfl_teams").OrderBy("name").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select teams query")
	}

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select teams")
	}

	out := make([]team.Team, len(names))
	for i, name := range names {
		out[i] = team.Team{Name: name}
	}
	return out, nil
}
