package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	qb "github.com/riskibarqy/survivor-pool/internal/platform/querybuilder"
)

var pickColumns = qb.MustColumns(pickTableModel{})

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) GetByPlayerAndWeek(ctx context.Context, playerID string, week int) (pick.Pick, bool, error) {
	query, args, err := qb.Select(pickColumns...).From("picks").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("week", week),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return pick.Pick{}, false, crerr.Wrap(err, "build select pick by player and week query")
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pick.Pick{}, false, nil
		}
		return pick.Pick{}, false, crerr.Wrapf(err, "select pick player=%s week=%d", playerID, week)
	}

	return pickFromRow(row), true, nil
}

func (r *PickRepository) ListByPlayer(ctx context.Context, playerID string) ([]pick.Pick, error) {
	query, args, err := qb.Select(pickColumns...).From("picks").
		Where(qb.Eq("player_public_id", playerID)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select picks by player query")
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select picks player=%s", playerID)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}

	return out, nil
}

func (r *PickRepository) ListRevealedByWeek(ctx context.Context, week int) ([]pick.RevealedPick, error) {
	query, args, err := qb.Select("p.player_public_id", "pl.name AS player_name", "p.team_name").
		From("picks p JOIN players pl ON pl.public_id = p.player_public_id").
		Where(qb.Eq("p.week", week)).
		OrderBy("pl.name", "p.player_public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select revealed picks query")
	}

	var rows []revealedPickRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select revealed picks week=%d", week)
	}

	out := make([]pick.RevealedPick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pick.RevealedPick{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Team:       row.TeamName,
		})
	}

	return out, nil
}

// Upsert writes the pick in one statement. A second pick of the same team by
// the same player trips picks_player_team_key and maps to ErrTeamAlreadyPicked.
func (r *PickRepository) Upsert(ctx context.Context, item pick.Pick) (pick.Pick, error) {
	insertModel := pickTableModel{
		PublicID:     item.ID,
		PlayerID:     item.PlayerID,
		Week:         item.Week,
		TeamName:     item.Team,
		GamePublicID: item.GameID,
		SubmittedAt:  item.SubmittedAt.UTC(),
	}

	// public_id is left out of the update so a replaced pick keeps its id.
	query, args, err := qb.InsertModel("picks", insertModel).
		OnConflict("player_public_id", "week").
		DoUpdate("team_name", "game_public_id", "submitted_at").
		Touch("updated_at").
		Returning(pickColumns...).
		ToSQL()
	if err != nil {
		return pick.Pick{}, crerr.Wrap(err, "build upsert pick query")
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, pickPlayerTeamConstraint) {
			return pick.Pick{}, crerr.Wrapf(pick.ErrTeamAlreadyPicked, "player=%s team=%s", item.PlayerID, item.Team)
		}
		return pick.Pick{}, crerr.Wrapf(err, "upsert pick player=%s week=%d", item.PlayerID, item.Week)
	}

	return pickFromRow(row), nil
}

func pickFromRow(row pickTableModel) pick.Pick {
	return pick.Pick{
		ID:          row.PublicID,
		PlayerID:    row.PlayerID,
		Week:        row.Week,
		Team:        row.TeamName,
		GameID:      row.GamePublicID,
		SubmittedAt: row.SubmittedAt.UTC(),
	}
}
