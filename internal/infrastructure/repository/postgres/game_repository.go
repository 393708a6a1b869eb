package postgres

import (
	"context"
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	qb "github.com/riskibarqy/survivor-pool/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) AverageWeek(ctx context.Context) (float64, bool, error) {
	query, args, err := qb.Select("AVG(week)::float8 AS avg_week").From("games").ToSQL()
	if err != nil {
		return 0, false, crerr.Wrap(err, "build average week query")
	}

	var avg sql.NullFloat64
	if err := r.db.GetContext(ctx, &avg, query, args...); err != nil {
		return 0, false, crerr.Wrap(err, "select average week")
	}
	if !avg.Valid {
		return 0, false, nil
	}

	return avg.Float64, true, nil
}

func (r *GameRepository) MinWeek(ctx context.Context) (int, bool, error) {
	query, args, err := qb.Select("MIN(week) AS min_week").From("games").ToSQL()
	if err != nil {
		return 0, false, crerr.Wrap(err, "build min week query")
	}

	var minWeek sql.NullInt64
	if err := r.db.GetContext(ctx, &minWeek, query, args...); err != nil {
		return 0, false, crerr.Wrap(err, "select min week")
	}
	if !minWeek.Valid {
		return 0, false, nil
	}

	return int(minWeek.Int64), true, nil
}

func (r *GameRepository) EarliestKickoff(ctx context.Context) (time.Time, bool, error) {
	return r.earliestKickoff(ctx, qb.Select("MIN(kickoff_at) AS earliest_kickoff").From("games"))
}

func (r *GameRepository) EarliestKickoffForWeek(ctx context.Context, week int) (time.Time, bool, error) {
	return r.earliestKickoff(ctx, qb.Select("MIN(kickoff_at) AS earliest_kickoff").From("games").
		Where(qb.Eq("week", week)))
}

func (r *GameRepository) earliestKickoff(ctx context.Context, builder *qb.SelectBuilder) (time.Time, bool, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return time.Time{}, false, crerr.Wrap(err, "build earliest kickoff query")
	}

	var kickoff sql.NullTime
	if err := r.db.GetContext(ctx, &kickoff, query, args...); err != nil {
		return time.Time{}, false, crerr.Wrap(err, "select earliest kickoff")
	}
	if !kickoff.Valid {
		return time.Time{}, false, nil
	}

	return kickoff.Time.UTC(), true, nil
}

// ListByWeekAndTeam orders by kickoff then public id so the first row is stable.
func (r *GameRepository) ListByWeekAndTeam(ctx context.Context, week int, teamName string) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Eq("week", week),
			qb.Or(qb.Eq("home_team", teamName), qb.Eq("away_team", teamName)),
		).
		OrderBy("kickoff_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select games by week and team query")
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select games week=%d team=%s", week, teamName)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, game.Game{
			ID:        row.PublicID,
			Week:      row.Week,
			HomeTeam:  row.HomeTeam,
			AwayTeam:  row.AwayTeam,
			KickoffAt: row.KickoffAt.UTC(),
		})
	}

	return out, nil
}
