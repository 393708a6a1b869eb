package game

import (
	"context"
	"time"
)

// Repository exposes schedule read operations. The bool result is false when
// the schedule holds no games for the query.
type Repository interface {
	AverageWeek(ctx context.Context) (float64, bool, error)
	MinWeek(ctx context.Context) (int, bool, error)
	EarliestKickoff(ctx context.Context) (time.Time, bool, error)
	EarliestKickoffForWeek(ctx context.Context, week int) (time.Time, bool, error)
	ListByWeekAndTeam(ctx context.Context, week int, teamName string) ([]Game, error)
}
