package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"go.opentelemetry.io/otel/attribute"
)

type RevealState string

const (
	RevealTooEarly RevealState = "too_early"
	RevealNoGames  RevealState = "no_games"
	RevealRevealed RevealState = "revealed"
)

// Reveal is the public view of a week's picks. Picks is only populated when
// State is RevealRevealed and may be empty when nobody has picked yet.
type Reveal struct {
	State   RevealState
	Week    int
	Kickoff time.Time
	Picks   []pick.RevealedPick
}

type StandingsService struct {
	schedule *ScheduleService
	gameRepo game.Repository
	pickRepo pick.Repository
}

// NewStandingsService reads week kickoffs through the schedule. Its own
// "current week" is the lowest scheduled week, read from gameRepo.
func NewStandingsService(schedule *ScheduleService, gameRepo game.Repository, pickRepo pick.Repository) *StandingsService {
	return &StandingsService{
		schedule: schedule,
		gameRepo: gameRepo,
		pickRepo: pickRepo,
	}
}

// Reveal uses the lowest scheduled week as the week to show.
func (s *StandingsService) Reveal(ctx context.Context, now time.Time) (Reveal, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.Reveal")
	defer span.End()

	week, found, err := s.gameRepo.MinWeek(ctx)
	if err != nil {
		return Reveal{}, storageFailure("min game week", err)
	}
	if !found {
		return Reveal{State: RevealNoGames}, nil
	}

	return s.RevealWeek(ctx, week, now)
}

func (s *StandingsService) RevealWeek(ctx context.Context, week int, now time.Time) (Reveal, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.RevealWeek", attribute.Int("week", week))
	defer span.End()

	if week < 1 {
		return Reveal{}, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	kickoff, err := s.schedule.EarliestKickoffForWeek(ctx, week)
	if errors.Is(err, ErrNoGamesScheduled) {
		return Reveal{State: RevealNoGames, Week: week}, nil
	}
	if err != nil {
		return Reveal{}, err
	}

	out := Reveal{
		Week:    week,
		Kickoff: kickoff.UTC(),
	}
	if now.Before(kickoff) {
		out.State = RevealTooEarly
		return out, nil
	}

	rows, err := s.pickRepo.ListRevealedByWeek(ctx, week)
	if err != nil {
		return Reveal{}, storageFailure("list revealed picks", err)
	}
	if rows == nil {
		rows = []pick.RevealedPick{}
	}

	out.State = RevealRevealed
	out.Picks = rows
	return out, nil
}
