package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// SubmissionWindow describes whether picks for the current week are still open.
type SubmissionWindow struct {
	Week    int
	Kickoff time.Time
	Open    bool
}

type ScheduleService struct {
	gameRepo game.Repository
	logger   *logging.Logger
}

func NewScheduleService(gameRepo game.Repository, logger *logging.Logger) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{
		gameRepo: gameRepo,
		logger:   logger,
	}
}

// CurrentWeekMean returns the arithmetic mean of every scheduled game's week.
func (s *ScheduleService) CurrentWeekMean(ctx context.Context) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.CurrentWeekMean")
	defer span.End()

	mean, found, err := s.gameRepo.AverageWeek(ctx)
	if err != nil {
		return 0, storageFailure("average game week", err)
	}
	if !found {
		return 0, ErrNoGamesScheduled
	}

	return mean, nil
}

// CurrentWeek truncates the mean week toward zero. A non-integral mean means the
// schedule holds more than one week and is logged so operators can clean it up.
func (s *ScheduleService) CurrentWeek(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.CurrentWeek")
	defer span.End()

	mean, err := s.CurrentWeekMean(ctx)
	if err != nil {
		return 0, err
	}

	week := int(math.Trunc(mean))
	if float64(week) != mean {
		s.logger.WarnContext(ctx, "schedule spans multiple weeks, truncating mean week",
			"mean_week", mean,
			"week", week,
		)
	}
	span.SetAttributes(attribute.Int("week", week))

	return week, nil
}

func (s *ScheduleService) EarliestKickoff(ctx context.Context) (time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.EarliestKickoff")
	defer span.End()

	kickoff, found, err := s.gameRepo.EarliestKickoff(ctx)
	if err != nil {
		return time.Time{}, storageFailure("earliest kickoff", err)
	}
	if !found {
		return time.Time{}, ErrNoGamesScheduled
	}

	return kickoff.UTC(), nil
}

func (s *ScheduleService) EarliestKickoffForWeek(ctx context.Context, week int) (time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.EarliestKickoffForWeek", attribute.Int("week", week))
	defer span.End()

	if week < 1 {
		return time.Time{}, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	kickoff, found, err := s.gameRepo.EarliestKickoffForWeek(ctx, week)
	if err != nil {
		return time.Time{}, storageFailure("earliest kickoff for week", err)
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: week=%d", ErrNoGamesScheduled, week)
	}

	return kickoff.UTC(), nil
}

// SubmissionWindow reports the current week and whether now is before the
// earliest kickoff on the schedule.
func (s *ScheduleService) SubmissionWindow(ctx context.Context, now time.Time) (SubmissionWindow, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.SubmissionWindow")
	defer span.End()

	week, err := s.CurrentWeek(ctx)
	if err != nil {
		return SubmissionWindow{}, err
	}

	kickoff, err := s.EarliestKickoff(ctx)
	if err != nil {
		return SubmissionWindow{}, err
	}

	return SubmissionWindow{
		Week:    week,
		Kickoff: kickoff,
		Open:    now.Before(kickoff),
	}, nil
}
