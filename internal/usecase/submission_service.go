package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"github.com/riskibarqy/survivor-pool/internal/domain/player"
	idgen "github.com/riskibarqy/survivor-pool/internal/platform/id"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
	"github.com/riskibarqy/survivor-pool/internal/platform/metrics"
	"go.opentelemetry.io/otel/attribute"
)

type SubmitPickInput struct {
	PlayerID string
	Week     int
	Team     string
	Now      time.Time
}

type SubmitResult struct {
	Pick pick.Pick
	// Updated is true when an existing pick for the week was replaced.
	Updated bool
}

type SubmissionService struct {
	playerRepo  player.Repository
	gameRepo    game.Repository
	pickRepo    pick.Repository
	schedule    *ScheduleService
	eligibility *EligibilityService
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewSubmissionService(
	playerRepo player.Repository,
	gameRepo game.Repository,
	pickRepo pick.Repository,
	schedule *ScheduleService,
	eligibility *EligibilityService,
	idGen idgen.Generator,
	logger *logging.Logger,
) *SubmissionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SubmissionService{
		playerRepo:  playerRepo,
		gameRepo:    gameRepo,
		pickRepo:    pickRepo,
		schedule:    schedule,
		eligibility: eligibility,
		idGen:       idGen,
		logger:      logger,
	}
}

// Submit records a player's pick for a week. Checks run in a fixed order and
// nothing is written unless all of them pass.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitPickInput) (result SubmitResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "SubmissionService.Submit",
		attribute.String("player_id", input.PlayerID),
		attribute.Int("week", input.Week),
		attribute.String("team", input.Team),
	)
	defer span.End()

	started := time.Now()
	defer func() {
		metrics.ObserveSubmission(submissionOutcome(result, err), started)
	}()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.Team = strings.TrimSpace(input.Team)
	switch {
	case input.PlayerID == "":
		return SubmitResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	case input.Team == "":
		return SubmitResult{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	case input.Week < 1:
		return SubmitResult{}, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	case input.Now.IsZero():
		return SubmitResult{}, fmt.Errorf("%w: submission time is required", ErrInvalidInput)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return SubmitResult{}, storageFailure("get player", err)
	} else if !exists {
		return SubmitResult{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	// Elimination wins over the deadline: an eliminated player is told so
	// whether or not the week has locked.
	eliminated, err := s.eligibility.IsEliminated(ctx, input.PlayerID)
	if err != nil {
		return SubmitResult{}, err
	}
	if eliminated {
		return SubmitResult{}, fmt.Errorf("%w: player=%s", ErrEliminated, input.PlayerID)
	}

	kickoff, err := s.schedule.EarliestKickoffForWeek(ctx, input.Week)
	if err != nil {
		return SubmitResult{}, err
	}
	if !input.Now.Before(kickoff) {
		return SubmitResult{}, fmt.Errorf("%w: week=%d kickoff=%s", ErrLocked, input.Week, kickoff.UTC().Format(time.RFC3339))
	}

	if err := s.ensureTeamAvailable(ctx, input); err != nil {
		return SubmitResult{}, err
	}

	selected, err := s.resolveGame(ctx, input)
	if err != nil {
		return SubmitResult{}, err
	}

	pickID, err := s.idGen.NewID()
	if err != nil {
		return SubmitResult{}, fmt.Errorf("generate pick id: %w", err)
	}

	candidate := pick.Pick{
		ID:          pickID,
		PlayerID:    input.PlayerID,
		Week:        input.Week,
		Team:        input.Team,
		GameID:      selected.ID,
		SubmittedAt: input.Now.UTC(),
	}
	if err := candidate.Validate(); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.pickRepo.Upsert(ctx, candidate)
	if errors.Is(err, pick.ErrTeamAlreadyPicked) {
		return SubmitResult{}, fmt.Errorf("%w: player=%s team=%s", ErrTeamAlreadyUsed, input.PlayerID, input.Team)
	}
	if err != nil {
		return SubmitResult{}, storageFailure("upsert pick", err)
	}

	// The repository keeps the stored ID on update, so a different ID means
	// a row for this (player, week) already existed.
	return SubmitResult{
		Pick:    stored,
		Updated: stored.ID != candidate.ID,
	}, nil
}

// ensureTeamAvailable allows a team the player has not used yet, or the team
// already picked for this same week. Both decisions use one read of the
// player's picks.
func (s *SubmissionService) ensureTeamAvailable(ctx context.Context, input SubmitPickInput) error {
	roster, picks, err := s.eligibility.teamUsage(ctx, input.PlayerID)
	if err != nil {
		return err
	}
	if !rosterContains(roster, input.Team) {
		return fmt.Errorf("%w: unknown team %q", ErrInvalidInput, input.Team)
	}

	for _, p := range picks {
		if p.Team == input.Team && p.Week != input.Week {
			return fmt.Errorf("%w: player=%s team=%s", ErrTeamAlreadyUsed, input.PlayerID, input.Team)
		}
	}
	return nil
}

func (s *SubmissionService) resolveGame(ctx context.Context, input SubmitPickInput) (game.Game, error) {
	games, err := s.gameRepo.ListByWeekAndTeam(ctx, input.Week, input.Team)
	if err != nil {
		return game.Game{}, storageFailure("list games by week and team", err)
	}
	if len(games) == 0 {
		return game.Game{}, fmt.Errorf("%w: week=%d team=%s", ErrNoGameFound, input.Week, input.Team)
	}

	if len(games) > 1 {
		ids := make([]string, 0, len(games))
		for _, g := range games {
			ids = append(ids, g.ID)
		}
		s.logger.WarnContext(ctx, "team matches several games in week, using earliest",
			"week", input.Week,
			"team", input.Team,
			"game_ids", ids,
			"selected_game_id", games[0].ID,
		)
		metrics.IncAmbiguousGameResolution()
	}

	return games[0], nil
}

func submissionOutcome(result SubmitResult, err error) string {
	switch {
	case err == nil && result.Updated:
		return "updated"
	case err == nil:
		return "inserted"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNoGamesScheduled):
		return "no_games_scheduled"
	case errors.Is(err, ErrLocked):
		return "locked"
	case errors.Is(err, ErrEliminated):
		return "eliminated"
	case errors.Is(err, ErrTeamAlreadyUsed):
		return "team_already_used"
	case errors.Is(err, ErrNoGameFound):
		return "no_game_found"
	case errors.Is(err, ErrStorageFailure):
		return "storage_failure"
	default:
		return "error"
	}
}
