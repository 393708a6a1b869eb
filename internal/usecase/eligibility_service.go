package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/survivor-pool/internal/domain/elimination"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"github.com/riskibarqy/survivor-pool/internal/domain/player"
	"github.com/riskibarqy/survivor-pool/internal/domain/team"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultOverviewWorkers = 8

// Eligibility is what a player sees before choosing a team for a week.
type Eligibility struct {
	PlayerID       string
	Week           int
	Eliminated     bool
	CurrentPick    *pick.Pick
	AvailableTeams []team.Team
}

type PlayerStatus struct {
	Player         player.Player
	Eliminated     bool
	HasPick        bool
	RemainingTeams int
}

type EligibilityService struct {
	playerRepo      player.Repository
	teamRepo        team.Repository
	pickRepo        pick.Repository
	eliminationRepo elimination.Repository
	logger          *logging.Logger
	overviewWorkers int
}

func NewEligibilityService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	pickRepo pick.Repository,
	eliminationRepo elimination.Repository,
	logger *logging.Logger,
) *EligibilityService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EligibilityService{
		playerRepo:      playerRepo,
		teamRepo:        teamRepo,
		pickRepo:        pickRepo,
		eliminationRepo: eliminationRepo,
		logger:          logger,
		overviewWorkers: defaultOverviewWorkers,
	}
}

func (s *EligibilityService) SetOverviewWorkers(workers int) {
	if workers < 1 {
		workers = 1
	}
	s.overviewWorkers = workers
}

func (s *EligibilityService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "EligibilityService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, storageFailure("list players", err)
	}

	sortPlayersByName(items)
	return items, nil
}

func (s *EligibilityService) IsEliminated(ctx context.Context, playerID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "EligibilityService.IsEliminated", attribute.String("player_id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return false, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	eliminated, err := s.eliminationRepo.IsEliminated(ctx, playerID)
	if err != nil {
		return false, storageFailure("check elimination", err)
	}

	return eliminated, nil
}

// AvailableTeams returns the roster minus every team the player has picked in
// any week. The result is sorted by name and never nil.
func (s *EligibilityService) AvailableTeams(ctx context.Context, playerID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "EligibilityService.AvailableTeams", attribute.String("player_id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	roster, picks, err := s.teamUsage(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return availableFrom(roster, usedTeams(picks)), nil
}

func (s *EligibilityService) CurrentPick(ctx context.Context, playerID string, week int) (pick.Pick, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "EligibilityService.CurrentPick",
		attribute.String("player_id", playerID),
		attribute.Int("week", week),
	)
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return pick.Pick{}, false, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if week < 1 {
		return pick.Pick{}, false, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	item, exists, err := s.pickRepo.GetByPlayerAndWeek(ctx, playerID, week)
	if err != nil {
		return pick.Pick{}, false, storageFailure("get pick by player and week", err)
	}

	return item, exists, nil
}

func (s *EligibilityService) Eligibility(ctx context.Context, playerID string, week int) (Eligibility, error) {
	ctx, span := startUsecaseSpan(ctx, "EligibilityService.Eligibility",
		attribute.String("player_id", playerID),
		attribute.Int("week", week),
	)
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return Eligibility{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if week < 1 {
		return Eligibility{}, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	if err := s.ensurePlayer(ctx, playerID); err != nil {
		return Eligibility{}, err
	}

	eliminated, err := s.IsEliminated(ctx, playerID)
	if err != nil {
		return Eligibility{}, err
	}

	out := Eligibility{
		PlayerID:   playerID,
		Week:       week,
		Eliminated: eliminated,
	}

	current, exists, err := s.CurrentPick(ctx, playerID, week)
	if err != nil {
		return Eligibility{}, err
	}
	if exists {
		out.CurrentPick = &current
	}

	available, err := s.AvailableTeams(ctx, playerID)
	if err != nil {
		return Eligibility{}, err
	}
	out.AvailableTeams = available

	return out, nil
}

// Overview computes a status row per player on a bounded worker pool.
func (s *EligibilityService) Overview(ctx context.Context, week int) ([]PlayerStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "EligibilityService.Overview", attribute.Int("week", week))
	defer span.End()

	if week < 1 {
		return nil, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return []PlayerStatus{}, nil
	}

	roster, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, storageFailure("list teams", err)
	}

	workerCount := s.overviewWorkers
	if workerCount > len(players) {
		workerCount = len(players)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]PlayerStatus, len(players))
	errs := make([]error, len(players))

	var workers sync.WaitGroup
	for i, item := range players {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i], errs[i] = s.playerStatus(ctx, item, week, roster)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit overview task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (s *EligibilityService) playerStatus(ctx context.Context, item player.Player, week int, roster []team.Team) (PlayerStatus, error) {
	eliminated, err := s.eliminationRepo.IsEliminated(ctx, item.ID)
	if err != nil {
		return PlayerStatus{}, storageFailure("check elimination", err)
	}

	picks, err := s.pickRepo.ListByPlayer(ctx, item.ID)
	if err != nil {
		return PlayerStatus{}, storageFailure("list picks by player", err)
	}

	used := usedTeams(picks)
	hasPick := false
	for _, p := range picks {
		if p.Week == week {
			hasPick = true
			break
		}
	}

	return PlayerStatus{
		Player:         item,
		Eliminated:     eliminated,
		HasPick:        hasPick,
		RemainingTeams: len(availableFrom(roster, used)),
	}, nil
}

func (s *EligibilityService) ensurePlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return storageFailure("get player", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return nil
}

// teamUsage loads the roster and every pick the player has made, in one read
// of the player's picks.
func (s *EligibilityService) teamUsage(ctx context.Context, playerID string) ([]team.Team, []pick.Pick, error) {
	roster, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, nil, storageFailure("list teams", err)
	}

	picks, err := s.pickRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, nil, storageFailure("list picks by player", err)
	}

	return roster, picks, nil
}

func usedTeams(picks []pick.Pick) map[string]struct{} {
	used := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		used[p.Team] = struct{}{}
	}
	return used
}

func availableFrom(roster []team.Team, used map[string]struct{}) []team.Team {
	out := make([]team.Team, 0, len(roster))
	for _, t := range roster {
		if _, ok := used[t.Name]; ok {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func rosterContains(roster []team.Team, name string) bool {
	for _, t := range roster {
		if t.Name == name {
			return true
		}
	}
	return false
}

func sortPlayersByName(items []player.Player) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
