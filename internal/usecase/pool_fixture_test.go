package usecase

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"github.com/riskibarqy/survivor-pool/internal/domain/player"
	"github.com/riskibarqy/survivor-pool/internal/domain/team"
	"github.com/riskibarqy/survivor-pool/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
)

var testKickoff = time.Date(2026, time.October, 22, 0, 15, 0, 0, time.UTC)

type sequenceIDGenerator struct {
	next atomic.Int64
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("pick-%03d", g.next.Add(1)), nil
}

type poolFixture struct {
	repos       memory.Repositories
	clock       *clockwork.FakeClock
	schedule    *ScheduleService
	eligibility *EligibilityService
	submission  *SubmissionService
	standings   *StandingsService
}

func defaultTestSeed() memory.Seed {
	return memory.Seed{
		Players: []player.Player{
			{ID: "p-zoe", Name: "Zoe"},
			{ID: "p-ana", Name: "Ana"},
			{ID: "p-out", Name: "Quinn"},
		},
		Teams: []team.Team{
			{Name: "Chicago Bears"},
			{Name: "Detroit Lions"},
			{Name: "Green Bay Packers"},
			{Name: "Minnesota Vikings"},
		},
		Games: []game.Game{
			{ID: "g-7-1", Week: 7, HomeTeam: "Detroit Lions", AwayTeam: "Chicago Bears", KickoffAt: testKickoff},
			{ID: "g-7-2", Week: 7, HomeTeam: "Green Bay Packers", AwayTeam: "Minnesota Vikings", KickoffAt: testKickoff.Add(3 * time.Hour)},
		},
		EliminatedPlayerIDs: []string{"p-out"},
	}
}

func newPoolFixture(seed memory.Seed) *poolFixture {
	repos := memory.NewRepositories(seed)
	logger := logging.NewNop()

	eligibility := NewEligibilityService(repos.Players, repos.Teams, repos.Picks, repos.Eliminations, logger)
	schedule := NewScheduleService(repos.Games, logger)
	return &poolFixture{
		repos:       repos,
		clock:       clockwork.NewFakeClockAt(testKickoff.Add(-48 * time.Hour)),
		schedule:    schedule,
		eligibility: eligibility,
		submission:  NewSubmissionService(repos.Players, repos.Games, repos.Picks, schedule, eligibility, &sequenceIDGenerator{}, logger),
		standings:   NewStandingsService(schedule, repos.Games, repos.Picks),
	}
}

func (f *poolFixture) submitInput(playerID string, week int, teamName string) SubmitPickInput {
	return SubmitPickInput{
		PlayerID: playerID,
		Week:     week,
		Team:     teamName,
		Now:      f.clock.Now(),
	}
}

func seededPick(id, playerID string, week int, teamName, gameID string) pick.Pick {
	return pick.Pick{
		ID:          id,
		PlayerID:    playerID,
		Week:        week,
		Team:        teamName,
		GameID:      gameID,
		SubmittedAt: testKickoff.Add(-7 * 24 * time.Hour),
	}
}
