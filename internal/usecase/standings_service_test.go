package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"github.com/riskibarqy/survivor-pool/internal/infrastructure/repository/memory"
)

func TestStandingsService_RevealGatedOnWeekKickoff(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := defaultTestSeed()
	seed.Picks = []pick.Pick{
		seededPick("pick-1", "p-zoe", 7, "Detroit Lions", "g-7-1"),
		seededPick("pick-2", "p-ana", 7, "Minnesota Vikings", "g-7-2"),
	}
	f := newPoolFixture(seed)

	early, err := f.standings.Reveal(ctx, testKickoff.Add(-time.Second))
	if err != nil {
		t.Fatalf("reveal before kickoff: %v", err)
	}
	if early.State != RevealTooEarly || len(early.Picks) != 0 {
		t.Fatalf("expected too_early without rows, got %+v", early)
	}

	revealed, err := f.standings.Reveal(ctx, testKickoff.Add(time.Second))
	if err != nil {
		t.Fatalf("reveal after kickoff: %v", err)
	}
	if revealed.State != RevealRevealed || revealed.Week != 7 {
		t.Fatalf("unexpected reveal: %+v", revealed)
	}
	if len(revealed.Picks) != 2 {
		t.Fatalf("unexpected row count: %d", len(revealed.Picks))
	}
	if revealed.Picks[0].PlayerName != "Ana" || revealed.Picks[0].Team != "Minnesota Vikings" {
		t.Fatalf("unexpected first row: %+v", revealed.Picks[0])
	}
	if revealed.Picks[1].PlayerName != "Zoe" || revealed.Picks[1].Team != "Detroit Lions" {
		t.Fatalf("unexpected second row: %+v", revealed.Picks[1])
	}
}

func TestStandingsService_RevealUsesMinimumWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := defaultTestSeed()
	seed.Games = append(seed.Games, game.Game{
		ID: "g-8-1", Week: 8, HomeTeam: "Chicago Bears", AwayTeam: "Detroit Lions", KickoffAt: testKickoff.Add(7 * 24 * time.Hour),
	})
	f := newPoolFixture(seed)

	got, err := f.standings.Reveal(ctx, testKickoff.Add(time.Hour))
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if got.Week != 7 || got.State != RevealRevealed {
		t.Fatalf("expected week 7 revealed, got %+v", got)
	}
	if got.Picks == nil || len(got.Picks) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", got.Picks)
	}

	week8, err := f.standings.RevealWeek(ctx, 8, testKickoff.Add(time.Hour))
	if err != nil {
		t.Fatalf("reveal week 8: %v", err)
	}
	if week8.State != RevealTooEarly {
		t.Fatalf("expected week 8 too early, got %s", week8.State)
	}
}

func TestStandingsService_NoGames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newPoolFixture(memory.Seed{})

	got, err := f.standings.Reveal(ctx, time.Now())
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if got.State != RevealNoGames {
		t.Fatalf("expected no_games, got %s", got.State)
	}

	week, err := newPoolFixture(defaultTestSeed()).standings.RevealWeek(ctx, 12, time.Now())
	if err != nil {
		t.Fatalf("reveal week: %v", err)
	}
	if week.State != RevealNoGames || week.Week != 12 {
		t.Fatalf("expected no_games for unscheduled week, got %+v", week)
	}
}
