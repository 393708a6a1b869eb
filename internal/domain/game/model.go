package game

import (
	"fmt"
	"strings"
	"time"
)

// Game is one scheduled contest between two teams.
type Game struct {
	ID        string
	Week      int
	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time
}

// Involves reports whether the team plays in this game, home or away.
func (g Game) Involves(teamName string) bool {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return false
	}
	return g.HomeTeam == teamName || g.AwayTeam == teamName
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("game id is required")
	}
	if g.Week < 1 {
		return fmt.Errorf("game week must be >= 1")
	}
	if strings.TrimSpace(g.HomeTeam) == "" || strings.TrimSpace(g.AwayTeam) == "" {
		return fmt.Errorf("game home and away teams are required")
	}
	if g.HomeTeam == g.AwayTeam {
		return fmt.Errorf("game home and away teams must differ")
	}
	if g.KickoffAt.IsZero() {
		return fmt.Errorf("game kickoff is required")
	}
	return nil
}
