package pick

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrTeamAlreadyPicked is returned by stores when a player already holds the
// team in a pick for another week.
var ErrTeamAlreadyPicked = errors.New("team already picked by player")

// Pick is a player's single team selection for one contest week.
type Pick struct {
	ID          string
	PlayerID    string
	Week        int
	Team        string
	GameID      string
	SubmittedAt time.Time
}

// RevealedPick is one row of a week's disclosed picks.
type RevealedPick struct {
	PlayerID   string
	PlayerName string
	Team       string
}

func (p Pick) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("pick id is required")
	}
	if strings.TrimSpace(p.PlayerID) == "" {
		return fmt.Errorf("pick player id is required")
	}
	if p.Week < 1 {
		return fmt.Errorf("pick week must be >= 1")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("pick team is required")
	}
	if strings.TrimSpace(p.GameID) == "" {
		return fmt.Errorf("pick game id is required")
	}
	if p.SubmittedAt.IsZero() {
		return fmt.Errorf("pick submitted_at is required")
	}

	return nil
}
