package player

import (
	"fmt"
	"strings"
)

// Player is a pool entrant. Rows are owned by roster management.
type Player struct {
	ID   string
	Name string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
