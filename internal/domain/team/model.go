package team

import (
	"fmt"
	"strings"
)

// Team is a club from the fixed league roster, identified by name.
type Team struct {
	Name string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
