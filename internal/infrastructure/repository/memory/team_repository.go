package memory

import (
	"context"
	"slices"

	"github.com/riskibarqy/survivor-pool/internal/domain/team"
)

// TeamRepository serves the seeded team list. Teams never change after load,
// so reads need no lock.
type TeamRepository struct {
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{teams: slices.Clone(teams)}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	return slices.Clone(r.teams), nil
}
