package httpapi

import (
	"time"

	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"github.com/riskibarqy/survivor-pool/internal/domain/player"
	"github.com/riskibarqy/survivor-pool/internal/domain/team"
	"github.com/riskibarqy/survivor-pool/internal/usecase"
)

type submitPickRequest struct {
	Team string `json:"team" validate:"required,max=100"`
	Week int    `json:"week" validate:"omitempty,gt=0"`
}

type playerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type submissionWindowDTO struct {
	Week      int       `json:"week"`
	KickoffAt time.Time `json:"kickoff_at"`
	Open      bool      `json:"open"`
}

type pickDTO struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"player_id"`
	Week        int       `json:"week"`
	Team        string    `json:"team"`
	GameID      string    `json:"game_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type submitPickResponseDTO struct {
	Pick    pickDTO `json:"pick"`
	Updated bool    `json:"updated"`
}

type eligibilityDTO struct {
	PlayerID       string   `json:"player_id"`
	Week           int      `json:"week"`
	Eliminated     bool     `json:"eliminated"`
	CurrentPick    *pickDTO `json:"current_pick,omitempty"`
	AvailableTeams []string `json:"available_teams"`
}

type playerStatusDTO struct {
	Player         playerDTO `json:"player"`
	Eliminated     bool      `json:"eliminated"`
	HasPick        bool      `json:"has_pick"`
	RemainingTeams int       `json:"remaining_teams"`
}

type revealedPickDTO struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Team       string `json:"team"`
}

type revealDTO struct {
	State     string            `json:"state"`
	Week      int               `json:"week,omitempty"`
	KickoffAt *time.Time        `json:"kickoff_at,omitempty"`
	Picks     []revealedPickDTO `json:"picks"`
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{ID: item.ID, Name: item.Name}
}

func pickToDTO(item pick.Pick) pickDTO {
	return pickDTO{
		ID:          item.ID,
		PlayerID:    item.PlayerID,
		Week:        item.Week,
		Team:        item.Team,
		GameID:      item.GameID,
		SubmittedAt: item.SubmittedAt.UTC(),
	}
}

func teamNames(items []team.Team) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func eligibilityToDTO(item usecase.Eligibility) eligibilityDTO {
	out := eligibilityDTO{
		PlayerID:       item.PlayerID,
		Week:           item.Week,
		Eliminated:     item.Eliminated,
		AvailableTeams: teamNames(item.AvailableTeams),
	}
	if item.CurrentPick != nil {
		current := pickToDTO(*item.CurrentPick)
		out.CurrentPick = &current
	}
	return out
}

func playerStatusToDTO(item usecase.PlayerStatus) playerStatusDTO {
	return playerStatusDTO{
		Player:         playerToDTO(item.Player),
		Eliminated:     item.Eliminated,
		HasPick:        item.HasPick,
		RemainingTeams: item.RemainingTeams,
	}
}

func revealToDTO(item usecase.Reveal) revealDTO {
	out := revealDTO{
		State: string(item.State),
		Week:  item.Week,
		Picks: make([]revealedPickDTO, 0, len(item.Picks)),
	}
	if !item.Kickoff.IsZero() {
		kickoff := item.Kickoff.UTC()
		out.KickoffAt = &kickoff
	}
	for _, row := range item.Picks {
		out.Picks = append(out.Picks, revealedPickDTO{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Team:       row.Team,
		})
	}
	return out
}
