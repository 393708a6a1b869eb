package memory

import (
	"fmt"
	"os"
	"time"

	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"github.com/riskibarqy/survivor-pool/internal/domain/player"
	"github.com/riskibarqy/survivor-pool/internal/domain/team"
	"gopkg.in/yaml.v3"
)

// Seed is the initial content of the in-memory store.
type Seed struct {
	Players             []player.Player
	Teams               []team.Team
	Games               []game.Game
	Picks               []pick.Pick
	EliminatedPlayerIDs []string
}

// Repositories groups the memory repositories built from one Seed.
type Repositories struct {
	Players      *PlayerRepository
	Teams        *TeamRepository
	Games        *GameRepository
	Picks        *PickRepository
	Eliminations *EliminationRepository
}

func NewRepositories(seed Seed) Repositories {
	players := NewPlayerRepository(seed.Players)
	return Repositories{
		Players:      players,
		Teams:        NewTeamRepository(seed.Teams),
		Games:        NewGameRepository(seed.Games),
		Picks:        NewPickRepository(players, seed.Picks),
		Eliminations: NewEliminationRepository(seed.EliminatedPlayerIDs),
	}
}

type seedFile struct {
	Players []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"players"`
	Teams []string `yaml:"teams"`
	Games []struct {
		ID       string    `yaml:"id"`
		Week     int       `yaml:"week"`
		HomeTeam string    `yaml:"home_team"`
		AwayTeam string    `yaml:"away_team"`
		Kickoff  time.Time `yaml:"kickoff"`
	} `yaml:"games"`
	Picks []struct {
		ID          string    `yaml:"id"`
		PlayerID    string    `yaml:"player_id"`
		Week        int       `yaml:"week"`
		Team        string    `yaml:"team"`
		GameID      string    `yaml:"game_id"`
		SubmittedAt time.Time `yaml:"submitted_at"`
	} `yaml:"picks"`
	Eliminated []string `yaml:"eliminated"`
}

func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (Seed, error) {
	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}

	var out Seed
	for _, row := range raw.Players {
		item := player.Player{ID: row.ID, Name: row.Name}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed player %q: %w", row.ID, err)
		}
		out.Players = append(out.Players, item)
	}
	for _, name := range raw.Teams {
		item := team.Team{Name: name}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed team: %w", err)
		}
		out.Teams = append(out.Teams, item)
	}
	for _, row := range raw.Games {
		item := game.Game{
			ID:        row.ID,
			Week:      row.Week,
			HomeTeam:  row.HomeTeam,
			AwayTeam:  row.AwayTeam,
			KickoffAt: row.Kickoff.UTC(),
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed game %q: %w", row.ID, err)
		}
		out.Games = append(out.Games, item)
	}
	for _, row := range raw.Picks {
		item := pick.Pick{
			ID:          row.ID,
			PlayerID:    row.PlayerID,
			Week:        row.Week,
			Team:        row.Team,
			GameID:      row.GameID,
			SubmittedAt: row.SubmittedAt.UTC(),
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed pick %q: %w", row.ID, err)
		}
		out.Picks = append(out.Picks, item)
	}
	out.EliminatedPlayerIDs = append(out.EliminatedPlayerIDs, raw.Eliminated...)

	return out, nil
}

// DefaultSeed is a single upcoming week used for local runs.
func DefaultSeed() Seed {
	week7 := time.Date(2026, time.October, 22, 0, 15, 0, 0, time.UTC)
	sunday := time.Date(2026, time.October, 25, 17, 0, 0, 0, time.UTC)
	late := time.Date(2026, time.October, 25, 20, 25, 0, 0, time.UTC)

	return Seed{
		Players: []player.Player{
			{ID: "p-ana", Name: "Ana Lopez"},
			{ID: "p-ben", Name: "Ben Carter"},
			{ID: "p-chloe", Name: "Chloe Kim"},
			{ID: "p-dev", Name: "Dev Patel"},
		},
		Teams: SeedTeams(),
		Games: []game.Game{
			{ID: "2026-w7-den-kc", Week: 7, HomeTeam: "Kansas City Chiefs", AwayTeam: "Denver Broncos", KickoffAt: week7},
			{ID: "2026-w7-buf-mia", Week: 7, HomeTeam: "Miami Dolphins", AwayTeam: "Buffalo Bills", KickoffAt: sunday},
			{ID: "2026-w7-cin-pit", Week: 7, HomeTeam: "Pittsburgh Steelers", AwayTeam: "Cincinnati Bengals", KickoffAt: sunday},
			{ID: "2026-w7-dal-phi", Week: 7, HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", KickoffAt: sunday},
			{ID: "2026-w7-det-gb", Week: 7, HomeTeam: "Green Bay Packers", AwayTeam: "Detroit Lions", KickoffAt: sunday},
			{ID: "2026-w7-hou-ind", Week: 7, HomeTeam: "Indianapolis Colts", AwayTeam: "Houston Texans", KickoffAt: sunday},
			{ID: "2026-w7-lar-sf", Week: 7, HomeTeam: "San Francisco 49ers", AwayTeam: "Los Angeles Rams", KickoffAt: late},
			{ID: "2026-w7-sea-ari", Week: 7, HomeTeam: "Arizona Cardinals", AwayTeam: "Seattle Seahawks", KickoffAt: late},
		},
	}
}

func SeedTeams() []team.Team {
	names := []string{
		"Arizona Cardinals", "Atlanta Falcons", "Baltimore Ravens", "Buffalo Bills",
		"Carolina Panthers", "Chicago Bears", "Cincinnati Bengals", "Cleveland Browns",
		"Dallas Cowboys", "Denver Broncos", "Detroit Lions", "Green Bay Packers",
		"Houston Texans", "Indianapolis Colts", "Jacksonville Jaguars", "Kansas City Chiefs",
		"Las Vegas Raiders", "Los Angeles Chargers", "Los Angeles Rams", "Miami Dolphins",
		"Minnesota Vikings", "New England Patriots", "New Orleans Saints", "New York Giants",
		"New York Jets", "Philadelphia Eagles", "Pittsburgh Steelers", "San Francisco 49ers",
		"Seattle Seahawks", "Tampa Bay Buccaneers", "Tennessee Titans", "Washington Commanders",
	}

	out := make([]team.Team, 0, len(names))
	for _, name := range names {
		out = append(out, team.Team{Name: name})
	}
	return out
}
