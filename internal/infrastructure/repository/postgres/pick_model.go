package postgres

import "time"

type pickTableModel struct {
	PublicID     string    `db:"public_id"`
	PlayerID     string    `db:"player_public_id"`
	Week         int       `db:"week"`
	TeamName     string    `db:"team_name"`
	GamePublicID string    `db:"game_public_id"`
	SubmittedAt  time.Time `db:"submitted_at"`
}

type revealedPickRow struct {
	PlayerID   string `db:"player_public_id"`
	PlayerName string `db:"player_name"`
	TeamName   string `db:"team_name"`
}
