package postgres

import "time"

type gameTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Week      int       `db:"week"`
	HomeTeam  string    `db:"home_team"`
	AwayTeam  string    `db:"away_team"`
	KickoffAt time.Time `db:"kickoff_at"`
	CreatedAt time.Time `db:"created_at"`
}
