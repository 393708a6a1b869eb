package game

import "testing"

func TestGameInvolves(t *testing.T) {
	g := Game{HomeTeam: "Chicago Bears", AwayTeam: "Green Bay Packers"}

	tests := []struct {
		name string
		team string
		want bool
	}{
		{name: "home team", team: "Chicago Bears", want: true},
		{name: "away team", team: "Green Bay Packers", want: true},
		{name: "trims input", team: "  Chicago Bears ", want: true},
		{name: "other team", team: "Detroit Lions", want: false},
		{name: "empty", team: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Involves(tt.team); got != tt.want {
				t.Fatalf("Involves(%q)=%v want=%v", tt.team, got, tt.want)
			}
		})
	}
}
