package app

import (
	"strings"
	"testing"

	"github.com/riskibarqy/survivor-pool/internal/config"
)

func TestPostgresDSN(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		disable bool
		want    string
	}{
		{
			name:    "adds flag to url",
			url:     "postgres://pool:pool@db:5432/survivor_pool?sslmode=disable",
			disable: true,
			want:    "postgres://pool:pool@db:5432/survivor_pool?disable_prepared_binary_result=yes&sslmode=disable",
		},
		{
			name:    "keeps explicit url value",
			url:     "postgres://pool:pool@db:5432/survivor_pool?disable_prepared_binary_result=no",
			disable: true,
			want:    "postgres://pool:pool@db:5432/survivor_pool?disable_prepared_binary_result=no",
		},
		{
			name:    "adds flag to keyword dsn",
			url:     "host=db dbname=survivor_pool",
			disable: true,
			want:    "host=db dbname=survivor_pool disable_prepared_binary_result=yes",
		},
		{
			name: "flag off leaves dsn alone",
			url:  " postgres://pool:pool@db:5432/survivor_pool ",
			want: "postgres://pool:pool@db:5432/survivor_pool",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PostgresDSN(config.Config{DBURL: tc.url, DBDisablePreparedBinary: tc.disable})
			if got != tc.want {
				t.Fatalf("unexpected dsn:\nwant: %s\ngot:  %s", tc.want, got)
			}
		})
	}
}

func TestDatabaseName(t *testing.T) {
	if got := databaseName("postgres://pool@db:5432/survivor_pool?sslmode=disable"); got != "survivor_pool" {
		t.Fatalf("url dsn: got %q", got)
	}
	if got := databaseName("host=db user=pool dbname='survivor_pool'"); got != "survivor_pool" {
		t.Fatalf("keyword dsn: got %q", got)
	}
	if got := databaseName("host=db"); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestCompactQuery(t *testing.T) {
	got := compactQuery(" SELECT   team_name\nFROM picks \t WHERE player_public_id = $1 ")
	if got != "SELECT team_name FROM picks WHERE player_public_id = $1" {
		t.Fatalf("unexpected query: %q", got)
	}

	long := compactQuery("SELECT " + strings.Repeat("x, ", 400) + "1")
	if len(long) != maxTracedQueryLength+len("...") || !strings.HasSuffix(long, "...") {
		t.Fatalf("expected truncated query, got length %d", len(long))
	}
}
