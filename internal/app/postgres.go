package app

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/survivor-pool/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	maxTracedQueryLength = 512
	preparedBinaryParam  = "disable_prepared_binary_result"
)

// PostgresDSN is the connection string the API and the migrator both dial.
func PostgresDSN(cfg config.Config) string {
	dsn := strings.TrimSpace(cfg.DBURL)
	if !cfg.DBDisablePreparedBinary {
		return dsn
	}
	return withDSNParam(dsn, preparedBinaryParam, "yes")
}

// withDSNParam sets key on a URL or key=value DSN unless the caller already did.
func withDSNParam(dsn, key, value string) string {
	if parsed, ok := parseDBURL(dsn); ok {
		query := parsed.Query()
		if query.Has(key) {
			return dsn
		}
		query.Set(key, value)
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	if _, found := dsnKeywordValue(dsn, key); found || dsn == "" {
		return dsn
	}
	return dsn + " " + key + "=" + value
}

func databaseName(dsn string) string {
	if parsed, ok := parseDBURL(dsn); ok {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	name, _ := dsnKeywordValue(dsn, "dbname")
	return name
}

func parseDBURL(dsn string) (*url.URL, bool) {
	parsed, err := url.Parse(strings.TrimSpace(dsn))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, false
	}
	return parsed, true
}

func dsnKeywordValue(dsn, key string) (string, bool) {
	for _, token := range strings.Fields(dsn) {
		k, v, ok := strings.Cut(token, "=")
		if ok && k == key {
			return strings.Trim(v, `"'`), true
		}
	}
	return "", false
}

// compactQuery collapses whitespace so multi-line statements read as one span
// attribute, and caps the length.
func compactQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) > maxTracedQueryLength {
		return compact[:maxTracedQueryLength] + "..."
	}
	return compact
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := PostgresDSN(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(databaseName(dsn)),
		otelsql.WithQueryFormatter(compactQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
