package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/survivor-pool/internal/config"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "survivor-pool-api",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		StorageDriver:      config.StorageDriverMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		OverviewWorkers:    2,
	}
}

func TestNew_MemoryDriverServesDefaultSeed(t *testing.T) {
	application, err := New(memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer application.Close()

	rec := httptest.NewRecorder()
	application.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNew_MemoryDriverLoadsSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
players:
  - id: p-1
    name: Riley
teams:
  - Detroit Lions
  - Chicago Bears
games:
  - id: g-1
    week: 3
    home_team: Detroit Lions
    away_team: Chicago Bears
    kickoff: 2026-09-18T00:15:00Z
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cfg := memoryConfig()
	cfg.SeedFile = path
	application, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}

	rec := httptest.NewRecorder()
	application.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))
	if !strings.Contains(rec.Body.String(), "Riley") {
		t.Fatalf("expected seeded player in response, got %s", rec.Body.String())
	}
}

func TestNew_RejectsMissingSeedFile(t *testing.T) {
	cfg := memoryConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}
