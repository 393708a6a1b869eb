package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/survivor-pool/internal/config"
	"github.com/riskibarqy/survivor-pool/internal/domain/elimination"
	"github.com/riskibarqy/survivor-pool/internal/domain/game"
	"github.com/riskibarqy/survivor-pool/internal/domain/pick"
	"github.com/riskibarqy/survivor-pool/internal/domain/player"
	"github.com/riskibarqy/survivor-pool/internal/domain/team"
	cacherepo "github.com/riskibarqy/survivor-pool/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/survivor-pool/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/survivor-pool/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/survivor-pool/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/survivor-pool/internal/platform/cache"
	idgen "github.com/riskibarqy/survivor-pool/internal/platform/id"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
	"github.com/riskibarqy/survivor-pool/internal/platform/metrics"
	"github.com/riskibarqy/survivor-pool/internal/usecase"
)

// App owns the HTTP server and the storage handle behind it.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

type repositories struct {
	players      player.Repository
	teams        team.Repository
	games        game.Repository
	picks        pick.Repository
	eliminations elimination.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	out := &App{}
	repos, err := out.openRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		var opts []basecache.Option
		if cfg.MetricsEnabled {
			opts = append(opts, basecache.WithLookupObserver(metrics.ObserveCacheLookup))
		}
		store := basecache.NewStore(cfg.CacheTTL, opts...)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
	}

	scheduleSvc := usecase.NewScheduleService(repos.games, logger)
	eligibilitySvc := usecase.NewEligibilityService(repos.players, repos.teams, repos.picks, repos.eliminations, logger)
	eligibilitySvc.SetOverviewWorkers(cfg.OverviewWorkers)
	submissionSvc := usecase.NewSubmissionService(
		repos.players,
		repos.games,
		repos.picks,
		scheduleSvc,
		eligibilitySvc,
		idgen.NewRandomGenerator("pick"),
		logger,
	)
	standingsSvc := usecase.NewStandingsService(scheduleSvc, repos.games, repos.picks)

	handler := httpapi.NewHandler(scheduleSvc, eligibilitySvc, submissionSvc, standingsSvc, clockwork.NewRealClock(), logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.MetricsEnabled)

	out.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return out, nil
}

func (a *App) openRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		seed := memory.DefaultSeed()
		if cfg.SeedFile != "" {
			loaded, err := memory.LoadSeedFile(cfg.SeedFile)
			if err != nil {
				return repositories{}, fmt.Errorf("load seed file: %w", err)
			}
			seed = loaded
		}
		logger.Info("storage ready",
			"driver", cfg.StorageDriver,
			"players", len(seed.Players),
			"games", len(seed.Games),
		)

		mem := memory.NewRepositories(seed)
		return repositories{
			players:      mem.Players,
			teams:        mem.Teams,
			games:        mem.Games,
			picks:        mem.Picks,
			eliminations: mem.Eliminations,
		}, nil
	case config.StorageDriverPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		a.db = db
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", databaseName(cfg.DBURL))

		return repositories{
			players:      postgres.NewPlayerRepository(db),
			teams:        postgres.NewTeamRepository(db),
			games:        postgres.NewGameRepository(db),
			picks:        postgres.NewPickRepository(db),
			eliminations: postgres.NewEliminationRepository(db),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// Close releases the storage handle. The server must already be shut down.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
