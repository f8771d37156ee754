package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"github.com/wicketline/cricket-stats/internal/config"
	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
	"github.com/wicketline/cricket-stats/internal/domain/award"
	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/domain/performance"
	"github.com/wicketline/cricket-stats/internal/domain/player"
	"github.com/wicketline/cricket-stats/internal/domain/result"
	"github.com/wicketline/cricket-stats/internal/domain/score"
	"github.com/wicketline/cricket-stats/internal/domain/team"
	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/postgres"
	"github.com/wicketline/cricket-stats/internal/interfaces/httpapi"
	"github.com/wicketline/cricket-stats/internal/platform/logging"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type repositories struct {
	teams        team.Repository
	players      player.Repository
	matches      match.Repository
	scores       score.Repository
	performances performance.Repository
	awards       award.Repository
	results      result.Repository
	auditLogs    auditlog.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	teamSvc := usecase.NewTeamService(repos.teams)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, repos.performances)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams)
	scoreSvc := usecase.NewMatchScoreService(repos.scores, repos.matches)
	performanceSvc := usecase.NewPerformanceService(repos.performances, repos.matches, repos.players)
	awardSvc := usecase.NewAwardService(repos.awards, repos.players)
	resultSvc := usecase.NewMatchResultService(repos.results, repos.matches, repos.teams)
	auditSvc := usecase.NewAuditLogService(repos.auditLogs)

	handler := httpapi.NewHandler(
		teamSvc,
		playerSvc,
		matchSvc,
		scoreSvc,
		performanceSvc,
		awardSvc,
		resultSvc,
		auditSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, auditSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.Storage == config.StorageMemory {
		logger.Info("storage configured", "driver", config.StorageMemory)
		db := memory.SeedDB()
		return repositories{
			teams:        memory.NewTeamRepository(db),
			players:      memory.NewPlayerRepository(db),
			matches:      memory.NewMatchRepository(db),
			scores:       memory.NewMatchScoreRepository(db),
			performances: memory.NewPerformanceRepository(db),
			awards:       memory.NewAwardRepository(db),
			results:      memory.NewMatchResultRepository(db),
			auditLogs:    memory.NewAuditLogRepository(db),
		}, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, err
	}
	logger.Info("storage configured", "driver", config.StoragePostgres, "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		teams:        postgres.NewTeamRepository(db),
		players:      postgres.NewPlayerRepository(db),
		matches:      postgres.NewMatchRepository(db),
		scores:       postgres.NewMatchScoreRepository(db),
		performances: postgres.NewPerformanceRepository(db),
		awards:       postgres.NewAwardRepository(db),
		results:      postgres.NewMatchResultRepository(db),
		auditLogs:    postgres.NewAuditLogRepository(db),
	}, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}
