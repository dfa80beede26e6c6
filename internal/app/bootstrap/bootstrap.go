package bootstrap

import (
	"errors"
	"log/slog"
	"strings"

	credentialservice "taskhub/contexts/identity-access/credential-service"
	credentialpostgres "taskhub/contexts/identity-access/credential-service/adapters/postgres"
	"taskhub/contexts/identity-access/credential-service/adapters/security"
	taskservice "taskhub/contexts/task-management/task-service"
	taskpostgres "taskhub/contexts/task-management/task-service/adapters/postgres"
	"taskhub/internal/platform/config"
	"taskhub/internal/platform/db"
	"taskhub/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := credentialpostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}
	if err := taskpostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}

	credentials := credentialservice.NewModule(credentialservice.Dependencies{
		Repository:  credentialpostgres.NewRepository(pg.DB, logger),
		Hasher:      security.BcryptHasher{Cost: cfg.BcryptCost},
		TokenSecret: []byte(cfg.JWTSecret),
		Clock:       credentialpostgres.SystemClock{},
		IDGenerator: credentialpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	tasks := taskservice.NewModule(taskservice.Dependencies{
		Repository:  taskpostgres.NewRepository(pg.DB, logger),
		Clock:       taskpostgres.SystemClock{},
		IDGenerator: taskpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(credentials, tasks, logger, ":"+cfg.HTTPPort)

	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	return a.server.Start()
}

func (a *APIApp) Close() error {
	return a.postgres.Close()
}
