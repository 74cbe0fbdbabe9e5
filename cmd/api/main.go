package main

import (
	"context"
	"time"

	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/database/postgres"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/billingclient"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/repository"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/api"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/config"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/scheduler"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/offering"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/proposing"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/submitting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	catalogRepo := repository.NewCatalogRepository(pgConn)
	proposalRepo := repository.NewProposalRepository(pgConn)

	// The catalog is read-only for the engine, so one cached snapshot
	// serves every proposal session.
	catalogCache := scheduler.NewCatalogCacheService(catalogRepo, cfg)
	if err := catalogCache.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start catalog cache refresh")
	}

	billingClient := billingclient.NewClient(cfg)
	billingIntegrator := billing.New(cfg, billingClient)

	resolver := offering.NewService(cfg)
	proposalViewer := proposing.NewService(proposalRepo, catalogCache, resolver)
	submitter := submitting.NewService(proposalRepo, catalogCache, resolver, billingIntegrator)

	server, err := api.New(cfg, proposalViewer, submitter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
