package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"tender-marketplace-api/internal/config"
	"tender-marketplace-api/internal/controller"
	"tender-marketplace-api/internal/repo"
	"tender-marketplace-api/internal/service"
	"tender-marketplace-api/pkg/http_server"
	"tender-marketplace-api/pkg/logger"
	"tender-marketplace-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func runMigrations(pg *postgres.Postgres, sourceUrl string, log *zap.Logger) error {
	driver, err := pgmigrate.WithInstance(pg.Database, &pgmigrate.Config{})
	if err != nil {
		return err
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, "postgres", driver)
	if err != nil {
		return err
	}

	if err = migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no change made by migration scripts")
			return nil
		}

		return err
	}

	return nil
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Production)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer postgresDB.Close()

	log.Info("running migrations")
	if err = runMigrations(postgresDB, cfg.MigrationsPath, log); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}

	repositories := repo.NewRepositories(postgresDB, log)
	services := service.NewServices(repositories)
	handler := echo.New()

	controller.SetupRoutesHandlers(handler, services)

	log.Info("starting server", zap.String("address", cfg.ServerAddress))
	httpServer := http_server.New(handler, cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("got signal", zap.String("signal", s.String()))
	case err = <-httpServer.Notify():
		log.Error("server stopped", zap.Error(err))
	}

	log.Info("shutting down")
	if err = httpServer.Shutdown(); err != nil {
		log.Error("shutdown error", zap.Error(err))
		return
	}

	log.Info("successful shutdown")
}
