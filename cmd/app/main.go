package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/pkg/logger"

	"github.com/rs/zerolog"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: configs.AppEnv, Level: configs.LogLevel})

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to postgres")
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, log)
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatal().Err(err).Msg("start jobs")
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, log)
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
}

func startWebServer(app *cmd.CompositionRoot, port string, log zerolog.Logger) {
	e := app.CreateHTTPServer().Echo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", port).Msg("http server listening")
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
}
