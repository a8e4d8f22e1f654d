package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/employee-service/internal/config"
	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/deppfellow/employee-service/internal/logger"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/router"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// DefaultContextTimeout bounds startup (database connect and indexes) and
// graceful shutdown.
const DefaultContextTimeout = 30

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "employee-service",
		Short:         "HTTP API for employee records stored in MongoDB",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), debug)
		},
	}
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging and Echo debug mode")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Error().Err(err).Msg("employee-service exited")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, debug bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if debug {
		cfg.Server.Debug = true
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService, cfg.Server.Debug)

	startCtx, cancel := context.WithTimeout(ctx, DefaultContextTimeout*time.Second)
	defer cancel()

	srv, err := server.New(startCtx, cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			_ = srv.Shutdown(context.Background())
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
