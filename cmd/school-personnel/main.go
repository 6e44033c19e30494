package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/school-personnel/internal/config"
	"github.com/deppfellow/school-personnel/internal/database"
	"github.com/deppfellow/school-personnel/internal/handler"
	"github.com/deppfellow/school-personnel/internal/logger"
	"github.com/deppfellow/school-personnel/internal/report"
	"github.com/deppfellow/school-personnel/internal/repository"
	"github.com/deppfellow/school-personnel/internal/router"
	"github.com/deppfellow/school-personnel/internal/server"
	"github.com/deppfellow/school-personnel/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	DefaultContextTimeout = 30
	shutdownTimeout       = 10 * time.Second
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           config.ServiceName,
		Short:         "School personnel HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(serve)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Apply migrations and serve the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(serve)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(migrate)
			},
		},
		&cobra.Command{
			Use:   "routes",
			Short: "Print the HTTP routes (no database settings needed)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWith(config.LoadConfigWithoutDatabase, func(cfg *config.Config, log *zerolog.Logger, _ *logger.LoggerService) error {
					srv := &server.Server{Config: cfg, Logger: log}
					r := newRouter(srv, repository.NewRepositoriesWithDB(nil))
					report.Routes(cmd.OutOrStdout(), r.Routes())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "professors",
			Short: "Print every stored professor",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(func(cfg *config.Config, log *zerolog.Logger, svc *logger.LoggerService) error {
					return listProfessors(cmd.OutOrStdout(), cfg, log, svc)
				})
			},
		},
	)

	return root
}

type commandFunc func(cfg *config.Config, log *zerolog.Logger, svc *logger.LoggerService) error

// run loads configuration, builds the logger and hands both to fn. Errors
// are logged here so every subcommand reports failures the same way.
func run(fn commandFunc) error {
	return runWith(config.LoadConfig, fn)
}

func runWith(load func() (*config.Config, error), fn commandFunc) error {
	cfg, err := load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if err := fn(cfg, &log, loggerService); err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

func newRouter(srv *server.Server, repos *repository.Repositories) *echo.Echo {
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)
	return router.NewRouter(srv, handlers)
}

func listProfessors(w io.Writer, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg, log, loggerService)
	if err != nil {
		return err
	}
	defer db.Close()

	professors, err := repository.NewProfessorRepository(db.Pool).List(ctx)
	if err != nil {
		return err
	}

	report.Professors(w, professors)
	return nil
}

func migrate(cfg *config.Config, log *zerolog.Logger, _ *logger.LoggerService) error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	return database.Migrate(ctx, log, cfg)
}

func serve(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	if cfg.Primary.Env != "local" {
		if err := migrate(cfg, log, loggerService); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	srv, err := server.New(ctx, cfg, log, loggerService)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	srv.SetupHTTPServer(newRouter(srv, repository.NewRepositories(srv)))

	stop, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			_ = srv.Shutdown(context.Background())
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-stop.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
