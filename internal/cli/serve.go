package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/abkoo/helpdesk/internal/api/http"
	"github.com/abkoo/helpdesk/internal/api/http/handlers"
	"github.com/abkoo/helpdesk/internal/auth"
	"github.com/abkoo/helpdesk/internal/config"
	"github.com/abkoo/helpdesk/internal/events"
	"github.com/abkoo/helpdesk/internal/observability"
	"github.com/abkoo/helpdesk/internal/persistence"
	"github.com/abkoo/helpdesk/internal/repository"
	"github.com/abkoo/helpdesk/internal/service"
	"github.com/abkoo/helpdesk/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := observability.NewLogger(cfg.Logger)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return err
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				return err
			}
		}

		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()

		pool := pg.PoolHandle()
		userRepo := repository.NewUserRepository(pool)
		ticketRepo := repository.NewTicketRepository(pool)

		dispatcher := events.NewInMemoryDispatcher()
		revocation := auth.NewRevocationList(redis.Client)

		authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
			UserRepo:   userRepo,
			Revocation: revocation,
			Logger:     logger,
		})
		userService := service.NewUserService(userRepo, dispatcher, logger)
		ticketService := service.NewTicketService(ticketRepo, dispatcher)
		notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
		worker.StartNotificationWorker(notificationService)

		authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), revocation)
		metrics := observability.NewMetrics()

		app := fiber.New(fiber.Config{AppName: cfg.App.Name})
		httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

		httptransport.RegisterRoutes(app, httptransport.RouteConfig{
			Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
			Auth:           handlers.NewAuthHandler(authService),
			Users:          handlers.NewUsersHandler(authService, userService),
			Tickets:        handlers.NewTicketsHandler(ticketService),
			AuthMiddleware: authMiddleware,
		})

		go func() {
			if err := app.Listen(cfg.App.Addr()); err != nil {
				logger.Fatal("fiber listen", zap.Error(err))
			}
		}()

		waitForShutdown(logger)

		return app.Shutdown()
	},
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
