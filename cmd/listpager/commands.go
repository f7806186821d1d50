package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Alp4ka/listpager/internal/api"
	"github.com/Alp4ka/listpager/internal/config"
	"github.com/Alp4ka/listpager/internal/database"
	"github.com/Alp4ka/listpager/internal/logger"
	"github.com/Alp4ka/listpager/internal/repository"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "listpager",
		Short:        "Paginated read API of the mailing list database",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the configuration file")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newVersionCmd(),
	)

	return rootCmd
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withDatabase(*configPath, func(cfg *config.Config, log zerolog.Logger, db *gorm.DB) error {
				return serve(ctx, cfg, log, db)
			})
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(*configPath, func(_ *config.Config, log zerolog.Logger, db *gorm.DB) error {
				if err := database.Migrate(cmd.Context(), db); err != nil {
					return err
				}

				log.Info().Msg("schema migrated")
				return nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Args:  cobra.NoArgs,
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// withDatabase loads configuration, builds the logger, opens the database and
// runs fn, closing the database afterwards.
func withDatabase(configPath string, fn func(*config.Config, zerolog.Logger, *gorm.DB) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("database unavailable")
		return err
	}
	defer func() {
		if cerr := database.Close(db); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close database")
		}
	}()

	return fn(cfg, log, db)
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger, db *gorm.DB) error {
	maxLimit := cfg.Pagination.MaxLimit

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Dependencies{
		Subscribers:          repository.NewSubscriberRepository(db, maxLimit),
		Lists:                repository.NewSubscriberListRepository(db, maxLimit),
		Messages:             repository.NewMessageRepository(db, maxLimit),
		EventLogs:            repository.NewEventLogRepository(db, maxLimit),
		AttributeValues:      repository.NewAdminAttributeValueRepository(db, maxLimit),
		AttributeDefinitions: repository.NewAdminAttributeDefinitionRepository(db, maxLimit),
		URLCache:             repository.NewURLCacheRepository(db, maxLimit),
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
		MaxLimit: maxLimit,
	}, log)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return <-errCh
}
