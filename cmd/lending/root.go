package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/core/services"
	"github.com/SscSPs/lending_catalog/internal/platform/config"
	"github.com/SscSPs/lending_catalog/internal/repositories/database/pgsql"
	"github.com/SscSPs/lending_catalog/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lending",
		Short:         "Lending catalog: members, items, loans and fines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMenuCmd(),
		newMigrateCmd(),
	)
	return root
}

// newLogger builds the JSON logger used by every command and sets it as
// the default. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

// app holds the wired dependencies shared by the serve and menu commands.
type app struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	repos    portsrepo.RepositoryProvider
	services *portssvc.ServiceContainer
}

// bootstrap connects to the database and wires repositories and services.
func bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	if cfg.AutoMigrate {
		if err := runMigrations(cfg, logger, migrateUp); err != nil {
			return nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	return &app{
		cfg:      cfg,
		pool:     dbPool,
		repos:    repos,
		services: services.NewServiceContainer(cfg, repos),
	}, nil
}

func (a *app) close() {
	database.ClosePgxPool(a.pool)
}
