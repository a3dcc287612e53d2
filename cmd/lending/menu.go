package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/lending_catalog/internal/menu"
	"github.com/SscSPs/lending_catalog/internal/platform/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive text menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Logs go to stderr so they do not mix with the screens.
			cfg, err := config.LoadConfig()
			if err != nil {
				newLogger(os.Stderr, "info").Error("Failed to load config", slog.String("error", err.Error()))
				return err
			}
			logger := newLogger(os.Stderr, cfg.LogLevel)

			a, err := bootstrap(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("Failed to start", slog.String("error", err.Error()))
				return err
			}
			defer a.close()

			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			m := menu.New(a.services, os.Stdin, os.Stdout,
				menu.WithPause(interactive),
				menu.WithLogger(logger),
			)
			return m.Run(cmd.Context())
		},
	}
}
