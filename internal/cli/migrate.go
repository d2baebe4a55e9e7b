package cli

import (
	"github.com/spf13/cobra"

	"github.com/abkoo/helpdesk/internal/config"
	"github.com/abkoo/helpdesk/internal/observability"
	"github.com/abkoo/helpdesk/internal/persistence"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations and exit",
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

		pg, err := persistence.NewPostgres(cmd.Context(), cfg.Postgres, logger)
		if err != nil {
			return err
		}
		defer pg.Close()

		return persistence.RunMigrations(cmd.Context(), pg.PoolHandle(), logger)
	},
}
