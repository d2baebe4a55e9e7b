package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abkoo/helpdesk/internal/config"
	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/observability"
	"github.com/abkoo/helpdesk/internal/persistence"
	"github.com/abkoo/helpdesk/internal/repository"
	"github.com/abkoo/helpdesk/internal/service"
)

var (
	adminIdentifier  string
	adminDisplayName string
	adminPassword    string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Long:  `Seed an administrator account, typically once after the first deployment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminIdentifier == "" || adminPassword == "" {
			return fmt.Errorf("--identifier and --password are required")
		}

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

		authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
			UserRepo: repository.NewUserRepository(pg.PoolHandle()),
			Logger:   logger,
		})

		user, err := authService.CreateUser(cmd.Context(), adminIdentifier, adminDisplayName, adminPassword, domain.UserRoleAdmin)
		if err != nil {
			return err
		}

		fmt.Printf("created admin %s (%s)\n", user.Identifier, user.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminIdentifier, "identifier", "", "login identifier for the new admin")
	createAdminCmd.Flags().StringVar(&adminDisplayName, "display-name", "", "display name (defaults to the identifier)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "initial password")
}
