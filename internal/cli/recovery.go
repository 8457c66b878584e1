// filepath: internal/cli/recovery.go
package cli

import (
	"fmt"

	"dentahub/internal/logging"
	"dentahub/internal/repository"

	"github.com/spf13/cobra"
)

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Run maintenance tasks to fix database inconsistencies",
	Long: `Scans the appointments table for rows whose patient or doctor no longer
exists (e.g. after restoring an old backup) and removes them. This does not
start the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecovery()
	},
}

func init() {
	RootCmd.AddCommand(recoveryCmd)
}

func runRecovery() error {
	// Initialize repository (using cfg loaded by RootCmd)
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.ValidateSchema(); err != nil {
		return fmt.Errorf("cannot run recovery on outdated database: %w", err)
	}

	logging.Log.Info("Starting recovery process...")

	totalFixed, err := repo.RepairAppointments()
	if err != nil {
		return err
	}

	logging.Log.Infof("Recovery complete. Total orphaned appointments removed: %d", totalFixed)
	return nil
}
