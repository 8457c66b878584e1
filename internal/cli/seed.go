// filepath: internal/cli/seed.go
package cli

import (
	"fmt"

	"dentahub/internal/logging"
	"dentahub/internal/repository"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with demo data",
	Long: `Inserts the demo clinic: staff and patient accounts, the dental service
catalogue, sample appointments and transactions. A database that already
contains users is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed()
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}

func runSeed() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		return fmt.Errorf("failed to bootstrap database: %w", err)
	}
	if err := repo.ValidateSchema(); err != nil {
		return err
	}

	if err := repo.Seed(cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logging.Log.Info("Seeding complete.")
	return nil
}
