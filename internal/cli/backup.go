// filepath: internal/cli/backup.go
package cli

import (
	"fmt"

	"dentahub/internal/logging"
	"dentahub/internal/repository"

	"github.com/spf13/cobra"
)

var backupName string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Database backup tools",
	Long:  `Create a snapshot of the live database or restore one. Use subcommands 'create' or 'restore'.`,
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the database into the backup directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupCreate()
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the live database with a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupRestore(args[0])
	},
}

func init() {
	backupCreateCmd.Flags().StringVar(&backupName, "name", "", "Backup file name (generated when omitted)")
	RootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

func runBackupCreate() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.ValidateSchema(); err != nil {
		return err
	}

	info, err := repo.Backup(cfg.Database.BackupDir, backupName, "manual")
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	logging.Log.Infof("Backup written to %s (%d bytes)", info.FilePath, info.SizeBytes)
	return nil
}

func runBackupRestore(path string) error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	logging.Log.Warnf("Restoring database from %s", path)
	if err := repo.Restore(path); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	logging.Log.Info("Restore complete.")
	return nil
}
