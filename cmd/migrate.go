package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/jobscout-api/internal/database"
	"github.com/killallgit/jobscout-api/internal/models"
	"github.com/killallgit/jobscout-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the search log database schema.

Available subcommands:
  up      - Create or update the search log tables
  status  - Show whether the tables exist and how many rows they hold`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the search log tables",
	RunE:  runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("db", "", "database path (overrides config)")
}

func openMigrationDB(cmd *cobra.Command) (*database.DB, string, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, "", err
	}

	path := cfg.Database.Path
	if flagPath, _ := cmd.Flags().GetString("db"); flagPath != "" {
		path = flagPath
	}
	if path == "" {
		return nil, "", fmt.Errorf("no database path configured")
	}

	db, err := database.Initialize(path, cfg.Database.Verbose)
	if err != nil {
		return nil, "", err
	}
	return db, path, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, path, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.SearchLog{}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied to %s\n", path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, path, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database: %s\n", path)

	table := models.SearchLog{}.TableName()
	if !db.Migrator().HasTable(&models.SearchLog{}) {
		fmt.Fprintf(out, "  %-12s pending\n", table)
		return nil
	}

	var rows int64
	if err := db.WithContext(cmd.Context()).Model(&models.SearchLog{}).Count(&rows).Error; err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	fmt.Fprintf(out, "  %-12s applied (%d rows)\n", table, rows)
	return nil
}
