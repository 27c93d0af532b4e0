package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/jobscout-api/pkg/config"
	"github.com/killallgit/jobscout-api/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobscout-api",
	Short: "JobScout API server",
	Long: `JobScout API - aggregated job search over the JSearch provider

A single search is expanded into several provider queries which run
concurrently. Results are merged, deduplicated, restricted to the
requested location and returned one page at a time.

Features:
  • Concurrent query fan-out with partial-failure tolerance
  • Location and country filtering
  • Optional result cache (in-memory or Redis)
  • Search log stored in SQLite`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides config")
	rootCmd.PersistentFlags().Bool("json-logs", false, "force JSON formatted logs")
}

// loadConfig loads configuration and logging before any command that needs them
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := setupLogging(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs the global logger. Flags win over configuration.
func setupLogging(cmd *cobra.Command) error {
	level := config.GetString("logging.level")
	format := config.GetString("logging.format")

	if flagLevel, _ := cmd.PersistentFlags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}
	if jsonLogs, _ := cmd.PersistentFlags().GetBool("json-logs"); jsonLogs {
		format = "json"
	}

	_, err := logging.New(level, format)
	return err
}
