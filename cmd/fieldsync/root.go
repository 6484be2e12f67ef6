// Root command for the fieldsync CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zylem/fieldsync/internal/query"
	"github.com/zylem/fieldsync/internal/store"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagInMemory  bool
)

var rootCmd = &cobra.Command{
	Use:   "fieldsync",
	Short: "fieldsync manages the local field-sales database",
	Long: `fieldsync is the local database layer of the field-sales app: a
single-image SQLite store, a sync snapshot loader and the domain queries
the app runs against it.`,
	PersistentPreRunE: openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.fieldsync)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (overrides config.yaml data_dir)")
	rootCmd.PersistentFlags().BoolVar(&flagInMemory, "in-memory", false, "run without persisting to disk")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(settingCmd)
	rootCmd.AddCommand(attendanceCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local database",
	Long:  `Create the data directory, the schema and an empty database image.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is already open by PersistentPreRunE; opening creates
		// the schema and writes the first image.
		fmt.Println("Database initialized successfully")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fieldsync v0.1.0")
	},
}

// openStore loads config and opens the shared store instance.
func openStore(cmd *cobra.Command, args []string) error {
	// Version needs no database.
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	db = s
	queries = query.New(s)
	return nil
}

// closeStore persists and releases the store.
func closeStore() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
