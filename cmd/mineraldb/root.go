// Root command for the mineraldb CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mineraldb/internal/paths"
	"github.com/mesh-intelligence/mineraldb/pkg/mineraldb"
)

// Exit codes: 0 success, 1 user error (unknown preset, bad argument),
// 2 system error (storage, config).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagDB        string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configDataDir string

// configDatabaseFile holds the database_file value loaded from config.yaml.
var configDatabaseFile string

var rootCmd = &cobra.Command{
	Use:     "mineraldb",
	Short:   "Mineral database - crystal presets query tool",
	Long: `Mineraldb is a reference database of mineral crystallographic and
gemmological data: crystal presets keyed by id, identification
calculators, and synthetic/simulant classification.`,
	Version:      mineraldb.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDatabaseFile = cfg.GetString(cfgKeyDatabaseFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.mineraldb-data)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file name inside the data directory")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(formsCmd)
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(syntheticsCmd)
	rootCmd.AddCommand(simulantsCmd)
	rootCmd.AddCommand(counterpartsCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveDataDir returns the data directory path following the precedence
// chain: --data-dir flag > config.yaml data_dir > MINERALDB_DATA_DIR env >
// default $(CWD)/.mineraldb-data.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > MINERALDB_CONFIG_DIR env >
// DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
