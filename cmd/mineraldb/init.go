// Init command: first-run setup of config and data directories.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and seed the database",
	Long: `Create the configuration directory with a default config.yaml, the
data directory, and a database file seeded with the built-in mineral
catalog. Running init on an existing setup is harmless.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fail("resolve config dir", err)
		}

		config, err := storeConfig(false)
		if err != nil {
			fail("init", err)
		}
		if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
			fail("create data dir", err)
		}
		if err := seedDatabase(config); err != nil {
			fail("seed database", err)
		}

		fmt.Println("Mineraldb initialized successfully")
		fmt.Printf("  Config directory: %s\n", configDir)
		fmt.Printf("  Data directory:   %s\n", config.DataDir)
		fmt.Printf("  Database:         %s\n", config.DatabasePath())
		return nil
	},
}
