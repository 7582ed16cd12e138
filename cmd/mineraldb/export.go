// Export command: per-mineral YAML dump of the catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as YAML files",
	Long: `Write one YAML file per mineral entry into the output directory,
named <id>.yaml. The exported files round-trip through the build
command.

Example:
  mineraldb export -o ./exported`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagExportOut == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: -o is required")
			os.Exit(exitUserError)
		}

		store, err := attachStore()
		if err != nil {
			fail("export", err)
		}
		defer store.Close()

		count, err := store.ExportYAML(flagExportOut)
		if err != nil {
			fail("export YAML", err)
		}

		if flagJSON {
			printJSON(map[string]any{"exported": count, "dir": flagExportOut})
			return nil
		}
		fmt.Printf("Exported %d presets to %s\n", count, flagExportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "output directory")
}
