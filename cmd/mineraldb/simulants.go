// Simulants command: look-alike family listing.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var simulantsCmd = &cobra.Command{
	Use:   "simulants [TARGET]",
	Short: "List simulant mineral families",
	Long: `List simulant families, optionally narrowed to the natural species
they imitate.

Example:
  mineraldb simulants
  mineraldb simulants diamond`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) > 0 {
			target = args[0]
		}

		store, err := attachStore()
		if err != nil {
			fail("simulants", err)
		}
		defer store.Close()

		families, err := store.ListSimulants(target)
		if err != nil {
			fail("list simulants", err)
		}

		if flagJSON {
			ids := make([]string, len(families))
			for i, f := range families {
				ids[i] = f.ID
			}
			printJSON(ids)
			return nil
		}

		if len(families) == 0 {
			fmt.Println("No simulants found.")
			return nil
		}
		if target != "" {
			fmt.Printf("Simulants of %s (%d total):\n", target, len(families))
		} else {
			fmt.Printf("All Simulants (%d total):\n", len(families))
		}
		for _, f := range families {
			targetsStr := ""
			if len(f.TargetMinerals) > 0 {
				targetsStr = fmt.Sprintf(" → %s", strings.Join(f.TargetMinerals, ", "))
			}
			fmt.Printf("  %-40s - %s%s\n", f.ID, f.Name, targetsStr)
		}
		return nil
	},
}
