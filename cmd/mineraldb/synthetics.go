// Synthetics command: lab-grown family listing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syntheticsCmd = &cobra.Command{
	Use:   "synthetics [METHOD]",
	Short: "List synthetic mineral families",
	Long: `List lab-grown mineral families, optionally narrowed to a growth
method such as flame_fusion, flux, hydrothermal, hpht or cvd.

Example:
  mineraldb synthetics
  mineraldb synthetics flux`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := ""
		if len(args) > 0 {
			method = args[0]
		}

		store, err := attachStore()
		if err != nil {
			fail("synthetics", err)
		}
		defer store.Close()

		families, err := store.ListSynthetics(method)
		if err != nil {
			fail("list synthetics", err)
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
			fmt.Println("No synthetic minerals found.")
			return nil
		}
		if method != "" {
			fmt.Printf("Synthetic Minerals grown by %s (%d total):\n", method, len(families))
		} else {
			fmt.Printf("All Synthetic Minerals (%d total):\n", len(families))
		}
		for _, f := range families {
			methodStr := ""
			if f.GrowthMethod != nil {
				methodStr = fmt.Sprintf(" [%s]", *f.GrowthMethod)
			}
			fmt.Printf("  %-40s - %s%s\n", f.ID, f.Name, methodStr)
		}
		return nil
	},
}
