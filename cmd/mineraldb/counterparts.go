// Counterparts command: synthetic/simulant lookup for a natural species.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

var counterpartsCmd = &cobra.Command{
	Use:   "counterparts ID",
	Short: "Show synthetic and simulant counterparts of a species",
	Long: `Show the lab-grown counterparts and look-alike simulants of a
natural mineral family.

Example:
  mineraldb counterparts diamond
  mineraldb counterparts ruby`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		store, err := attachStore()
		if err != nil {
			fail("counterparts", err)
		}
		defer store.Close()

		cp, err := store.Counterparts(id)
		if errors.Is(err, types.ErrNotFound) {
			fmt.Printf("Family not found: %s\n", id)
			os.Exit(exitUserError)
		}
		if err != nil {
			fail("query counterparts", err)
		}

		if flagJSON {
			printJSON(map[string]any{
				"synthetics": cp.Synthetics,
				"simulants":  cp.Simulants,
			})
			return nil
		}

		fmt.Printf("Counterparts for '%s':\n", id)
		fmt.Println("  Synthetics:")
		if len(cp.Synthetics) == 0 {
			fmt.Println("    none")
		}
		for _, s := range cp.Synthetics {
			fmt.Printf("    %s\n", s)
		}
		fmt.Println("  Simulants:")
		if len(cp.Simulants) == 0 {
			fmt.Println("    none")
		}
		for _, s := range cp.Simulants {
			fmt.Printf("    %s\n", s)
		}
		return nil
	},
}
