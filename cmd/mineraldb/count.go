// Count command: total preset count.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Show the total number of presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fail("count", err)
		}
		defer store.Close()

		count, err := store.CountPresets()
		if err != nil {
			fail("count presets", err)
		}

		if flagJSON {
			printJSON(map[string]int{"count": count})
			return nil
		}
		fmt.Printf("Total presets: %d\n", count)
		return nil
	},
}
