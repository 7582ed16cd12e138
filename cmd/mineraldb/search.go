// Search command: full-text preset search.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search presets by name, chemistry, locality, or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		store, err := attachStore()
		if err != nil {
			fail("search", err)
		}
		defer store.Close()

		ids, err := store.SearchPresets(query)
		if err != nil {
			fail("search presets", err)
		}

		if flagJSON {
			printJSON(ids)
			return nil
		}

		if len(ids) == 0 {
			fmt.Printf("No presets found matching: %s\n", query)
			return nil
		}
		fmt.Printf("Presets matching '%s':\n", query)
		for _, id := range ids {
			fmt.Printf("  %-25s - %s\n", id, presetName(store, id))
		}
		return nil
	},
}
