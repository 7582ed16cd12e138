// Categories command: category names with preset counts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List preset categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fail("categories", err)
		}
		defer store.Close()

		categories, err := store.ListPresetCategories()
		if err != nil {
			fail("list categories", err)
		}

		if flagJSON {
			out := make(map[string]int, len(categories))
			for _, category := range categories {
				ids, err := store.ListPresets(category)
				if err != nil {
					continue
				}
				out[category] = len(ids)
			}
			printJSON(out)
			return nil
		}

		fmt.Println("Preset Categories:")
		for _, category := range categories {
			ids, err := store.ListPresets(category)
			if err != nil {
				continue
			}
			fmt.Printf("  %-15s (%d presets)\n", category, len(ids))
		}
		return nil
	},
}
