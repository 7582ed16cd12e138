// List command: presets grouped by category, optionally narrowed by
// category or origin.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

var flagListOrigin string

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List presets, optionally by crystal system or category",
	Long: `List presets grouped by category, or the presets of one category.

A category names either a curated tag category (such as "twins") or a
crystal system. With --origin the listing switches to the family table
filtered by origin classification.

Example:
  mineraldb list
  mineraldb list cubic
  mineraldb list twins
  mineraldb list --origin synthetic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListOrigin, "origin", "", "filter by origin (natural, synthetic, simulant, composite)")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		fail("list", err)
	}
	defer store.Close()

	if flagListOrigin != "" {
		return listByOrigin(store, flagListOrigin)
	}

	if len(args) == 1 {
		return listCategory(store, args[0])
	}
	return listAll(store)
}

func listByOrigin(store types.Store, origin string) error {
	ids, err := store.ListByOrigin(origin)
	if err != nil {
		fail("list by origin", err)
	}

	if flagJSON {
		printJSON(ids)
		return nil
	}

	if len(ids) == 0 {
		fmt.Printf("No %s minerals found.\n", origin)
		return nil
	}
	fmt.Printf("%s Minerals (%d total):\n", title(origin), len(ids))
	for _, id := range ids {
		family, err := store.GetFamily(id)
		if err != nil {
			continue
		}
		fmt.Printf("  %-40s - %s\n", id, family.Name)
	}
	return nil
}

func listCategory(store types.Store, category string) error {
	ids, err := store.ListPresets(category)
	if err != nil {
		fail("list presets", err)
	}

	if flagJSON {
		printJSON(ids)
		return nil
	}

	if len(ids) == 0 {
		fmt.Printf("No presets found for category: %s\n", category)
		return nil
	}
	fmt.Printf("%s Presets:\n", title(category))
	printPresetLines(store, ids, "  ")
	return nil
}

func listAll(store types.Store) error {
	if flagJSON {
		ids, err := store.ListPresets("")
		if err != nil {
			fail("list presets", err)
		}
		printJSON(ids)
		return nil
	}

	count, err := store.CountPresets()
	if err != nil {
		fail("count presets", err)
	}
	categories, err := store.ListPresetCategories()
	if err != nil {
		fail("list categories", err)
	}

	fmt.Printf("All Crystal Presets (%d total):\n", count)
	for _, category := range categories {
		ids, err := store.ListPresets(category)
		if err != nil || len(ids) == 0 {
			continue
		}
		fmt.Printf("\n  %s:\n", title(category))
		printPresetLines(store, ids, "    ")
	}
	return nil
}

// printPresetLines renders one "id - Name [origin]" line per preset.
func printPresetLines(store types.Store, ids []string, indent string) {
	for _, id := range ids {
		preset, err := store.GetPreset(id)
		if err != nil {
			continue
		}
		name, _ := preset["name"].(string)
		fmt.Printf("%s%-25s - %s%s\n", indent, id, name, originTag(preset))
	}
}

// title uppercases the first letter of a category name for headings.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
