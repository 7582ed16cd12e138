// Forms command: presets carrying a crystal form.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formsCmd = &cobra.Command{
	Use:   "forms FORM",
	Short: "List presets exhibiting a crystal form",
	Long: `List presets whose form list contains the given form, matched
case-insensitively as a substring.

Example:
  mineraldb forms octahedron
  mineraldb forms prism`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := args[0]

		store, err := attachStore()
		if err != nil {
			fail("forms", err)
		}
		defer store.Close()

		ids, err := store.GetPresetsByForm(form)
		if err != nil {
			fail("query forms", err)
		}

		if flagJSON {
			printJSON(ids)
			return nil
		}

		if len(ids) == 0 {
			fmt.Printf("No presets found with form: %s\n", form)
			return nil
		}
		fmt.Printf("Presets with form '%s':\n", form)
		for _, id := range ids {
			fmt.Printf("  %-25s - %s\n", id, presetName(store, id))
		}
		return nil
	},
}
