// Show command: one preset as indented JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Output a preset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		store, err := attachStore()
		if err != nil {
			fail("show", err)
		}
		defer store.Close()

		preset, err := store.GetPreset(id)
		if err != nil {
			if isNotFound(err) {
				fmt.Printf("{\"error\": \"Preset not found: %s\"}\n", id)
				os.Exit(exitUserError)
			}
			fail("get preset", err)
		}

		printJSON(preset)
		return nil
	},
}
