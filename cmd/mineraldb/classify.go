// Classify command: band lookup against the reference thresholds.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify CATEGORY VALUE",
	Short: "Classify a measurement against the reference bands",
	Long: `Classify a numeric measurement into the named band of a threshold
category, such as a birefringence or dispersion reading.

Example:
  mineraldb classify birefringence 0.018
  mineraldb classify dispersion 0.044`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := args[0]
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: invalid value: %s\n", args[1])
			os.Exit(exitUserError)
		}

		store, err := attachStore()
		if err != nil {
			fail("classify", err)
		}
		defer store.Close()

		level, err := store.Classify(category, value)
		if errors.Is(err, types.ErrNotFound) {
			fmt.Printf("No %s band contains %s\n", category, args[1])
			os.Exit(exitUserError)
		}
		if err != nil {
			fail("classify value", err)
		}

		if flagJSON {
			printJSON(map[string]any{
				"category": category,
				"value":    value,
				"level":    level,
			})
			return nil
		}
		fmt.Printf("%s %s: %s\n", category, args[1], level)
		return nil
	},
}

func init() {
	// Negative measurements like "classify birefringence -1" must parse
	// as the VALUE positional, not as a shorthand flag.
	classifyCmd.Flags().SetInterspersed(false)
}
