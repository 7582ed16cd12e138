// Identify command: candidate lookup by measured RI or SG.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

var (
	flagIdentifyRI        float64
	flagIdentifySG        float64
	flagIdentifyTolerance float64
)

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Find candidate minerals from a measured value",
	Long: `Find minerals whose refractive index or specific gravity range
overlaps a measured value within a tolerance. Results are ordered by
closeness of the range midpoint to the measurement.

Example:
  mineraldb identify --ri 1.762
  mineraldb identify --ri 1.55 --tolerance 0.05
  mineraldb identify --sg 4.0`,
	Args: cobra.NoArgs,
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().Float64Var(&flagIdentifyRI, "ri", 0, "measured refractive index")
	identifyCmd.Flags().Float64Var(&flagIdentifySG, "sg", 0, "measured specific gravity")
	identifyCmd.Flags().Float64Var(&flagIdentifyTolerance, "tolerance", 0.01, "match tolerance")
}

func runIdentify(cmd *cobra.Command, args []string) error {
	hasRI := cmd.Flags().Changed("ri")
	hasSG := cmd.Flags().Changed("sg")
	if hasRI == hasSG {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: exactly one of --ri or --sg is required")
		os.Exit(exitUserError)
	}

	store, err := attachStore()
	if err != nil {
		fail("identify", err)
	}
	defer store.Close()

	var (
		results []*types.Mineral
		label   string
		value   float64
	)
	if hasRI {
		label, value = "RI", flagIdentifyRI
		results, err = store.FindByRI(flagIdentifyRI, flagIdentifyTolerance)
	} else {
		label, value = "SG", flagIdentifySG
		results, err = store.FindBySG(flagIdentifySG, flagIdentifyTolerance)
	}
	if err != nil {
		fail("identify minerals", err)
	}

	if flagJSON {
		ids := make([]string, len(results))
		for i, m := range results {
			ids[i] = m.ID
		}
		printJSON(ids)
		return nil
	}

	if len(results) == 0 {
		fmt.Printf("No minerals match %s %.3f (±%.3f)\n", label, value, flagIdentifyTolerance)
		return nil
	}
	fmt.Printf("Candidates for %s %.3f (±%.3f):\n", label, value, flagIdentifyTolerance)
	for _, m := range results {
		var rng *string
		if hasRI {
			rng = m.RI
		} else {
			rng = m.SG
		}
		if rng != nil {
			fmt.Printf("  %-25s - %s (%s %s)\n", m.ID, m.Name, label, *rng)
		} else {
			fmt.Printf("  %-25s - %s\n", m.ID, m.Name)
		}
	}
	return nil
}
