// Filter command: multi-criteria mineral filtering.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

var (
	flagFilterSystem      string
	flagFilterMinHardness float64
	flagFilterMaxHardness float64
	flagFilterMinRI       float64
	flagFilterMaxRI       float64
	flagFilterBirefr      bool
	flagFilterTwinned     bool
	flagFilterOrigin      string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter minerals by physical and optical criteria",
	Long: `Filter minerals by any combination of crystal system, Mohs hardness
bounds, refractive index window, birefringence, twinning, and origin.

Example:
  mineraldb filter --system cubic
  mineraldb filter --min-hardness 8 --max-hardness 10
  mineraldb filter --min-ri 1.7 --max-ri 1.8 --birefringent`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&flagFilterSystem, "system", "", "crystal system")
	filterCmd.Flags().Float64Var(&flagFilterMinHardness, "min-hardness", -1, "minimum Mohs hardness")
	filterCmd.Flags().Float64Var(&flagFilterMaxHardness, "max-hardness", -1, "maximum Mohs hardness")
	filterCmd.Flags().Float64Var(&flagFilterMinRI, "min-ri", -1, "minimum refractive index")
	filterCmd.Flags().Float64Var(&flagFilterMaxRI, "max-ri", -1, "maximum refractive index")
	filterCmd.Flags().BoolVar(&flagFilterBirefr, "birefringent", false, "only birefringent minerals")
	filterCmd.Flags().BoolVar(&flagFilterTwinned, "twinned", false, "only minerals with a twin law")
	filterCmd.Flags().StringVar(&flagFilterOrigin, "origin", "", "origin classification")
}

func runFilter(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		fail("filter", err)
	}
	defer store.Close()

	opts := types.FilterOptions{
		System:           flagFilterSystem,
		HasBirefringence: flagFilterBirefr,
		HasTwin:          flagFilterTwinned,
		Origin:           flagFilterOrigin,
	}
	opts.MinHardness = flagBound(cmd, "min-hardness", flagFilterMinHardness)
	opts.MaxHardness = flagBound(cmd, "max-hardness", flagFilterMaxHardness)
	opts.MinRI = flagBound(cmd, "min-ri", flagFilterMinRI)
	opts.MaxRI = flagBound(cmd, "max-ri", flagFilterMaxRI)

	results, err := store.FilterMinerals(opts)
	if err != nil {
		fail("filter minerals", err)
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
		fmt.Println("No minerals match the given criteria.")
		return nil
	}
	fmt.Printf("Matching Minerals (%d total):\n", len(results))
	for _, m := range results {
		fmt.Printf("  %-25s - %s (%s, hardness %s)\n", m.ID, m.Name, m.System, m.HardnessText)
	}
	return nil
}

// flagBound returns a pointer to the flag value when the flag was set on
// the command line, nil otherwise.
func flagBound(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
