// Info command: aligned property block for one preset.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mineraldb/pkg/display"
)

var flagInfoProps string

// defaultInfoProps is the property block printed without --props: the
// crystallographic identity of the preset.
const defaultInfoProps = "name,cdl,system,point_group,chemistry,hardness,description"

var infoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show detailed info for a preset",
	Long: `Show the properties of one preset as an aligned block.

With --props the block narrows to a named property profile (basic,
physical, optical, gemological, crystal, full, fga, classification,
synthetic) or a comma-separated list of property keys.

Example:
  mineraldb info diamond
  mineraldb info ruby --props fga
  mineraldb info topaz --props name,hardness,cleavage`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&flagInfoProps, "props", "", "property group or comma-separated key list")
}

func runInfo(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, err := attachStore()
	if err != nil {
		fail("info", err)
	}
	defer store.Close()

	profile := flagInfoProps
	if profile == "" {
		profile = defaultInfoProps
	}

	props, err := display.InfoProperties(store, id, profile)
	if err != nil {
		if isNotFound(err) {
			fmt.Printf("Preset not found: %s\n", id)
			os.Exit(exitUserError)
		}
		fail("info", err)
	}

	if flagJSON {
		out := make(map[string]any, len(props))
		for _, p := range props {
			out[p.Key] = p.Value
		}
		printJSON(out)
		return nil
	}

	fmt.Printf("Preset: %s\n", id)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
	for _, p := range props {
		fmt.Fprintf(w, "  %s:\t%s\n", p.Label, p.Format())
	}
	w.Flush()
	return nil
}
