package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the endpoints declared in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegistry()
			if err != nil {
				return err
			}
			names := r.EndpointNames()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no endpoints configured")
				return nil
			}
			sort.Strings(names)
			for _, name := range names {
				if r.IsDefault(name) {
					okLabel.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
			return nil
		},
	}
}
