package cli

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var queries []string

	cmd := &cobra.Command{
		Use:   "delete RESOURCE [ID] [flags]",
		Short: "Delete resources by id or filter criteria",
		Long: `Delete a resource, or all resources matching criteria.

Examples:
  # Delete one user
  restpoint delete users 5

  # Delete matching resources
  restpoint delete sessions -q expired=true`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient()
			if err != nil {
				return err
			}
			criteria, err := parseCriteria(queries)
			if err != nil {
				return err
			}

			var result any
			if len(args) == 2 {
				result, err = client.DestroyOne(cmd.Context(), args[0], args[1], criteria, nil)
			} else {
				result, err = client.Destroy(cmd.Context(), args[0], criteriaOrNil(criteria), nil)
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result, "")
		},
	}

	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "Filter criteria as key=value (repeatable)")
	return cmd
}
