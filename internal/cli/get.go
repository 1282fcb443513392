package cli

import (
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var queries []string
	var field string

	cmd := &cobra.Command{
		Use:   "get RESOURCE [ID] [flags]",
		Short: "Retrieve resources, optionally by id or filter criteria",
		Long: `Retrieve resources from the selected endpoint.

Examples:
  # List all users
  restpoint get users

  # One user by id
  restpoint get users 5

  # Filtered list
  restpoint get users -q active=true

  # One user, extra criteria, single field of the result
  restpoint get users 5 -q verbose=true --field name`,
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
				result, err = client.FindOne(cmd.Context(), args[0], args[1], criteria, nil)
			} else {
				result, err = client.Find(cmd.Context(), args[0], criteriaOrNil(criteria), nil)
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result, field)
		},
	}

	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "Filter criteria as key=value (repeatable)")
	cmd.Flags().StringVar(&field, "field", "", "Print only this field of the result (gjson path)")
	return cmd
}

// criteriaOrNil avoids handing a typed-nil map to the path builder.
func criteriaOrNil(criteria map[string]any) any {
	if criteria == nil {
		return nil
	}
	return criteria
}
