package cli

import (
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	var bodyFile string
	var queries []string
	var field string

	cmd := &cobra.Command{
		Use:   "update RESOURCE [ID] -f FILE [flags]",
		Short: "Replace resources with a JSON body (PUT)",
		Long: `Replace a resource, or all resources matching criteria, with the
given JSON body.

Examples:
  # Replace one user
  restpoint update users 5 -f user.json

  # Replace matching resources
  restpoint update users -q role=guest -f user.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient()
			if err != nil {
				return err
			}
			body, err := readBody(bodyFile)
			if err != nil {
				return err
			}
			criteria, err := parseCriteria(queries)
			if err != nil {
				return err
			}

			var result any
			if len(args) == 2 {
				result, err = client.UpdateOne(cmd.Context(), args[0], args[1], criteria, body, nil)
			} else {
				result, err = client.Update(cmd.Context(), args[0], criteriaOrNil(criteria), body, nil)
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result, field)
		},
	}

	cmd.Flags().StringVarP(&bodyFile, "file", "f", "", "File containing the request body, - for stdin")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "Filter criteria as key=value (repeatable)")
	cmd.Flags().StringVar(&field, "field", "", "Print only this field of the result (gjson path)")
	cmd.MarkFlagRequired("file")
	return cmd
}
