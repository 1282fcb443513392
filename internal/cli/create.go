package cli

import (
	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	var bodyFile string
	var field string

	cmd := &cobra.Command{
		Use:   "create RESOURCE -f FILE [flags]",
		Short: "Create a resource from a JSON body",
		Long: `Create a resource by POSTing a JSON body to the resource path.

Examples:
  # Create from a file
  restpoint create users -f user.json

  # Create from stdin
  cat user.json | restpoint create users -f -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient()
			if err != nil {
				return err
			}
			body, err := readBody(bodyFile)
			if err != nil {
				return err
			}
			result, err := client.Create(cmd.Context(), args[0], body, nil)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result, field)
		},
	}

	cmd.Flags().StringVarP(&bodyFile, "file", "f", "", "File containing the request body, - for stdin")
	cmd.Flags().StringVar(&field, "field", "", "Print only this field of the result (gjson path)")
	cmd.MarkFlagRequired("file")
	return cmd
}
