package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

func newPatchCmd() *cobra.Command {
	var bodyFile string
	var sets []string
	var queries []string
	var field string

	cmd := &cobra.Command{
		Use:   "patch RESOURCE [ID] [flags]",
		Short: "Partially update resources (PATCH)",
		Long: `Partially update a resource, or all resources matching criteria.
The body is built from --set flags, a body file, or both; --set values are
applied on top of the file body.

Examples:
  # Patch a single field
  restpoint patch users 5 --set name=kim

  # Nested fields and JSON values
  restpoint patch users 5 --set address.city=oslo --set active=true

  # Patch from a file
  restpoint patch users 5 -f patch.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient()
			if err != nil {
				return err
			}
			body, err := buildPatchBody(bodyFile, sets)
			if err != nil {
				return err
			}
			criteria, err := parseCriteria(queries)
			if err != nil {
				return err
			}

			var result any
			if len(args) == 2 {
				result, err = client.PatchOne(cmd.Context(), args[0], args[1], criteria, body, nil)
			} else {
				result, err = client.Patch(cmd.Context(), args[0], criteriaOrNil(criteria), body, nil)
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result, field)
		},
	}

	cmd.Flags().StringVarP(&bodyFile, "file", "f", "", "File containing the base body, - for stdin")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field to set as path=value (repeatable, gjson path syntax)")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "Filter criteria as key=value (repeatable)")
	cmd.Flags().StringVar(&field, "field", "", "Print only this field of the result (gjson path)")
	return cmd
}

// buildPatchBody assembles the PATCH body: the file body (or an empty
// object) with each --set path=value applied on top. Values that parse as
// JSON keep their type; everything else is set as a string.
func buildPatchBody(bodyFile string, sets []string) (string, error) {
	body := "{}"
	if bodyFile != "" {
		var err error
		body, err = readBody(bodyFile)
		if err != nil {
			return "", err
		}
	}
	if bodyFile == "" && len(sets) == 0 {
		return "", fmt.Errorf("nothing to patch: pass --set or --file")
	}

	for _, set := range sets {
		path, value, found := strings.Cut(set, "=")
		if !found || path == "" {
			return "", fmt.Errorf("invalid set %q, expected path=value", set)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		updated, err := sjson.Set(body, path, parsed)
		if err != nil {
			return "", fmt.Errorf("applying %q: %w", set, err)
		}
		body = updated
	}
	return body, nil
}
