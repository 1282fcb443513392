// Package cli implements the restpoint command line interface. Commands
// load an endpoint registry from a configuration file and issue CRUD
// requests against a named (or default) endpoint.
package cli

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-restpoint/restpoint/internal/common/logtrace"
)

var (
	// Global flags
	configFile   string
	endpointName string
	debugLog     bool
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "restpoint [command] [flags]",
	Short: "restpoint - a command line REST resource client",
	Long: `restpoint issues CRUD requests against REST endpoints declared in a
configuration file (TOML, YAML, or JSON).

Examples:
  # List users on the default endpoint
  restpoint get users

  # Fetch one user by id from a named endpoint
  restpoint get users 5 -e billing

  # Filter with query criteria
  restpoint get users -q active=true -q role=admin

  # Create a resource from a file
  restpoint create users -f user.json

  # Patch a single field
  restpoint patch users 5 --set name=kim

  # Delete a resource
  restpoint delete users 5`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logtrace.SetDebug(debugLog)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to endpoint configuration file (default $RESTPOINT_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&endpointName, "endpoint", "e", "", "Name of the endpoint to use (default endpoint if unset)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newPatchCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newEndpointsCmd())
}

// Execute runs the root command. Called once from main.
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		errorLabel.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
