package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/go-restpoint/restpoint/pkg/registry"
	"github.com/go-restpoint/restpoint/pkg/restclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// loadRegistry builds the endpoint registry from the configuration file
// named by the --config flag or the RESTPOINT_CONFIG environment variable.
// A .env file in the working directory is honored when present.
func loadRegistry() (*registry.Registry, error) {
	godotenv.Load()

	path := configFile
	if path == "" {
		path = os.Getenv("RESTPOINT_CONFIG")
	}
	if path == "" {
		return nil, fmt.Errorf("no configuration file: pass --config or set RESTPOINT_CONFIG")
	}

	r := registry.New()
	if err := r.LoadFile(path); err != nil {
		return nil, err
	}
	return r, nil
}

// resolveClient returns the client selected by the --endpoint flag, or the
// registry's default endpoint when the flag is unset.
func resolveClient() (*restclient.Client, error) {
	r, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	client := r.Resolver(endpointName).Client()
	if client == nil {
		if endpointName == "" {
			return nil, fmt.Errorf("no default endpoint configured")
		}
		return nil, fmt.Errorf("unknown endpoint %q", endpointName)
	}
	return client, nil
}

// parseCriteria turns repeated key=value flags into a criteria mapping.
func parseCriteria(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	criteria := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid criteria %q, expected key=value", pair)
		}
		criteria[key] = value
	}
	return criteria, nil
}

// readBody reads a request body from a file, or from stdin when path is "-".
func readBody(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading body file: %w", err)
	}
	return string(data), nil
}

// printResult writes the result as indented JSON. When field is set, only
// that path of the document is printed.
func printResult(w io.Writer, result any, field string) error {
	if result == nil {
		okLabel.Fprintln(w, "OK")
		return nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting result: %w", err)
	}
	if field != "" {
		value := gjson.GetBytes(data, field)
		if !value.Exists() {
			return fmt.Errorf("field %q not present in result", field)
		}
		fmt.Fprintln(w, value.String())
		return nil
	}
	fmt.Fprintln(w, string(data))
	return nil
}
