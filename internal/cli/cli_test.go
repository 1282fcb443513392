package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes a CLI invocation against a fresh root command and
// returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// withTestEndpoint starts a fake REST API, writes a config file pointing at
// it, and wires the global --config flag for the duration of the test.
func withTestEndpoint(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	config := fmt.Sprintf("endpoints:\n  - name: test\n    endpoint: %s\n    default: true\n", srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	prevConfig, prevEndpoint := configFile, endpointName
	configFile, endpointName = path, ""
	t.Cleanup(func() {
		configFile, endpointName = prevConfig, prevEndpoint
	})
}

func TestGetCommand(t *testing.T) {
	var gotURI string
	r := chi.NewRouter()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotURI = req.RequestURI
		w.Write([]byte(`{"id":5,"name":"kim"}`))
	})
	withTestEndpoint(t, r)

	t.Run("ByID", func(t *testing.T) {
		out, err := runCommand(t, "get", "users", "5")
		require.NoError(t, err)
		assert.Equal(t, "/users/5", gotURI)
		assert.Contains(t, out, `"name": "kim"`)
	})

	t.Run("WithCriteria", func(t *testing.T) {
		out, err := runCommand(t, "get", "users", "5", "-q", "verbose=true")
		require.NoError(t, err)
		assert.Equal(t, "/users/5?verbose=true", gotURI)
		assert.NotEmpty(t, out)
	})

	t.Run("FieldExtraction", func(t *testing.T) {
		out, err := runCommand(t, "get", "users", "5", "--field", "name")
		require.NoError(t, err)
		assert.Equal(t, "kim\n", out)
	})
}

func TestCreateCommand(t *testing.T) {
	var gotBody string
	r := chi.NewRouter()
	r.Post("/users", func(w http.ResponseWriter, req *http.Request) {
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9}`))
	})
	withTestEndpoint(t, r)

	bodyFile := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(bodyFile, []byte(`{"name":"kim"}`), 0o644))

	out, err := runCommand(t, "create", "users", "-f", bodyFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"kim"}`, gotBody)
	assert.Contains(t, out, `"id": 9`)
}

func TestPatchCommand(t *testing.T) {
	var gotBody string
	r := chi.NewRouter()
	r.Patch("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		w.Write([]byte(`{}`))
	})
	withTestEndpoint(t, r)

	_, err := runCommand(t, "patch", "users", "5", "--set", "name=kim", "--set", "active=true")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"kim","active":true}`, gotBody)
}

func TestDeleteCommand(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	withTestEndpoint(t, r)

	out, err := runCommand(t, "delete", "users", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestEndpointsCommand(t *testing.T) {
	withTestEndpoint(t, chi.NewRouter())

	out, err := runCommand(t, "endpoints")
	require.NoError(t, err)
	assert.Contains(t, out, "test (default)")
}

func TestBuildPatchBody(t *testing.T) {
	t.Run("SetsOnly", func(t *testing.T) {
		body, err := buildPatchBody("", []string{"name=kim", "age=30"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"kim","age":30}`, body)
	})

	t.Run("NestedPath", func(t *testing.T) {
		body, err := buildPatchBody("", []string{"address.city=oslo"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"address":{"city":"oslo"}}`, body)
	})

	t.Run("NothingToPatch", func(t *testing.T) {
		_, err := buildPatchBody("", nil)
		assert.Error(t, err)
	})

	t.Run("InvalidSet", func(t *testing.T) {
		_, err := buildPatchBody("", []string{"noequals"})
		assert.Error(t, err)
	})
}

func TestParseCriteria(t *testing.T) {
	t.Run("Pairs", func(t *testing.T) {
		criteria, err := parseCriteria([]string{"a=1", "b=x"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "1", "b": "x"}, criteria)
	})

	t.Run("Empty", func(t *testing.T) {
		criteria, err := parseCriteria(nil)
		require.NoError(t, err)
		assert.Nil(t, criteria)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := parseCriteria([]string{"novalue"})
		assert.Error(t, err)
	})
}
