package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-restpoint/restpoint/pkg/restclient"
)

func TestConfigure(t *testing.T) {
	t.Run("AppliesEndpointsInOrder", func(t *testing.T) {
		r := New()
		err := r.Configure(&Config{
			DefaultBaseURL: "http://base.test",
			Endpoints: []EndpointConfig{
				{Name: "a", Endpoint: "http://a.test"},
				{Name: "b"},
				{Name: "a", Endpoint: "http://a2.test"}, // later entry wins
			},
		})
		require.NoError(t, err)
		assert.True(t, r.EndpointExists("a"))
		assert.True(t, r.EndpointExists("b"))
	})

	t.Run("PerEntryDefaultFlag", func(t *testing.T) {
		r := New()
		err := r.Configure(&Config{
			Endpoints: []EndpointConfig{
				{Name: "a", Endpoint: "http://a.test"},
				{Name: "b", Endpoint: "http://b.test", Default: true},
			},
		})
		require.NoError(t, err)
		assert.True(t, r.IsDefault("b"))
	})

	t.Run("TopLevelDefaultWinsOverEntryFlag", func(t *testing.T) {
		r := New()
		err := r.Configure(&Config{
			DefaultEndpoint: "a",
			Endpoints: []EndpointConfig{
				{Name: "a", Endpoint: "http://a.test"},
				{Name: "b", Endpoint: "http://b.test", Default: true},
			},
		})
		require.NoError(t, err)
		assert.True(t, r.IsDefault("a"))
	})

	t.Run("UnregisteredTopLevelDefaultResetsToNil", func(t *testing.T) {
		// The top-level override is applied after the loop, so an unknown
		// name wins over the per-entry flag and leaves no default at all.
		r := New()
		err := r.Configure(&Config{
			DefaultBaseURL:  "http://a.test",
			DefaultEndpoint: "y",
			Endpoints: []EndpointConfig{
				{Name: "x", Default: true},
			},
		})
		require.NoError(t, err)
		assert.Nil(t, r.GetEndpoint())
	})

	t.Run("EndpointDefaults", func(t *testing.T) {
		r := New()
		err := r.Configure(&Config{
			Endpoints: []EndpointConfig{
				{
					Name:     "a",
					Endpoint: "http://a.test",
					Config: &restclient.RequestOptions{
						Headers: map[string]string{"X-Key": "k"},
					},
				},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "k", r.GetEndpoint("a").Defaults().Headers["X-Key"])
	})

	t.Run("MissingNameFailsValidation", func(t *testing.T) {
		r := New()
		err := r.Configure(&Config{
			Endpoints: []EndpointConfig{{Endpoint: "http://a.test"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("NilConfig", func(t *testing.T) {
		err := New().Configure(nil)
		assert.ErrorIs(t, err, ErrConfig)
	})
}

func TestConfigureMap(t *testing.T) {
	r := New()
	err := r.ConfigureMap(map[string]any{
		"defaultBaseUrl": "http://base.test",
		"endpoints": []map[string]any{
			{"name": "a", "default": true},
			{"name": "b", "endpoint": "http://b.test"},
		},
	})
	require.NoError(t, err)
	assert.True(t, r.EndpointExists("a"))
	assert.True(t, r.EndpointExists("b"))
	assert.True(t, r.IsDefault("a"))
}

func TestLoadFile(t *testing.T) {
	writeFile := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, "endpoints.toml", `
default_base_url = "http://base.test"
default_endpoint = "a"

[[endpoints]]
name = "a"
endpoint = "http://a.test"

[[endpoints]]
name = "b"
`)
		r := New()
		require.NoError(t, r.LoadFile(path))
		assert.True(t, r.EndpointExists("a"))
		assert.True(t, r.EndpointExists("b"))
		assert.True(t, r.IsDefault("a"))
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeFile(t, "endpoints.yaml", `
defaultBaseUrl: http://base.test
defaultEndpoint: a
endpoints:
  - name: a
    endpoint: http://a.test
  - name: b
`)
		r := New()
		require.NoError(t, r.LoadFile(path))
		assert.True(t, r.IsDefault("a"))
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeFile(t, "endpoints.json", `{
  "defaultBaseUrl": "http://base.test",
  "endpoints": [{"name": "a", "default": true}]
}`)
		r := New()
		require.NoError(t, r.LoadFile(path))
		assert.True(t, r.IsDefault("a"))
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		path := writeFile(t, "endpoints.ini", "whatever")
		err := New().LoadFile(path)
		assert.ErrorIs(t, err, ErrConfigFile)
	})

	t.Run("MissingFile", func(t *testing.T) {
		err := New().LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, ErrConfigFile)
	})

	t.Run("MalformedTOML", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[[endpoints]\nname=")
		err := New().LoadFile(path)
		assert.ErrorIs(t, err, ErrConfigFile)
	})
}
