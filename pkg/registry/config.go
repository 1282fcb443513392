package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-restpoint/restpoint/internal/common/apperrors"
	"github.com/go-restpoint/restpoint/pkg/restclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Configuration errors. Derived errors match these via errors.Is.
var (
	// ErrConfig is the root of all configuration failures.
	ErrConfig = apperrors.New("invalid registry configuration")

	// ErrConfigFile indicates the configuration file could not be read or
	// parsed.
	ErrConfigFile = ErrConfig.New("cannot load configuration file")
)

var validate = validator.New()

// EndpointConfig declares a single endpoint in a bulk configuration.
type EndpointConfig struct {
	// Name is the unique key the endpoint is registered under.
	Name string `json:"name" yaml:"name" toml:"name" mapstructure:"name" validate:"required"`

	// Endpoint is the base URL. Empty means the registry-wide default base
	// URL applies.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" toml:"endpoint" mapstructure:"endpoint"`

	// Config replaces the endpoint's default request options wholesale.
	Config *restclient.RequestOptions `json:"config,omitempty" yaml:"config,omitempty" toml:"config" mapstructure:"config"`

	// Default marks this endpoint as the registry default.
	Default bool `json:"default,omitempty" yaml:"default,omitempty" toml:"default" mapstructure:"default"`
}

// Config is the bulk declarative configuration applied at setup time.
type Config struct {
	DefaultBaseURL  string           `json:"defaultBaseUrl,omitempty" yaml:"defaultBaseUrl,omitempty" toml:"default_base_url" mapstructure:"defaultBaseUrl"`
	DefaultEndpoint string           `json:"defaultEndpoint,omitempty" yaml:"defaultEndpoint,omitempty" toml:"default_endpoint" mapstructure:"defaultEndpoint"`
	Endpoints       []EndpointConfig `json:"endpoints" yaml:"endpoints" toml:"endpoints" mapstructure:"endpoints" validate:"dive"`
}

// Configure validates cfg and applies it: the default base URL first, then
// each endpoint in declaration order (later entries overwrite earlier
// same-named ones, per-entry default flags applied as they appear), and
// the top-level DefaultEndpoint last, so its value wins over any per-entry
// flag. An unregistered top-level name resets the default to nil.
func (r *Registry) Configure(cfg *Config) error {
	if cfg == nil {
		return ErrConfig.Msg("configuration is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return ErrConfig.Err(err)
	}

	if cfg.DefaultBaseURL != "" {
		r.SetDefaultBaseURL(cfg.DefaultBaseURL)
	}
	for _, e := range cfg.Endpoints {
		var source any
		if e.Endpoint != "" {
			source = e.Endpoint
		}
		r.RegisterEndpoint(e.Name, source, e.Config)
		if e.Default {
			r.SetDefaultEndpoint(e.Name)
		}
	}
	if cfg.DefaultEndpoint != "" {
		r.SetDefaultEndpoint(cfg.DefaultEndpoint)
	}
	return nil
}

// ConfigureMap decodes a generic map form of the bulk configuration and
// applies it. Useful when the configuration arrives pre-parsed, e.g. from
// an embedded document.
func (r *Registry) ConfigureMap(m map[string]any) error {
	var cfg Config
	if err := mapstructure.Decode(m, &cfg); err != nil {
		return ErrConfig.Err(err)
	}
	return r.Configure(&cfg)
}

// LoadFile reads a bulk configuration from path and applies it. The format
// is chosen by extension: .toml, .yaml/.yml, or .json.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ErrConfigFile.Err(pkgerrors.Wrap(err, "reading config file"))
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return ErrConfigFile.Msg("unsupported config file extension: " + filepath.Ext(path))
	}
	if err != nil {
		return ErrConfigFile.Err(pkgerrors.Wrap(err, "parsing config file"))
	}
	return r.Configure(&cfg)
}
