// Package registry stores named, independently configured REST endpoints.
// Each endpoint binds a fresh transport and a restclient.Client; a current
// default endpoint serves lookups made without a name. Registration is
// expected to happen during application setup, before request traffic.
package registry

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-restpoint/restpoint/pkg/restclient"
)

// ConfigureFunc customizes the fresh transport created for an endpoint
// registered with a callback instead of a base URL.
type ConfigureFunc func(*restclient.HTTPTransport)

// Registry maps endpoint names to configured clients. Re-registration
// under an existing name overwrites the prior entry. The zero value is not
// usable; construct with New.
type Registry struct {
	mu             sync.RWMutex
	endpoints      map[string]*restclient.Client
	defaultClient  *restclient.Client
	defaultBaseURL string
	logger         zerolog.Logger
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithLogger sets the logger passed to transports created by the registry.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty registry. The registry is owned by the application's
// setup routine and passed explicitly; there is no ambient singleton.
func New(opts ...RegistryOption) *Registry {
	r := &Registry{
		endpoints: map[string]*restclient.Client{},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterEndpoint creates a client bound to a fresh transport and stores
// it under name, overwriting any prior entry. source selects how the
// transport is configured: nil uses the registry-wide default base URL (if
// set), a string is used as the base URL, and a ConfigureFunc (or plain
// func(*restclient.HTTPTransport)) is applied to the fresh transport. When
// defaults is non-nil it replaces the client's default request options
// wholesale. Returns the registry for chaining.
func (r *Registry) RegisterEndpoint(name string, source any, defaults *restclient.RequestOptions) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	transport := restclient.NewHTTPTransport(r.defaultBaseURL, restclient.WithTransportLogger(r.logger))
	switch s := source.(type) {
	case nil:
	case string:
		transport.SetBaseURL(s)
	case ConfigureFunc:
		s(transport)
	case func(*restclient.HTTPTransport):
		s(transport)
	default:
		r.logger.Warn().Str("endpoint", name).Msg("unsupported endpoint source, using default base URL")
	}

	client := restclient.New(transport)
	if defaults != nil {
		client.SetDefaults(defaults)
	}
	r.endpoints[name] = client
	return r
}

// GetEndpoint returns the client registered under name, or nil if none
// exists. With no name it returns the current default endpoint, which may
// also be nil. Unknown names never cause an error.
func (r *Registry) GetEndpoint(name ...string) *restclient.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(name) == 0 || name[0] == "" {
		return r.defaultClient
	}
	return r.endpoints[name[0]]
}

// EndpointExists reports whether an endpoint is registered under name.
func (r *Registry) EndpointExists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.endpoints[name]
	return ok
}

// SetDefaultEndpoint resolves name and makes it the default endpoint. An
// unregistered name silently resets the default to nil.
func (r *Registry) SetDefaultEndpoint(name string) *Registry {
	client := r.GetEndpoint(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultClient = client
	return r
}

// SetDefaultBaseURL sets the base URL applied to endpoints registered
// without an explicit URL or configure function.
func (r *Registry) SetDefaultBaseURL(url string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultBaseURL = url
	return r
}

// EndpointNames returns the names of all registered endpoints.
func (r *Registry) EndpointNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	return names
}

// IsDefault reports whether the endpoint registered under name is the
// current default endpoint.
func (r *Registry) IsDefault(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.endpoints[name]
	return ok && client != nil && client == r.defaultClient
}

// ConfigureWith invokes fn once with the live registry for imperative
// configuration. Returns the registry for chaining.
func (r *Registry) ConfigureWith(fn func(*Registry)) *Registry {
	fn(r)
	return r
}

// Resolver is a lazy lookup token for a named endpoint. The name is
// resolved against the registry on every Client call, never cached, so a
// re-registration is visible through existing resolvers.
type Resolver struct {
	registry *Registry
	name     string
}

// Resolver returns a lookup token for name. An empty name resolves to the
// default endpoint.
func (r *Registry) Resolver(name string) *Resolver {
	return &Resolver{registry: r, name: name}
}

// Client resolves the endpoint now. Returns nil when the endpoint is not
// registered; callers must check before use.
func (res *Resolver) Client() *restclient.Client {
	if res.name == "" {
		return res.registry.GetEndpoint()
	}
	return res.registry.GetEndpoint(res.name)
}
