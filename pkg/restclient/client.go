package restclient

import (
	"context"
	"net/http"
	"sync"
)

// Client is the public CRUD surface over a single endpoint. It holds its
// transport and its default request options and delegates all real work to
// its Executor; operations choose a verb, build a path, and forward the
// body and options.
type Client struct {
	transport Transport
	exec      Executor

	mu       sync.RWMutex
	defaults *RequestOptions
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithDefaults sets the client's default request options wholesale.
func WithDefaults(defaults *RequestOptions) Option {
	return func(c *Client) {
		c.defaults = defaults.Clone()
	}
}

// WithExecutor replaces the client's executor. Used by tests and by
// callers that need to intercept requests.
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		c.exec = exec
	}
}

// New creates a Client over the given transport. Unless overridden, the
// defaults announce JSON on both sides of the exchange.
func New(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		defaults: &RequestOptions{
			Headers: map[string]string{
				"Accept":       "application/json",
				"Content-Type": "application/json",
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.exec == nil {
		c.exec = &requestExecutor{
			transport: transport,
			defaults:  c.snapshotDefaults,
		}
	}
	return c
}

// Transport returns the transport this client is bound to.
func (c *Client) Transport() Transport {
	return c.transport
}

// SetDefaults replaces the client's default request options wholesale.
func (c *Client) SetDefaults(defaults *RequestOptions) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaults = defaults.Clone()
	return c
}

// Defaults returns a copy of the client's default request options.
func (c *Client) Defaults() *RequestOptions {
	return c.snapshotDefaults()
}

func (c *Client) snapshotDefaults() *RequestOptions {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaults.Clone()
}

// Find retrieves resources matching criteria. criteria may be a scalar id
// or a filter mapping serialized into the query string.
func (c *Client) Find(ctx context.Context, resource string, criteria any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodGet, BuildPath(resource, criteria, nil), nil, opts)
}

// FindOne retrieves a single resource by id, with an optional filter
// mapping appended as a query string.
func (c *Client) FindOne(ctx context.Context, resource string, id any, criteria any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodGet, BuildPath(resource, id, criteria), nil, opts)
}

// Post creates a resource. The path is the resource itself, unaugmented.
func (c *Client) Post(ctx context.Context, resource string, body any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodPost, resource, body, opts)
}

// Create is an alias of Post.
func (c *Client) Create(ctx context.Context, resource string, body any, opts *RequestOptions) (any, error) {
	return c.Post(ctx, resource, body, opts)
}

// Update replaces resources matching criteria.
func (c *Client) Update(ctx context.Context, resource string, criteria any, body any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodPut, BuildPath(resource, criteria, nil), body, opts)
}

// UpdateOne replaces a single resource by id.
func (c *Client) UpdateOne(ctx context.Context, resource string, id any, criteria any, body any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodPut, BuildPath(resource, id, criteria), body, opts)
}

// Patch partially updates resources matching criteria.
func (c *Client) Patch(ctx context.Context, resource string, criteria any, body any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodPatch, BuildPath(resource, criteria, nil), body, opts)
}

// PatchOne partially updates a single resource by id.
func (c *Client) PatchOne(ctx context.Context, resource string, id any, criteria any, body any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodPatch, BuildPath(resource, id, criteria), body, opts)
}

// Destroy deletes resources matching criteria. No body is sent.
func (c *Client) Destroy(ctx context.Context, resource string, criteria any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodDelete, BuildPath(resource, criteria, nil), nil, opts)
}

// DestroyOne deletes a single resource by id. No body is sent.
func (c *Client) DestroyOne(ctx context.Context, resource string, id any, criteria any, opts *RequestOptions) (any, error) {
	return c.exec.Execute(ctx, http.MethodDelete, BuildPath(resource, id, criteria), nil, opts)
}
