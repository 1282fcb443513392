package restclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is the normalized result of a transport call: the status code,
// response headers, and the raw body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// DecodeJSON parses the response body as JSON into v. Fails when the body
// is empty or not valid JSON.
func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Transport issues a single HTTP request for the client. Implementations
// are constructed with a base URL and default headers; path is relative to
// that base. A non-nil error means the request never produced a response.
type Transport interface {
	Do(ctx context.Context, path string, opts *RequestOptions) (*Response, error)
}

// HTTPTransport is the concrete Transport over net/http.
type HTTPTransport struct {
	baseURL string
	headers map[string]string
	client  *http.Client
	logger  zerolog.Logger
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		t.client = client
	}
}

// WithDefaultHeader sets a header applied to every request unless the
// per-request options override it.
func WithDefaultHeader(key, value string) TransportOption {
	return func(t *HTTPTransport) {
		t.headers[key] = value
	}
}

// WithTransportLogger enables structured debug logging of requests.
func WithTransportLogger(logger zerolog.Logger) TransportOption {
	return func(t *HTTPTransport) {
		t.logger = logger
	}
}

// NewHTTPTransport creates a transport bound to baseURL. An empty baseURL
// means paths are used as full URLs.
func NewHTTPTransport(baseURL string, opts ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		baseURL: baseURL,
		headers: map[string]string{},
		client:  &http.Client{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BaseURL returns the base URL this transport is bound to.
func (t *HTTPTransport) BaseURL() string {
	return t.baseURL
}

// SetBaseURL rebinds the transport to a different base URL.
func (t *HTTPTransport) SetBaseURL(baseURL string) {
	t.baseURL = baseURL
}

// SetDefaultHeader sets a header applied to every request.
func (t *HTTPTransport) SetDefaultHeader(key, value string) {
	t.headers[key] = value
}

// Do issues the request and reads the full response body. The path is
// joined to the base URL verbatim so that query strings and significant
// trailing slashes survive; only the slash between base and path is
// normalized.
func (t *HTTPTransport) Do(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	fullURL := joinSlash(t.baseURL, path)

	var bodyReader io.Reader
	if opts.Body != nil {
		switch b := opts.Body.(type) {
		case string:
			bodyReader = strings.NewReader(b)
		case []byte:
			bodyReader = strings.NewReader(string(b))
		default:
			data, err := json.Marshal(b)
			if err != nil {
				return nil, err
			}
			bodyReader = strings.NewReader(string(data))
		}
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, fullURL, bodyReader)
	if err != nil {
		return nil, err
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	client := t.client
	if opts.Timeout != 0 {
		c := *t.client
		c.Timeout = opts.Timeout
		client = &c
	}

	requestID := uuid.NewString()
	start := time.Now()
	t.logger.Debug().
		Str("request_id", requestID).
		Str("method", opts.Method).
		Str("url", fullURL).
		Msg("sending request")

	resp, err := client.Do(req)
	if err != nil {
		t.logger.Debug().
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("received response")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
