package restclient

import (
	"context"
	"strings"
)

// Executor turns a verb, path, body, and option overrides into a single
// transport call with the client's defaults applied. It is the one seam
// between the CRUD surface and the wire.
type Executor interface {
	Execute(ctx context.Context, method string, path string, body any, opts *RequestOptions) (any, error)
}

// requestExecutor is the concrete Executor used by Client. Defaults are
// read at call time and merged per call, never mutated, so concurrent
// requests do not interfere with each other's effective options.
type requestExecutor struct {
	transport Transport
	defaults  func() *RequestOptions
}

// Execute merges options in increasing precedence (client defaults, then
// per-call options, then the forced method and body), serializes the body
// according to the effective content type, and normalizes the outcome:
// any status in [200, 400) is a success whose JSON body is decoded (an
// unparsable or empty body downgrades to a nil result), any other status
// yields an *HTTPError carrying the raw response, and transport failures
// yield a *TransportError wrapping the cause.
func (e *requestExecutor) Execute(ctx context.Context, method string, path string, body any, opts *RequestOptions) (any, error) {
	merged := mergeOptions(e.defaults(), opts)
	merged.Method = method
	merged.Body = body

	if body != nil {
		serialized, err := serializeBody(body, merged.contentType())
		if err != nil {
			return nil, err
		}
		merged.Body = serialized
	}

	resp, err := e.transport.Do(ctx, path, merged)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		var result any
		if err := resp.DecodeJSON(&result); err != nil {
			// 204s and other empty or non-JSON success bodies resolve to nil.
			return nil, nil
		}
		return result, nil
	}
	return nil, &HTTPError{Response: resp}
}

// serializeBody converts a structured body into its wire form. Strings and
// byte slices pass through untouched. Structured values become JSON when
// the content type is application/json (case-insensitive), and a URL
// query-string encoding otherwise.
func serializeBody(body any, contentType string) (any, error) {
	switch body.(type) {
	case string, []byte:
		return body, nil
	}
	if contentType == "" {
		return body, nil
	}
	if strings.Contains(strings.ToLower(contentType), "application/json") {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, ErrBodyEncode.Err(err)
		}
		return string(data), nil
	}
	m, ok := filterMap(body)
	if !ok {
		return nil, ErrBodyEncode.Msg("body is not a mapping and content type is not application/json")
	}
	return EncodeQuery(m), nil
}
