package restclient

import "time"

// RequestOptions carries the per-request settings merged into every
// outgoing call: headers, the HTTP method, the (possibly serialized) body,
// and transport-level overrides. A Client owns one RequestOptions value as
// its defaults; callers may supply another per call.
type RequestOptions struct {
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty" toml:"headers" mapstructure:"headers"`
	Method  string            `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
	Body    any               `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
	Timeout time.Duration     `json:"timeout,omitempty" yaml:"timeout,omitempty" toml:"timeout" mapstructure:"timeout"`
}

// Clone returns a deep copy. A nil receiver yields an empty options value
// with a non-nil header map.
func (o *RequestOptions) Clone() *RequestOptions {
	cp := &RequestOptions{Headers: map[string]string{}}
	if o == nil {
		return cp
	}
	for k, v := range o.Headers {
		cp.Headers[k] = v
	}
	cp.Method = o.Method
	cp.Body = o.Body
	cp.Timeout = o.Timeout
	return cp
}

// mergeOptions layers option values in increasing precedence: later layers
// override earlier ones. Headers merge key-wise; scalar fields are replaced
// when the later layer sets them. The result always has a non-nil header
// map and shares no state with any input.
func mergeOptions(layers ...*RequestOptions) *RequestOptions {
	merged := &RequestOptions{Headers: map[string]string{}}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		for k, v := range layer.Headers {
			merged.Headers[k] = v
		}
		if layer.Method != "" {
			merged.Method = layer.Method
		}
		if layer.Body != nil {
			merged.Body = layer.Body
		}
		if layer.Timeout != 0 {
			merged.Timeout = layer.Timeout
		}
	}
	return merged
}

// contentType resolves the effective content type from merged headers,
// checking the canonical key first and the lowercase variant as a fallback.
func (o *RequestOptions) contentType() string {
	if ct, ok := o.Headers["Content-Type"]; ok {
		return ct
	}
	return o.Headers["content-type"]
}
