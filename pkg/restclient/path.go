// Package restclient implements a configurable REST resource client. A
// Client wraps a Transport bound to a base URL and exposes uniform CRUD
// operations (Find, Create, Update, Patch, Destroy and their id-qualified
// variants) that build request paths from resource names and criteria and
// serialize request bodies according to the effective content type.
package restclient

import (
	"strconv"
	"strings"
)

// BuildPath resolves the request path for a CRUD call. idOrCriteria may be
// a scalar identifier (string or number, appended as a path segment) or a
// criteria mapping. When idOrCriteria is a scalar, criteria holds the
// filter mapping; otherwise idOrCriteria itself is treated as the filter
// and criteria is ignored. Filter mappings are serialized into a query
// string appended after "?". A trailing slash on resource is preserved
// after the id segment.
//
// A scalar filter value is appended as an extra path segment followed by a
// trailing slash. That behavior, separator and all, is kept bug-compatible
// with existing consumers; see the tests for the exact shape.
func BuildPath(resource string, idOrCriteria any, criteria any) string {
	hasTrailingSlash := strings.HasSuffix(resource, "/")

	p := resource
	filter := idOrCriteria
	if id, ok := scalarString(idOrCriteria); ok {
		p = joinSlash(resource, id)
		if hasTrailingSlash {
			p += "/"
		}
		filter = criteria
	}

	if m, ok := filterMap(filter); ok {
		return p + "?" + EncodeQuery(m)
	}
	if s, ok := scalarString(filter); ok && truthyScalar(filter, s) {
		if !hasTrailingSlash {
			p += "/"
		}
		return p + s + "/"
	}
	return p
}

// joinSlash joins two path fragments with exactly one slash between them.
func joinSlash(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return strings.TrimSuffix(a, "/") + "/" + strings.TrimPrefix(b, "/")
}

// scalarString reports whether v is a scalar identifier (string or number)
// and returns its path-segment form. Zero is a valid identifier.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int:
		return strconv.Itoa(t), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(toInt64(t), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(toUint64(t), 10), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

// truthyScalar reports whether a scalar filter value should be appended as
// a fallback path segment. Empty strings and numeric zero are skipped.
func truthyScalar(v any, s string) bool {
	if str, ok := v.(string); ok {
		return str != ""
	}
	return s != "0"
}

// filterMap normalizes a filter value into a map. A nil or non-map value
// yields ok=false; an empty but non-nil map is a valid (empty) filter.
func filterMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return nil, false
		}
		return t, true
	case map[string]string:
		if t == nil {
			return nil, false
		}
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = val
		}
		return m, true
	}
	return nil, false
}

func toInt64(v any) int64 {
	switch t := v.(type) {
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	}
	return 0
}

func toUint64(v any) uint64 {
	switch t := v.(type) {
	case uint:
		return uint64(t)
	case uint8:
		return uint64(t)
	case uint16:
		return uint64(t)
	case uint32:
		return uint64(t)
	case uint64:
		return t
	}
	return 0
}
