package restclient

import (
	"fmt"
	"net/url"
	"strconv"
)

// EncodeQuery serializes a criteria mapping into a URL query string without
// the leading "?". Nested maps use bracket notation (a[b]=1), slices repeat
// the key, and keys are emitted in sorted order so output is deterministic.
// An empty mapping yields an empty string.
func EncodeQuery(criteria map[string]any) string {
	values := url.Values{}
	for k, v := range criteria {
		addQueryValue(values, k, v)
	}
	return values.Encode()
}

func addQueryValue(values url.Values, key string, v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, sub := range t {
			addQueryValue(values, key+"["+k+"]", sub)
		}
	case map[string]string:
		for k, sub := range t {
			addQueryValue(values, key+"["+k+"]", sub)
		}
	case []any:
		for _, e := range t {
			addQueryValue(values, key, e)
		}
	case []string:
		for _, e := range t {
			values.Add(key, e)
		}
	case []int:
		for _, e := range t {
			values.Add(key, strconv.Itoa(e))
		}
	case nil:
		values.Add(key, "")
	default:
		values.Add(key, queryValueString(t))
	}
}

func queryValueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
