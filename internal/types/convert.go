package types

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToCamelCase converts underscore naming to camel case. Keys without an
// underscore are returned unchanged, so the conversion is idempotent.
func ToCamelCase(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	words := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// CamelizeKeys rewrites every map key reachable from v. Values other than
// maps and slices are returned as is.
func CamelizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[ToCamelCase(k)] = CamelizeKeys(val)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = CamelizeKeys(m)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CamelizeKeys(val)
		}
		return out
	default:
		return v
	}
}
