package devutil

import (
	"encoding/json"
	"sort"
)

// Pick round-trips v through JSON and keeps only the requested keys.
// Handy for printing a few fields of a provider record.
func Pick(v any, keys ...string) map[string]any {
	m := toMap(v)

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if val, ok := m[k]; ok {
			out[k] = val
		}
	}
	return out
}

// PickAvailable is Pick without the entries equal to "" or sentinel.
func PickAvailable(v any, sentinel string, keys ...string) map[string]any {
	out := Pick(v, keys...)
	for k, val := range out {
		if s, ok := val.(string); ok && (s == "" || s == sentinel) {
			delete(out, k)
		}
	}
	return out
}

// SortedKeys gives a stable print order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}
