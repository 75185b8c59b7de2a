package search

import (
	"maps"
	"sort"
)

// Configuration is a set of named toggles read by a search. Values that are
// absent or not booleans fall back to the caller's default.
type Configuration map[string]any

// Bool returns the toggle stored under key, or def when it is missing or has
// the wrong type.
func (c Configuration) Bool(key string, def bool) bool {
	if c == nil {
		return def
	}
	v, ok := c[key].(bool)
	if !ok {
		return def
	}
	return v
}

// Clone returns a shallow copy that shares nothing with c.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return Configuration{}
	}
	return maps.Clone(c)
}

// Keys returns the configured keys in sorted order.
func (c Configuration) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
