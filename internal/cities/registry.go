package cities

import (
	"sort"
	"strings"
)

// City is one entry of the fixed set of locations this server can answer for.
type City struct {
	// Key is the canonical lowercase query name.
	Key  string
	Name string
	Lat  float64
	Lon  float64
}

// Registry maps canonical city keys to coordinates and display names. It is
// built once at startup and never mutated afterwards, so it is safe to share
// across concurrent calls without coordination.
type Registry struct {
	entries map[string]City
	keys    []string
}

// NewRegistry builds the registry from the fixed city table.
func NewRegistry() *Registry {
	table := []City{
		{Key: "london", Name: "London, UK", Lat: 51.5074, Lon: -0.1278},
		{Key: "new york", Name: "New York, USA", Lat: 40.7128, Lon: -74.0060},
		{Key: "tokyo", Name: "Tokyo, Japan", Lat: 35.6762, Lon: 139.6503},
		{Key: "paris", Name: "Paris, France", Lat: 48.8566, Lon: 2.3522},
		{Key: "beijing", Name: "Beijing, China", Lat: 39.9042, Lon: 116.4074},
		{Key: "toronto", Name: "Toronto, Canada", Lat: 43.6532, Lon: -79.3832},
		{Key: "singapore", Name: "Singapore", Lat: 1.3521, Lon: 103.8198},
	}

	entries := make(map[string]City, len(table))
	keys := make([]string, 0, len(table))
	for _, c := range table {
		entries[c.Key] = c
		keys = append(keys, c.Key)
	}
	sort.Strings(keys)

	return &Registry{entries: entries, keys: keys}
}

// Resolve looks up a city by name. Input is lowercased and trimmed before the
// exact-match lookup; there is no fuzzy or partial matching.
func (r *Registry) Resolve(city string) (City, bool) {
	c, ok := r.entries[strings.ToLower(strings.TrimSpace(city))]
	return c, ok
}

// All returns every city sorted by key for deterministic listings.
func (r *Registry) All() []City {
	out := make([]City, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.entries[k])
	}
	return out
}

// Keys returns the sorted canonical query names.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of registered cities.
func (r *Registry) Len() int {
	return len(r.entries)
}
