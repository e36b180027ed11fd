package driven

// ConfigStore holds the settings read from the config file under
// dot-notation keys such as "api.base_url".
type ConfigStore interface {
	// Get returns the raw value under key and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the string under key, or "" when unset or not a
	// string.
	GetString(key string) string

	// GetInt returns the integer under key, or 0 when unset or not a
	// number.
	GetInt(key string) int

	// GetStringSlice returns the string list under key, or nil.
	GetStringSlice(key string) []string

	// Keys returns every key set in the store, sorted.
	Keys() []string

	// Set stores value under key and persists the store.
	Set(key string, value any) error

	// Path returns where the store is persisted.
	Path() string
}
