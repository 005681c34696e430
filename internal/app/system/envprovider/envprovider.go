// Package envprovider abstracts process environment lookups so handlers can
// take the environment as an explicit dependency.
//
// Production code uses OS, which reads the real process environment on every
// call. Tests and embedders use Map, which never touches os.Environ and is
// therefore safe to use from parallel tests.
package envprovider

import "os"

// Provider looks up environment variables.
// Implementations must be safe for concurrent use.
type Provider interface {
	// LookupEnv returns the value of key and whether it was present.
	LookupEnv(key string) (string, bool)
}

// OS reads from the real process environment.
type OS struct{}

// LookupEnv implements Provider via os.LookupEnv.
func (OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed environment. A nil Map is an empty environment.
type Map map[string]string

// LookupEnv implements Provider.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// GetOrDefault returns the value of key if it is present, else def.
// A variable that is set to the empty string is returned as "".
func GetOrDefault(p Provider, key, def string) string {
	if p == nil {
		return def
	}
	if v, ok := p.LookupEnv(key); ok {
		return v
	}
	return def
}
