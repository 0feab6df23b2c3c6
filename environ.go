package userdirs

import "os"

// Override environment variables. A variable that is present in the
// environment, even with an empty value, fully determines its category;
// the value is used verbatim with no trimming or validation.
const (
	// EnvDataHome overrides the data directory on every platform.
	EnvDataHome = "XDG_DATA_HOME"
	// EnvConfigHome overrides the config directory on every platform.
	EnvConfigHome = "XDG_CONFIG_HOME"
	// EnvCacheHome overrides the cache directory on every platform.
	EnvCacheHome = "XDG_CACHE_HOME"
	// EnvStateHome overrides the state directory on every platform.
	EnvStateHome = "XDG_STATE_HOME"
	// EnvRuntimeDir overrides the runtime directory. It is the only way
	// to obtain a runtime directory; there is no platform default.
	EnvRuntimeDir = "XDG_RUNTIME_DIR"

	// EnvAppData is the Windows roaming app-data variable, consulted as a
	// fallback for data and config when the XDG override is absent.
	EnvAppData = "APPDATA"
	// EnvLocalAppData is the Windows local app-data variable, consulted as
	// a fallback for cache when the XDG override is absent.
	EnvLocalAppData = "LOCALAPPDATA"
)

// Environ supplies environment variable lookups to a Resolver.
// The production implementation reads the process environment; tests
// supply a fixture instead of mutating process state.
type Environ interface {
	// Lookup returns the value of the named variable and whether it is
	// present. An empty value with ok == true counts as present.
	Lookup(key string) (value string, ok bool)
}

// OSEnviron reads the real process environment.
type OSEnviron struct{}

// Lookup implements Environ via os.LookupEnv.
func (OSEnviron) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnviron is an Environ backed by a map, for deterministic tests.
// A key present in the map is "set" even when its value is empty.
type MapEnviron map[string]string

// Lookup implements Environ.
func (m MapEnviron) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
