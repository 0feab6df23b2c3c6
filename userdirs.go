package userdirs

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrHomeDirNotFound indicates the user's home directory could not be
// determined. It is the only error this package produces; every resolver
// method propagates it unchanged when the home directory is needed.
var ErrHomeDirNotFound = errors.New("home directory not found")

// Directories is the result of resolving every category in one call.
// State and Runtime are nil on platforms or configurations without a
// convention for them.
type Directories struct {
	Home    string  `json:"home" yaml:"home" toml:"home"`
	Data    string  `json:"data" yaml:"data" toml:"data"`
	Config  string  `json:"config" yaml:"config" toml:"config"`
	Cache   string  `json:"cache" yaml:"cache" toml:"cache"`
	State   *string `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
	Runtime *string `json:"runtime,omitempty" yaml:"runtime,omitempty" toml:"runtime,omitempty"`
}

// Resolver computes user-scoped directory locations. Every method is a
// pure function of the injected environment and platform; results are
// never cached, so repeated calls observe environment changes.
//
// The zero-config resolver from New reads the process environment, the
// host platform, and os.UserHomeDir.
type Resolver struct {
	env      Environ
	platform Platform
	homeDir  func() (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEnviron sets the environment provider.
func WithEnviron(env Environ) Option {
	return func(r *Resolver) { r.env = env }
}

// WithPlatform pins the platform convention instead of detecting it.
func WithPlatform(p Platform) Option {
	return func(r *Resolver) { r.platform = p }
}

// WithHomeDir sets the home directory lookup function.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Resolver) { r.homeDir = fn }
}

// New creates a Resolver. Without options it is backed by the process
// environment and the running platform.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		env:      OSEnviron{},
		platform: CurrentPlatform(),
		homeDir:  osHomeDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// osHomeDir resolves the home directory via the operating system.
func osHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// Home returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func (r *Resolver) Home() (string, error) {
	return r.homeDir()
}

// Data returns the data directory.
//
//	XDG_DATA_HOME set => its value, verbatim
//	macOS            => ~/Library/Application Support
//	Windows          => %APPDATA%, or ~/AppData/Roaming
//	otherwise        => ~/.local/share
func (r *Resolver) Data() (string, error) {
	if v, ok := r.env.Lookup(EnvDataHome); ok {
		return v, nil
	}

	home, err := r.homeDir()
	if err != nil {
		return "", err
	}

	switch r.platform {
	case PlatformDarwin:
		return filepath.Join(home, "Library", "Application Support"), nil
	case PlatformWindows:
		if v, ok := r.env.Lookup(EnvAppData); ok {
			return v, nil
		}
		return filepath.Join(home, "AppData", "Roaming"), nil
	default:
		return filepath.Join(home, ".local", "share"), nil
	}
}

// Config returns the config directory.
//
//	XDG_CONFIG_HOME set => its value, verbatim
//	macOS              => ~/Library/Preferences
//	Windows            => %APPDATA%, or ~/AppData/Roaming
//	otherwise          => ~/.config
func (r *Resolver) Config() (string, error) {
	if v, ok := r.env.Lookup(EnvConfigHome); ok {
		return v, nil
	}

	home, err := r.homeDir()
	if err != nil {
		return "", err
	}

	switch r.platform {
	case PlatformDarwin:
		return filepath.Join(home, "Library", "Preferences"), nil
	case PlatformWindows:
		if v, ok := r.env.Lookup(EnvAppData); ok {
			return v, nil
		}
		return filepath.Join(home, "AppData", "Roaming"), nil
	default:
		return filepath.Join(home, ".config"), nil
	}
}

// Cache returns the cache directory.
//
//	XDG_CACHE_HOME set => its value, verbatim
//	macOS             => ~/Library/Caches
//	Windows           => %LOCALAPPDATA%, or ~/AppData/Local
//	otherwise         => ~/.cache
func (r *Resolver) Cache() (string, error) {
	if v, ok := r.env.Lookup(EnvCacheHome); ok {
		return v, nil
	}

	home, err := r.homeDir()
	if err != nil {
		return "", err
	}

	switch r.platform {
	case PlatformDarwin:
		return filepath.Join(home, "Library", "Caches"), nil
	case PlatformWindows:
		if v, ok := r.env.Lookup(EnvLocalAppData); ok {
			return v, nil
		}
		return filepath.Join(home, "AppData", "Local"), nil
	default:
		return filepath.Join(home, ".cache"), nil
	}
}

// State returns the state directory and whether one exists.
// With XDG_STATE_HOME set the value is returned verbatim on every
// platform. Without it, macOS and Windows have no state convention and
// ok is false; the POSIX default is ~/.local/state. The home directory
// is resolved whenever the override is absent, so ErrHomeDirNotFound can
// surface even on platforms that would report no directory.
func (r *Resolver) State() (string, bool, error) {
	if v, ok := r.env.Lookup(EnvStateHome); ok {
		return v, true, nil
	}

	home, err := r.homeDir()
	if err != nil {
		return "", false, err
	}

	switch r.platform {
	case PlatformDarwin, PlatformWindows:
		return "", false, nil
	default:
		return filepath.Join(home, ".local", "state"), true, nil
	}
}

// Runtime returns the runtime directory and whether one exists.
// Only XDG_RUNTIME_DIR provides one; no platform has a default, so this
// never needs the home directory and never fails.
func (r *Resolver) Runtime() (string, bool) {
	if v, ok := r.env.Lookup(EnvRuntimeDir); ok {
		return v, true
	}
	return "", false
}

// All resolves every category in one pass. The home directory is looked
// up exactly once; each override variable is applied independently on
// top of the platform defaults derived from it.
//
// Because the result includes Home itself, All fails with
// ErrHomeDirNotFound when the home directory cannot be determined, even
// if overrides would have satisfied every other category.
func (r *Resolver) All() (*Directories, error) {
	home, err := r.homeDir()
	if err != nil {
		return nil, err
	}

	// Categories below go through the same per-category logic with the
	// already-resolved home, so overrides keep their verbatim semantics
	// and none of these calls can fail.
	fixed := &Resolver{
		env:      r.env,
		platform: r.platform,
		homeDir:  func() (string, error) { return home, nil },
	}

	data, err := fixed.Data()
	if err != nil {
		return nil, err
	}
	config, err := fixed.Config()
	if err != nil {
		return nil, err
	}
	cache, err := fixed.Cache()
	if err != nil {
		return nil, err
	}

	dirs := &Directories{
		Home:   home,
		Data:   data,
		Config: config,
		Cache:  cache,
	}

	if state, ok, err := fixed.State(); err != nil {
		return nil, err
	} else if ok {
		dirs.State = &state
	}
	if runtime, ok := fixed.Runtime(); ok {
		dirs.Runtime = &runtime
	}

	return dirs, nil
}

// Package-level functions mirror the Resolver methods on a default
// resolver backed by the process environment and host platform.

// Home returns the user's home directory.
func Home() (string, error) { return New().Home() }

// Data returns the data directory.
func Data() (string, error) { return New().Data() }

// Config returns the config directory.
func Config() (string, error) { return New().Config() }

// Cache returns the cache directory.
func Cache() (string, error) { return New().Cache() }

// State returns the state directory and whether one exists.
func State() (string, bool, error) { return New().State() }

// Runtime returns the runtime directory and whether one exists.
func Runtime() (string, bool) { return New().Runtime() }

// All resolves every category in one pass.
func All() (*Directories, error) { return New().All() }
