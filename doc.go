// Package userdirs resolves standard user-scoped filesystem locations:
// home, data, config, cache, state, and runtime directories.
//
// The package always prefers explicitly-set XDG override variables,
// regardless of platform. Only when an override is absent does the
// platform convention apply.
//
// # Resolution Table
//
// For a user named Leah:
//
//	| Category | Override        | macOS                         | Windows                      | POSIX                     |
//	|----------|-----------------|-------------------------------|------------------------------|---------------------------|
//	| data     | XDG_DATA_HOME   | ~/Library/Application Support | %APPDATA%                    | /home/leah/.local/share   |
//	| config   | XDG_CONFIG_HOME | ~/Library/Preferences         | %APPDATA%                    | /home/leah/.config        |
//	| cache    | XDG_CACHE_HOME  | ~/Library/Caches              | %LOCALAPPDATA%               | /home/leah/.cache         |
//	| state    | XDG_STATE_HOME  | (none)                        | (none)                       | /home/leah/.local/state   |
//	| runtime  | XDG_RUNTIME_DIR | (none)                        | (none)                       | (none)                    |
//
// An override that is present in the environment is used verbatim, even
// when its value is an empty string. A set override also skips the home
// directory lookup entirely, so those calls cannot fail.
//
// # Usage
//
// Package-level functions read the real process environment:
//
//	config, err := userdirs.Config()
//
// For tests, or to resolve for a foreign platform, build a Resolver with
// injected collaborators:
//
//	r := userdirs.New(
//	    userdirs.WithPlatform(userdirs.PlatformUnix),
//	    userdirs.WithEnviron(userdirs.MapEnviron{"XDG_CONFIG_HOME": "/etc/alt"}),
//	)
//
// # Error Handling
//
// The only error condition is [ErrHomeDirNotFound], returned whenever a
// resolution path needs the home directory and the operating system
// cannot supply one. Check for it with [errors.Is].
package userdirs
