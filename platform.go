package userdirs

import "runtime"

// Platform identifies the directory convention in effect.
// Anything that is not macOS or Windows uses the POSIX defaults.
type Platform int

const (
	// PlatformUnix covers Linux, the BSDs, and every other POSIX system.
	PlatformUnix Platform = iota
	// PlatformDarwin covers macOS.
	PlatformDarwin
	// PlatformWindows covers Windows.
	PlatformWindows
)

// String returns a human-readable platform name.
func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformWindows:
		return "windows"
	default:
		return "unix"
	}
}

// CurrentPlatform returns the Platform for the running operating system.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnix
	}
}
