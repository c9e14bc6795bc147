package tagflow

import (
	"runtime"

	"github.com/agiangrant/tagflow/retained"
)

// Platform represents the current operating system/platform
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the program is running on
func CurrentPlatform() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMacOS
	case "ios":
		return PlatformIOS
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

// SubmitModifier is the modifier that turns Enter in the field into a
// "submit with the current chips" shortcut: Cmd on Apple platforms, Ctrl
// elsewhere.
func (p Platform) SubmitModifier() Modifiers {
	if p == PlatformMacOS || p == PlatformIOS {
		return retained.ModSuper
	}
	return retained.ModCtrl
}

// IsSubmitShortcut reports whether a Submitted notification carries the
// platform's submit modifier.
func (p Platform) IsSubmitShortcut(n Notification) bool {
	return n.Kind == retained.NoteSubmitted && n.Modifiers&p.SubmitModifier() != 0
}

// IsSubmitShortcut is CurrentPlatform().IsSubmitShortcut(n).
func IsSubmitShortcut(n Notification) bool {
	return CurrentPlatform().IsSubmitShortcut(n)
}

// HasPointerHover reports whether the platform delivers hover without a
// press, which decides if delete buttons can appear on hover.
func (p Platform) HasPointerHover() bool {
	return p == PlatformMacOS || p == PlatformLinux || p == PlatformWindows || p == PlatformWeb
}
