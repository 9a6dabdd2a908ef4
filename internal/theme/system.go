package theme

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// SystemProbe returns a probe that asks the desktop for its dark-mode
// setting, falling back to the last known value when the query fails.
func SystemProbe(initial bool) func() bool {
	last := initial
	return func() bool {
		dark, ok := querySystemDark()
		if ok {
			last = dark
		}
		return last
	}
}

func querySystemDark() (dark bool, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	switch runtime.GOOS {
	case "darwin":
		out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
		if err != nil {
			// The key is absent in light mode
			var exitErr *exec.ExitError
			return false, errors.As(err, &exitErr)
		}
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	case "linux":
		out, err := exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
		if err != nil {
			return false, false
		}
		return strings.Contains(string(out), "dark"), true
	default:
		return false, false
	}
}
