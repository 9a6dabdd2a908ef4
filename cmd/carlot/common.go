package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/carlot/internal/config"
	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/prefs"
	"github.com/vovakirdan/carlot/internal/storage"
	"github.com/vovakirdan/carlot/internal/theme"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the process logger. Interactive sessions own the terminal,
// so they log to --log-file; everything else logs to stderr.
func newLogger(interactive bool) (*log.Logger, func()) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	if interactive {
		w = io.Discard
		path := expandHome(flagLogFile)
		if path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "carlot",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// openStore opens the site database. Failure is not fatal: the site keeps
// working without scores and submissions.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open site database", "error", err)
		// Continue without storage
		return nil
	}
	return store
}

// preferenceStore picks where the theme choice lives.
func preferenceStore(store *storage.Store) prefs.Store {
	switch {
	case flagPrefsPath != "":
		return prefs.NewFileStore(flagPrefsPath)
	case store != nil:
		return store.Preferences()
	default:
		return prefs.NewMemory()
	}
}

// loadConfigs loads the game and site configuration.
func loadConfigs() (config.DodgeConfig, config.SiteConfig, error) {
	dodgeCfg, err := config.LoadDodge(flagDodgeConfig)
	if err != nil {
		return dodgeCfg, config.SiteConfig{}, err
	}
	siteCfg, err := config.LoadSite(flagSiteConfig)
	if err != nil {
		return dodgeCfg, siteCfg, err
	}
	return dodgeCfg, siteCfg, nil
}

// schemeSignal returns the dark-background signal and, when the scheme is not
// forced, a probe that keeps following the desktop setting.
func schemeSignal() (dark bool, probe func() bool, err error) {
	switch strings.ToLower(flagScheme) {
	case "dark":
		return true, nil, nil
	case "light":
		return false, nil, nil
	case "", "auto":
		dark = lipgloss.HasDarkBackground()
		return dark, theme.SystemProbe(dark), nil
	default:
		return false, nil, fmt.Errorf("unknown scheme %q (use auto, light or dark)", flagScheme)
	}
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// currentUser names the local player for the scoreboard.
func currentUser() string {
	for _, v := range []string{"USER", "USERNAME", "LOGNAME"} {
		if u := os.Getenv(v); u != "" {
			return u
		}
	}
	return "guest"
}
