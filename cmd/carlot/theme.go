package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/carlot/internal/prefs"
	"github.com/vovakirdan/carlot/internal/storage"
	"github.com/vovakirdan/carlot/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [get|set <light|dark|auto>]",
	Short: "Show or set the theme preference",
	Long: `Show the stored theme preference and the mode it renders as, or store a
new one. The preference lives in the site database, or in the INI file given
with --prefs.

Examples:
  carlot theme
  carlot theme set dark
  carlot theme set auto --prefs ~/.config/carlot.ini`,
	Args: cobra.MaximumNArgs(2),
	Run:  runTheme,
}

func runTheme(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	var store *storage.Store
	if flagPrefsPath == "" {
		store = openStore(logger)
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: no preference storage available (try --prefs <file.ini>)")
			os.Exit(1)
		}
		defer store.Close()
	}
	ps := preferenceStore(store)

	dark, _, err := schemeSignal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	m := theme.NewManager(ps, nil, dark, logger)

	action := "get"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "get":
		if len(args) > 1 {
			fmt.Fprintln(os.Stderr, "Error: get takes no value")
			os.Exit(1)
		}
	case "set":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Error: set needs a value: light, dark or auto")
			os.Exit(1)
		}
		t, err := theme.Parse(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := m.Choose(t); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %q (use get or set)\n", action)
		os.Exit(1)
	}

	printTheme(m, ps)
}

func printTheme(m *theme.Manager, ps prefs.Store) {
	stored, ok := m.Stored()
	label := color.New(color.Bold).Sprint
	if ok {
		fmt.Printf("Preference: %s\n", label(stored))
	} else {
		fmt.Printf("Preference: %s\n", color.HiBlackString("none (follows the terminal)"))
	}
	if fs, isFile := ps.(*prefs.FileStore); isFile {
		fmt.Printf("Stored in:  %s\n", fs.Path())
	}

	m.Apply(m.Preferred())
	fmt.Printf("Renders as: %s\n", label(m.CurrentMode()))
}
