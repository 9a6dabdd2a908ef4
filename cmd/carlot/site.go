package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carlot/internal/platform/tui"
)

var flagCar string

var siteCmd = &cobra.Command{
	Use:   "site [page]",
	Short: "Browse the site",
	Long: `Open the site in the terminal. The optional page is a page ID or a route
from 'carlot pages', e.g. "contact" or "Buy-Car.html".

Controls:
  [ / ]        - Previous / next page
  t            - Theme switcher
  ↑/↓, enter   - Move and select
  b            - Buy the focused car
  tab, ctrl+s  - Next form field, submit form
  esc          - Back to the showroom
  q/Ctrl+C     - Quit

Examples:
  carlot site
  carlot site contact
  carlot site Buy-Car.html --car cab
  carlot site --scheme dark --prefs ./prefs.ini`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSite,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Car Dodge",
	Long: `Open the Car Dodge page.

Controls:
  s/Space    - Start (or restart after a crash)
  Mouse      - Steer: the car follows the pointer
  ←/→        - Steer with the keyboard
  c          - Change car
  q/Ctrl+C   - Quit

Examples:
  carlot play
  carlot play --fps 30
  carlot play --dodge-config ./dodge.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runSite(cmd, []string{tui.PageGame})
	},
}

func init() {
	siteCmd.Flags().StringVar(&flagCar, "car", "", "Car to prefill on the purchase page")
}

func runSite(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	dodgeCfg, siteCfg, err := loadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dark, probe, err := schemeSignal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	opts := tui.Options{
		Site:     siteCfg,
		Dodge:    dodgeCfg,
		Runtime:  runtimeConfig(),
		Store:    store,
		Prefs:    preferenceStore(store),
		Player:   currentUser(),
		Dark:     dark,
		Probe:    probe,
		StartCar: flagCar,
		Logger:   logger,
	}
	if len(args) > 0 {
		opts.StartPage = args[0]
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running site: %v\n", runErr)
		os.Exit(1)
	}
}
