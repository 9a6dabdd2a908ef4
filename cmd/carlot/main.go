// carlot is a terminal rendition of a small car-dealership site: a showroom
// with buy buttons behind a confirmation, validated contact and purchase
// forms, a light/dark/auto theme switcher and a car-dodging mini-game.
//
// Usage:
//
//	carlot site [page]        - Browse the site (showroom, game, contact, scores)
//	carlot play               - Open the Car Dodge page directly
//	carlot sim                - Run the game headless with the autopilot
//	carlot theme [get|set]    - Show or change the stored theme preference
//	carlot buy <car>          - Buy a car from the command line
//	carlot cars               - List the showroom
//	carlot scores             - Show Car Dodge high scores
//	carlot pages              - List the site map
//	carlot serve              - Serve the site over SSH
//
// Global flags:
//
//	--fps <rate>      - Game tick rate (default: the configured 20ms interval)
//	--seed <value>    - RNG seed for reproducible obstacle placement
//	--db <path>       - Database path (default: ~/.carlot/carlot.db)
//	--prefs <path>    - Keep preferences in an INI file instead of the database
//	--scheme <mode>   - Override the terminal's color scheme: auto, light, dark
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagPrefsPath   string
	flagLogFile     string
	flagDebug       bool
	flagScheme      string
	flagDodgeConfig string
	flagSiteConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carlot",
	Short: "Carlot Motors - a car dealership in your terminal",
	Long: `Carlot Motors is a small car-dealership site for the terminal.

Browse the showroom, buy a car, drop the sales team a line, switch between
light, dark and auto themes, and play Car Dodge while you wait.

Available commands:
  site     - Browse the site
  play     - Play Car Dodge
  sim      - Run Car Dodge headless
  theme    - Show or set the theme preference
  buy      - Buy a car without the UI
  cars     - List cars in stock
  scores   - View high scores
  pages    - List the site map
  serve    - Start SSH server

Examples:
  carlot site
  carlot site contact
  carlot play --fps 30
  carlot theme set dark
  carlot buy cab
  carlot serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Game tick rate per second (0 = configured interval)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.carlot/carlot.db", "Path to the site database")
	pf.StringVar(&flagPrefsPath, "prefs", "", "Path to an INI preferences file (default: stored in the database)")
	pf.StringVar(&flagLogFile, "log-file", "~/.carlot/carlot.log", "Log file for interactive sessions")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.StringVar(&flagScheme, "scheme", "auto", "Terminal color scheme: auto, light or dark")
	pf.StringVar(&flagDodgeConfig, "dodge-config", "", "Path to a custom Car Dodge config YAML")
	pf.StringVar(&flagSiteConfig, "site-config", "", "Path to a custom site config YAML")

	// Add subcommands
	rootCmd.AddCommand(siteCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(carsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(serveCmd)
}
