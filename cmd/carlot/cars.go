package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/carlot/internal/purchase"
	"github.com/vovakirdan/carlot/internal/registry"
)

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "List cars in stock",
	Long:  `Shows the showroom catalog with prices and availability.`,
	Args:  cobra.NoArgs,
	Run:   runCars,
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the site map",
	Long:  `Shows every page of the site with its route.`,
	Args:  cobra.NoArgs,
	Run:   runPages,
}

// padRight pads s to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func runCars(_ *cobra.Command, _ []string) {
	_, siteCfg, err := loadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	catalog := purchase.NewCatalog(siteCfg.Cars)
	if catalog.Len() == 0 {
		fmt.Println("The lot is empty.")
		return
	}

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4
	for _, c := range catalog.All() {
		maxIDLen = max(maxIDLen, runewidth.StringWidth(c.ID))
		maxNameLen = max(maxNameLen, runewidth.StringWidth(c.Name))
	}

	header := color.New(color.Bold)
	header.Printf("  %s  %s  %s  %-4s  %10s  %s\n", "  ", padRight("ID", maxIDLen), padRight("Name", maxNameLen), "Year", "Price", "Status")

	for _, c := range catalog.All() {
		status := color.GreenString("in stock")
		if !c.Available {
			status = color.HiBlackString("sold")
		}
		fmt.Printf("  %s  %s  %s  %-4d  %10s  %s\n",
			padRight(c.Symbol, 2), padRight(c.ID, maxIDLen), padRight(c.Name, maxNameLen),
			c.Year, purchase.FormatPrice(c.Price), status)
	}

	fmt.Println()
	fmt.Println("Run 'carlot buy <id>' to buy a car.")
}

func runPages(_ *cobra.Command, _ []string) {
	pages := registry.List()

	maxIDLen := 2
	for _, p := range pages {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	color.New(color.Bold).Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Route", "Title")
	for _, p := range pages {
		title := p.Title
		if !p.Nav {
			title += color.HiBlackString(" (not in navbar)")
		}
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, p.ID, p.Route, title)
	}

	fmt.Println()
	fmt.Println("Run 'carlot site <id|route>' to open a page.")
}
