package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/carlot/internal/purchase"
)

var flagBuyPrintOnly bool

var buyCmd = &cobra.Command{
	Use:   "buy <car>",
	Short: "Buy a car",
	Long: `Ask for confirmation, then open the purchase page with the car filled in.
Car IDs are listed by 'carlot cars'.

Examples:
  carlot buy cab
  carlot buy roadster --print`,
	Args: cobra.ExactArgs(1),
	Run:  runBuy,
}

func init() {
	buyCmd.Flags().BoolVar(&flagBuyPrintOnly, "print", false, "Print the purchase route instead of opening it")
}

func runBuy(cmd *cobra.Command, args []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	_, siteCfg, err := loadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	catalog := purchase.NewCatalog(siteCfg.Cars)
	car, err := catalog.Lookup(args[0])
	if errors.Is(err, purchase.ErrUnknownCar) {
		fmt.Fprintf(os.Stderr, "Error: unknown car %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'carlot cars' to see what is in stock.")
		os.Exit(1)
	}

	navigate := func(route string) error {
		if flagBuyPrintOnly {
			fmt.Println(route)
			return nil
		}
		runSite(cmd, []string{route})
		return nil
	}
	// The purchase page reads the car from the route.
	flagCar = car.ID

	h := purchase.NewHandler(
		purchase.NewStdinConfirmer(os.Stdin, os.Stdout),
		purchase.NavigateFunc(navigate),
		siteCfg.Purchase,
		logger,
	)
	h.Bind(catalog.Controls()...)

	ctrl := purchase.Control{ID: purchase.ControlID(car.ID), Car: car.ID}
	if !h.Bound(ctrl.ID) {
		fmt.Fprintf(os.Stderr, "Sorry, the %s is already sold.\n", car.Name)
		os.Exit(1)
	}

	fmt.Printf("%s %s %s\n", car.Symbol, color.New(color.Bold).Sprint(car.Name), color.GreenString(purchase.FormatPrice(car.Price)))
	ok, err := h.Click(ctrl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("No problem, the car stays on the lot.")
	}
}
