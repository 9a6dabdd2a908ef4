package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/carlot/internal/games/dodge"
)

var (
	flagSimRuns    int
	flagSimWidth   int
	flagSimHeight  int
	flagSimTimeout time.Duration
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run Car Dodge headless",
	Long: `Run Car Dodge without a screen, steering with the autopilot, and print
the final score of each run. Runs use the real tick interval, so --fps
speeds them up.

Examples:
  carlot sim
  carlot sim --runs 5 --fps 500 --seed 42
  carlot sim --width 60 --height 20 --timeout 30s --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Container width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Viewport height in cells")
	simCmd.Flags().DurationVar(&flagSimTimeout, "timeout", time.Minute, "Stop a run after this long")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save scores as player \"autopilot\"")
}

// nopRenderer discards frames; the simulation only reports scores.
type nopRenderer struct{}

func (nopRenderer) DrawFrame(dodge.Frame) {}
func (nopRenderer) UpdateScore(int) {}
func (nopRenderer) ShowGameOver(dodge.Canvas) {}
func (nopRenderer) SetStartEnabled(bool) {}

func runSim(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	cfg, _, err := loadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Loop.TickInterval = time.Second / time.Duration(flagFPS)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var (
		save   func(score int)
		record func() (int, error)
	)
	if flagSimSave {
		if store := openStore(logger); store != nil {
			defer store.Close()
			save = func(score int) {
				if _, err := store.SavePlayerScore(dodge.ID, "autopilot", score); err != nil {
					logger.Warn("cannot save score", "error", err)
				}
			}
			record = func() (int, error) { return store.HighScore(dodge.ID) }
		}
	}

	layout := dodge.Layout{
		ContainerWidth: float64(flagSimWidth) * cfg.Canvas.UnitsPerCellX,
		ViewportHeight: float64(flagSimHeight) * cfg.Canvas.UnitsPerCellY,
	}

	bold := color.New(color.Bold)
	best := 0
	for run := 1; run <= flagSimRuns; run++ {
		sched := dodge.NewTimerScheduler()
		engine := dodge.NewEngine(cfg, sched, nopRenderer{}, seed+int64(run), logger.WithPrefix(dodge.ID))

		ctx, cancel := context.WithTimeout(context.Background(), flagSimTimeout)
		final, err := dodge.RunHeadless(ctx, engine, sched, layout, dodge.Autopilot)
		cancel()

		outcome := color.RedString("crashed")
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = color.GreenString("survived")
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("run %-3d %s  score %s\n", run, outcome, bold.Sprint(final.Score))
		if final.Score > best {
			best = final.Score
		}
		if save != nil && final.Score > 0 {
			save(final.Score)
		}
	}

	if flagSimRuns > 1 {
		fmt.Println()
		fmt.Printf("Best: %s\n", bold.Sprint(best))
	}
	if record != nil {
		if high, err := record(); err == nil {
			fmt.Printf("Site record: %s\n", bold.Sprint(high))
		}
	}
}
