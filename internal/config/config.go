// Package config provides YAML-based configuration for the mini-game and the
// site content (theme switcher, purchase flow and car catalog).
package config

import (
	"errors"
	"fmt"
	"time"
)

// DodgeConfig contains all configuration for the car-dodging mini-game.
// Distances are canvas units; the terminal maps units to cells via Canvas.
type DodgeConfig struct {
	Loop     DodgeLoop     `yaml:"loop"`
	Car      DodgeCar      `yaml:"car"`
	Obstacle DodgeObstacle `yaml:"obstacle"`
	Canvas   DodgeCanvas   `yaml:"canvas"`
}

// DodgeLoop defines the fixed-tick update loop.
type DodgeLoop struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Speed        float64       `yaml:"speed"`        // Obstacle fall per tick
	SpawnChance  float64       `yaml:"spawn_chance"` // Probability of a new obstacle per tick
}

// DodgeCar defines the player's car.
type DodgeCar struct {
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	BottomOffset float64  `yaml:"bottom_offset"` // Distance from the canvas bottom to the car's top
	Symbols      []string `yaml:"symbols"`       // Selectable car glyphs, first is the default
}

// DodgeObstacle defines the falling road works.
type DodgeObstacle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Symbol string  `yaml:"symbol"`
}

// DodgeCanvas defines how the canvas is sized from the surrounding layout.
type DodgeCanvas struct {
	WidthRatio    float64 `yaml:"width_ratio"`  // Share of the container width
	HeightRatio   float64 `yaml:"height_ratio"` // Share of the viewport height
	UnitsPerCellX float64 `yaml:"units_per_cell_x"`
	UnitsPerCellY float64 `yaml:"units_per_cell_y"`
}

// ErrInvalidConfig is returned when a loaded config cannot drive the game.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every dimension and rate is usable.
func (c DodgeConfig) Validate() error {
	switch {
	case c.Loop.TickInterval <= 0:
		return fmt.Errorf("%w: loop.tick_interval must be positive", ErrInvalidConfig)
	case c.Loop.Speed <= 0:
		return fmt.Errorf("%w: loop.speed must be positive", ErrInvalidConfig)
	case c.Loop.SpawnChance < 0 || c.Loop.SpawnChance > 1:
		return fmt.Errorf("%w: loop.spawn_chance must be within [0, 1]", ErrInvalidConfig)
	case c.Car.Width <= 0 || c.Car.Height <= 0:
		return fmt.Errorf("%w: car dimensions must be positive", ErrInvalidConfig)
	case len(c.Car.Symbols) == 0:
		return fmt.Errorf("%w: car.symbols must not be empty", ErrInvalidConfig)
	case c.Obstacle.Width <= 0 || c.Obstacle.Height <= 0:
		return fmt.Errorf("%w: obstacle dimensions must be positive", ErrInvalidConfig)
	case c.Canvas.WidthRatio <= 0 || c.Canvas.HeightRatio <= 0:
		return fmt.Errorf("%w: canvas ratios must be positive", ErrInvalidConfig)
	case c.Canvas.UnitsPerCellX <= 0 || c.Canvas.UnitsPerCellY <= 0:
		return fmt.Errorf("%w: canvas units per cell must be positive", ErrInvalidConfig)
	}
	return nil
}

// SiteConfig contains the site content: navbar title, theme switcher,
// purchase flow and the showroom catalog.
type SiteConfig struct {
	Title    string           `yaml:"title"`
	Theme    ThemeSettings    `yaml:"theme"`
	Purchase PurchaseSettings `yaml:"purchase"`
	Cars     []Car            `yaml:"cars"`
}

// ThemeSettings configures the theme switcher control.
type ThemeSettings struct {
	SwitcherText string            `yaml:"switcher_text"` // Prefix of the switcher's accessibility label
	Icons        map[string]string `yaml:"icons"`         // Icon per theme value
	PollInterval time.Duration     `yaml:"poll_interval"` // How often the dark-background signal is probed
}

// PurchaseSettings configures the buy confirmation.
type PurchaseSettings struct {
	ConfirmMessage string `yaml:"confirm_message"`
	Page           string `yaml:"page"` // Route navigated to after confirmation
}

// Car is a showroom entry.
type Car struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Symbol    string `yaml:"symbol"`
	Year      int    `yaml:"year"`
	Price     int    `yaml:"price"` // Whole dollars
	Blurb     string `yaml:"blurb"`
	Available bool   `yaml:"available"` // Sold cars render without a buy button
}
