package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

//go:embed defaults/site.yaml
var defaultSiteYAML []byte

// DefaultDodgeConfig returns the default mini-game configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Loop: DodgeLoop{
			TickInterval: 20 * time.Millisecond,
			Speed:        2,
			SpawnChance:  0.02,
		},
		Car: DodgeCar{
			Width:        40,
			Height:       40,
			BottomOffset: 50,
			Symbols:      []string{"🚗", "🚙", "🚕", "🚓", "🚑", "🚚"},
		},
		Obstacle: DodgeObstacle{
			Width:  40,
			Height: 40,
			Symbol: "🚧",
		},
		Canvas: DodgeCanvas{
			WidthRatio:    0.9,
			HeightRatio:   0.8,
			UnitsPerCellX: 20,
			UnitsPerCellY: 40,
		},
	}
}

// DefaultSiteConfig returns the hardcoded site content used when the
// embedded YAML cannot be parsed.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title: "Carlot Motors",
		Theme: ThemeSettings{
			SwitcherText: "Toggle theme",
			Icons: map[string]string{
				"light": "☀",
				"dark":  "☾",
				"auto":  "◐",
			},
			PollInterval: 5 * time.Second,
		},
		Purchase: PurchaseSettings{
			ConfirmMessage: "Are you sure to buy this car?",
			Page:           "Buy-Car.html",
		},
		Cars: []Car{
			{ID: "compact", Name: "Compact Hatch", Symbol: "🚗", Year: 2022, Price: 17250, Blurb: "Parks anywhere, sips fuel.", Available: true},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "dodge":
		return defaultDodgeYAML
	case "site":
		return defaultSiteYAML
	default:
		return nil
	}
}
