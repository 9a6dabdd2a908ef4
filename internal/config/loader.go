package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDodge loads the mini-game configuration.
// Search order: customPath -> ~/.carlot/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig() // Partial files override defaults
	found, err := load("dodge", customPath, &cfg)
	if err != nil {
		return cfg, err
	}
	if !found {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config dodge: %w", err)
	}
	return cfg, nil
}

// LoadSite loads the site content configuration.
// Search order: customPath -> ~/.carlot/configs/site.yaml -> ./configs/site.yaml -> embedded default
func LoadSite(customPath string) (SiteConfig, error) {
	cfg := DefaultSiteConfig()
	found, err := load("site", customPath, &cfg)
	if err != nil {
		return cfg, err
	}
	if !found {
		return DefaultSiteConfig(), nil
	}
	return cfg, nil
}

// load fills out from the first readable source. It reports found=false only
// when even the embedded default fails to parse.
func load(name, customPath string, out any) (bool, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return false, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return false, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return true, nil
	}

	filename := name + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return true, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return true, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(name), out); err != nil {
		return false, nil
	}
	return true, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carlot", "configs", filename)
}
