package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDuel loads Blast Duel configuration.
// Search order: customPath -> ~/.blastpong/configs/duel.yaml -> ./configs/duel.yaml -> embedded default
func LoadDuel(customPath string) (DuelConfig, error) {
	var cfg DuelConfig
	if err := load("duel", customPath, defaultDuelYAML, &cfg); err != nil {
		return DefaultDuelConfig(), err
	}
	return cfg, nil
}

// LoadScroller loads Side Scroller configuration.
// Search order: customPath -> ~/.blastpong/configs/scroller.yaml -> ./configs/scroller.yaml -> embedded default
func LoadScroller(customPath string) (ScrollerConfig, error) {
	var cfg ScrollerConfig
	if err := load("scroller", customPath, defaultScrollerYAML, &cfg); err != nil {
		return DefaultScrollerConfig(), err
	}
	return cfg, nil
}

// load resolves the config search order shared by all games.
// A customPath is authoritative: read or parse failures there are returned
// to the caller. The fallback locations are best-effort and skipped on any
// error, ending at the embedded default YAML.
func load(gameID, customPath string, embedded []byte, cfg interface{}) error {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, cfg); err != nil {
		return fmt.Errorf("failed to parse embedded default for %s: %w", gameID, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blastpong", "configs", filename)
}

// ApplyDuelPreset adjusts the CPU opponent for a difficulty preset.
// Normal keeps the stock tracking behavior.
func ApplyDuelPreset(cfg *DuelConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.ErrorMargin = 25
		cfg.AI.SpeedFactor = 0.7
		cfg.AI.RetargetEvery = 6
	case DifficultyHard:
		cfg.AI.ErrorMargin = 6
		cfg.AI.SpeedFactor = 1.0
		cfg.AI.RetargetEvery = 2
	}
}

// ApplyScrollerPreset adjusts physics weight for a difficulty preset.
func ApplyScrollerPreset(cfg *ScrollerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity = 0.25
		cfg.Camera.KillMargin = 150
	case DifficultyHard:
		cfg.Physics.Gravity = 0.35
		cfg.Camera.KillMargin = 50
	}
}
