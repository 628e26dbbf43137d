package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/lk16/reversi/internal/othello"
)

const (
	// ConfigFile is the path of the optional config file, relative to the XDG config directories.
	ConfigFile = "reversi/config.json"

	// LogFile is the path of the log file of the terminal UI, relative to the XDG state directory.
	LogFile = "reversi/reversi.log"

	DefaultTieBreak = "coin"
	DefaultLogLevel = "WARN"
)

// GameConfig holds the settings of a game. Values are loaded from defaults,
// then the config file, then environment variables.
type GameConfig struct {
	// Seed seeds the tie break of the computer. It is only used if HasSeed is set.
	Seed    int64 `json:"seed"`
	HasSeed bool  `json:"-"`

	TieBreak  string `json:"tie_break"`
	ShowHints bool   `json:"show_hints"`
	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file"`
}

// fileConfig mirrors GameConfig, but uses pointers to tell missing keys from zero values.
type fileConfig struct {
	Seed      *int64  `json:"seed"`
	TieBreak  *string `json:"tie_break"`
	ShowHints *bool   `json:"show_hints"`
	LogLevel  *string `json:"log_level"`
	LogFile   *string `json:"log_file"`
}

// DefaultGameConfig returns the configuration used when nothing is configured.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TieBreak:  DefaultTieBreak,
		ShowHints: false,
		LogLevel:  DefaultLogLevel,
	}
}

// LoadGameConfig loads the game configuration or logs a fatal error if it is invalid.
func LoadGameConfig() *GameConfig {
	path := ""
	if found, err := xdg.SearchConfigFile(ConfigFile); err == nil {
		path = found
	}

	cfg, err := loadGameConfig(path, os.LookupEnv)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// loadGameConfig builds the configuration from an optional config file and environment lookup.
func loadGameConfig(path string, lookupEnv func(string) (string, bool)) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	if path != "" {
		if err := readConfigFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(path string, cfg *GameConfig) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file fileConfig
	if err = json.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if file.Seed != nil {
		cfg.Seed = *file.Seed
		cfg.HasSeed = true
	}
	if file.TieBreak != nil {
		cfg.TieBreak = *file.TieBreak
	}
	if file.ShowHints != nil {
		cfg.ShowHints = *file.ShowHints
	}
	if file.LogLevel != nil {
		cfg.LogLevel = *file.LogLevel
	}
	if file.LogFile != nil {
		cfg.LogFile = *file.LogFile
	}

	return nil
}

func applyEnv(cfg *GameConfig, lookupEnv func(string) (string, bool)) error {
	if value, ok := lookupEnv("REVERSI_SEED"); ok && value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("REVERSI_SEED must be an integer, got %q", value)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if value, ok := lookupEnv("REVERSI_TIE_BREAK"); ok && value != "" {
		cfg.TieBreak = value
	}

	if value, ok := lookupEnv("REVERSI_HINTS"); ok && value != "" {
		if value != "true" && value != "false" {
			return fmt.Errorf("REVERSI_HINTS must be \"true\" or \"false\", got %q", value)
		}
		cfg.ShowHints = value == "true"
	}

	if value, ok := lookupEnv("LOG_LEVEL"); ok && value != "" {
		cfg.LogLevel = value
	}

	if value, ok := lookupEnv("REVERSI_LOG_FILE"); ok && value != "" {
		cfg.LogFile = value
	}

	return nil
}

// Validate checks values that cannot be checked while parsing.
func (c *GameConfig) Validate() error {
	if _, err := othello.ParseTieBreak(c.TieBreak); err != nil {
		return err
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// NewStrategy creates the computer strategy described by the configuration.
// Without a seed the tie break is not reproducible.
func (c *GameConfig) NewStrategy() (*othello.Greedy, error) {
	tieBreak, err := othello.ParseTieBreak(c.TieBreak)
	if err != nil {
		return nil, err
	}

	if c.HasSeed {
		return othello.NewGreedySeeded(c.Seed, tieBreak), nil
	}

	return othello.NewGreedy(nil, tieBreak), nil
}
