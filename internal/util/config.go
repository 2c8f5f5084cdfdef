// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds eqshell configuration settings
type Config struct {
	CoreURL        string `yaml:"core_url" description:"Chain core base URL" default:"http://localhost:9888"`
	AccessToken    string `yaml:"access_token" description:"Core access token as user:secret (empty = no auth)"`
	TimeoutSeconds int    `yaml:"timeout_seconds" description:"Per-request timeout for core calls" default:"30"`

	GasAssetID string `yaml:"gas_asset_id" description:"Asset fees are paid in" default:"ffff...ffff (BTM)"`
	DefaultGas string `yaml:"default_gas" description:"Gas used when unlockValue.gasInput is unset" default:"0.4"`
	GasUnit    string `yaml:"gas_unit" description:"Unit for default_gas and unitless gas inputs (btm, mbtm)" default:"btm"`

	HistoryFile string `yaml:"history_file" description:"REPL history file (relative to data dir)" default:".eqshell_history"`

	PasswordCommand    []string          `yaml:"password_command" description:"Helper that prints key passwords (argv; argv[0] relative to data dir)"`
	PasswordCommandEnv map[string]string `yaml:"password_command_env" description:"Environment passed to password_command"`
}

const (
	// DefaultCoreURL is where a local chain core listens.
	DefaultCoreURL = "http://localhost:9888"

	// DefaultGasAssetID is the BTM asset id.
	DefaultGasAssetID = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	// DataDirEnvVar overrides the default data directory.
	DataDirEnvVar = "EQSHELL_DATA"

	// DefaultDataDirName is the data directory under $HOME.
	DefaultDataDirName = ".eqshell"

	// ConfigFileName is the config file inside the data directory.
	ConfigFileName = "config.yaml"
)

// DefaultConfig returns the default configuration for runtime use.
func DefaultConfig() Config {
	return Config{
		CoreURL:        DefaultCoreURL,
		TimeoutSeconds: 30,
		GasAssetID:     DefaultGasAssetID,
		DefaultGas:     "0.4",
		GasUnit:        "btm",
		HistoryFile:    ".eqshell_history",
	}
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetDataDir returns the eqshell data directory.
// Resolution order: -d flag > EQSHELL_DATA env var > ~/.eqshell
func GetDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envDir := os.Getenv(DataDirEnvVar); envDir != "" {
		return envDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "" // Can't determine default
	}
	return filepath.Join(home, DefaultDataDirName)
}

// GetConfigPath returns the path to the config file in the data directory.
// Returns empty string if dataDir is empty.
func GetConfigPath(dataDir string) string {
	if dataDir == "" {
		return ""
	}
	return filepath.Join(dataDir, ConfigFileName)
}

// LoadConfig loads configuration from config.yaml in the data directory.
// If dataDir is empty or the file doesn't exist, returns default config.
// The history file and password helper are resolved relative to the data directory.
func LoadConfig(dataDir string) (Config, error) {
	config, err := LoadConfigFromPath(GetConfigPath(dataDir))
	if err != nil {
		return config, err
	}
	if dataDir != "" {
		config.HistoryFile = ResolvePath(config.HistoryFile, dataDir)
		if len(config.PasswordCommand) > 0 {
			config.PasswordCommand[0] = ResolvePath(config.PasswordCommand[0], dataDir)
		}
	}
	if err := ValidatePasswordCommand(config.PasswordHelper()); err != nil {
		return Config{}, err
	}
	return config, nil
}

// PasswordHelper returns the password helper settings, or nil when none is configured.
func (c *Config) PasswordHelper() *PasswordCommandConfig {
	if len(c.PasswordCommand) == 0 {
		return nil
	}
	return &PasswordCommandConfig{Argv: c.PasswordCommand, Env: c.PasswordCommandEnv}
}

// LoadConfigFromPath loads configuration from the specified path.
// If path is empty or the file doesn't exist, returns default config.
func LoadConfigFromPath(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then overlay config file values
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks field values and fills in defaults for zero values.
func (c *Config) Validate() error {
	defaults := DefaultConfig()

	if c.CoreURL == "" {
		c.CoreURL = defaults.CoreURL
	}
	u, err := url.Parse(c.CoreURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid core_url '%s' (must be an http or https URL)", c.CoreURL)
	}

	if c.AccessToken != "" && !strings.Contains(c.AccessToken, ":") {
		return fmt.Errorf("invalid access_token (must be user:secret)")
	}

	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid timeout_seconds %d (must be positive)", c.TimeoutSeconds)
	}

	if c.GasAssetID == "" {
		c.GasAssetID = defaults.GasAssetID
	}
	if b, err := hex.DecodeString(c.GasAssetID); err != nil || len(b) != 32 {
		return fmt.Errorf("invalid gas_asset_id '%s' (must be 64 hex characters)", c.GasAssetID)
	}

	c.GasUnit = strings.ToLower(c.GasUnit)
	switch c.GasUnit {
	case "":
		c.GasUnit = defaults.GasUnit
	case "btm", "mbtm":
	default:
		return fmt.Errorf("invalid gas_unit '%s' (must be btm or mbtm)", c.GasUnit)
	}

	if c.HistoryFile == "" {
		c.HistoryFile = defaults.HistoryFile
	}
	return nil
}

// ResolvePath returns path unchanged if absolute, otherwise joins it to baseDir.
func ResolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return filepath.Join(baseDir, path)
}

// DisplayConfig prints the current configuration
func DisplayConfig(w io.Writer, dataDir string) {
	config, err := LoadConfig(dataDir)

	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Data dir:    %s\n", dataDir)
	_, _ = fmt.Fprintf(w, "Config file: %s\n", GetConfigPath(dataDir))
	if err != nil {
		_, _ = fmt.Fprintf(w, "Error:       %v\n\n", err)
		return
	}
	_, _ = fmt.Fprintf(w, "Core URL:    %s\n", config.CoreURL)
	if config.AccessToken != "" {
		user, _, _ := strings.Cut(config.AccessToken, ":")
		_, _ = fmt.Fprintf(w, "Auth:        %s:****\n", user)
	} else {
		_, _ = fmt.Fprintf(w, "Auth:        none\n")
	}
	_, _ = fmt.Fprintf(w, "Timeout:     %ds\n", config.TimeoutSeconds)
	_, _ = fmt.Fprintf(w, "Gas asset:   %s\n", config.GasAssetID)
	_, _ = fmt.Fprintf(w, "Default gas: %s %s\n", config.DefaultGas, config.GasUnit)
	_, _ = fmt.Fprintf(w, "History:     %s\n", config.HistoryFile)
	if h := config.PasswordHelper(); h != nil {
		_, _ = fmt.Fprintf(w, "Passwords:   %s\n\n", h.Argv[0])
	} else {
		_, _ = fmt.Fprintf(w, "Passwords:   prompt\n\n")
	}
}
