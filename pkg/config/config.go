// Package config provides configuration management for the qrecc CLI tool
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Davincible/qrecc/pkg/qr"
)

// Output formats for codeword listings
const (
	FormatHex     = "hex"
	FormatDecimal = "decimal"
	FormatBinary  = "binary"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for encoding operations
type DefaultSettings struct {
	Level        string `json:"level"`         // Default: M
	Format       string `json:"format"`        // hex, decimal, binary
	ShowBlocks   bool   `json:"show_blocks"`   // List each EC block separately
	ShowBitwords bool   `json:"show_bitwords"` // Print the raw bit stream
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool `json:"use_color"` // Enable colored output
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager loads the configuration file, falling back to defaults
// when none exists yet. Defaults are not written to disk until SaveConfig.
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerWith wraps an in-memory configuration that will be saved
// to configPath.
func NewConfigManagerWith(configPath string, config *Config) *ConfigManager {
	return &ConfigManager{config: config, configPath: configPath}
}

// NewConfigManagerAt is NewConfigManager with an explicit file path.
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{configPath: configPath}

	if err := cm.LoadConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cm.config = DefaultConfig()
	}

	if err := cm.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Level:        "M",
			Format:       FormatHex,
			ShowBlocks:   false,
			ShowBitwords: false,
		},
		UI: UIConfig{
			UseColor: true,
		},
	}
}

// Validate checks that the configured defaults are usable
func (c *Config) Validate() error {
	if _, err := qr.ParseLevel(c.Defaults.Level); err != nil {
		return fmt.Errorf("defaults.level: %w", err)
	}
	if err := ValidateFormat(c.Defaults.Format); err != nil {
		return fmt.Errorf("defaults.format: %w", err)
	}
	return nil
}

// ValidateFormat checks a codeword output format name
func ValidateFormat(format string) error {
	switch format {
	case FormatHex, FormatDecimal, FormatBinary:
		return nil
	}
	return fmt.Errorf("unknown format %q, expected hex, decimal or binary", format)
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the configuration file path
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

// Level returns the configured default error correction level
func (cm *ConfigManager) Level() qr.Level {
	level, err := qr.ParseLevel(cm.config.Defaults.Level)
	if err != nil {
		return qr.LevelM
	}
	return level
}

// Exists reports whether the configuration file is present on disk
func (cm *ConfigManager) Exists() bool {
	_, err := os.Stat(cm.configPath)
	return err == nil
}

// DefaultPath returns the configuration file path
func DefaultPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("QRECC_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "qrecc", "config.json"), nil
	}

	// Default to ~/.config/qrecc/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "qrecc", "config.json"), nil
}
