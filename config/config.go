// Package config handles klingseed runtime configuration.
//
// Settings come from three layers, later layers winning:
//   - built-in defaults
//   - a key = value config file (klingseed.conf)
//   - command-line flags
//
// Nothing secret is ever read from or written to the config file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// OutputFormat selects how commands print results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ConfigFileName is the config file name inside the config directory.
const ConfigFileName = "klingseed.conf"

// Config holds runtime settings.
type Config struct {
	ConfigDir string `conf:"configdir"`

	Entropy EntropyConfig
	Seed    SeedConfig
	Output  OutputConfig
	Log     LogConfig
}

// EntropyConfig controls mnemonic generation.
type EntropyConfig struct {
	Bits int `conf:"entropy.bits"` // 128, 160, 192, 224 or 256
}

// SeedConfig controls seed derivation.
type SeedConfig struct {
	Strict bool `conf:"seed.strict"` // Reject phrases with a bad checksum before deriving
	Prompt bool `conf:"seed.prompt"` // Ask for a passphrase on the terminal
}

// OutputConfig controls command output.
type OutputConfig struct {
	Format OutputFormat `conf:"output.format"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultConfigDir returns the platform-specific config directory.
//
//	Linux:   ~/.klingseed
//	macOS:   ~/Library/Application Support/Klingseed
//	Windows: %APPDATA%\Klingseed
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingseed"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Klingseed")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Klingseed")
		}
		return filepath.Join(home, "AppData", "Roaming", "Klingseed")
	default:
		return filepath.Join(home, ".klingseed")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.ConfigDir, ConfigFileName)
}

// EntropyBytes returns the configured entropy size in bytes.
func (c *Config) EntropyBytes() int {
	return c.Entropy.Bits / 8
}
