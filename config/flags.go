package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds command-line values that map onto Config.
type Flags struct {
	Config    string
	ConfigDir string

	Bits   int
	Strict bool
	Prompt bool
	Format string

	LogLevel string
	LogFile  string
	LogJSON  bool
}

// Flag names.
const (
	FlagConfig    = "config"
	FlagConfigDir = "config-dir"
	FlagBits      = "bits"
	FlagStrict    = "strict"
	FlagPrompt    = "passphrase-prompt"
	FlagFormat    = "format"
	FlagLogLevel  = "log-level"
	FlagLogFile   = "log-file"
	FlagLogJSON   = "log-json"
)

// BindGlobalFlags registers the flags shared by every command.
func BindGlobalFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVarP(&f.Config, FlagConfig, "c", "", "Config file path (default: <config-dir>/"+ConfigFileName+")")
	fs.StringVar(&f.ConfigDir, FlagConfigDir, "", "Config directory (default: "+DefaultConfigDir()+")")
	fs.StringVar(&f.Format, FlagFormat, "", "Output format: text or json")
	fs.StringVar(&f.LogLevel, FlagLogLevel, "", "Log level (debug, info, warn, error, off)")
	fs.StringVar(&f.LogFile, FlagLogFile, "", "Log file path")
	fs.BoolVar(&f.LogJSON, FlagLogJSON, false, "Output logs as JSON")
}

// BindEntropyFlags registers generation flags.
func BindEntropyFlags(fs *pflag.FlagSet, f *Flags) {
	fs.IntVarP(&f.Bits, FlagBits, "b", 0, "Entropy bits: 128, 160, 192, 224 or 256")
}

// BindSeedFlags registers seed derivation flags.
func BindSeedFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVar(&f.Strict, FlagStrict, false, "Validate the phrase before deriving the seed")
	fs.BoolVarP(&f.Prompt, FlagPrompt, "p", false, "Prompt for a BIP-39 passphrase")
}

// ApplyFlags copies explicitly set flags onto cfg. Flags not defined on
// fs are skipped.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet, f *Flags) {
	if fs.Changed(FlagConfigDir) {
		cfg.ConfigDir = f.ConfigDir
	}
	if fs.Changed(FlagBits) {
		cfg.Entropy.Bits = f.Bits
	}
	if fs.Changed(FlagStrict) {
		cfg.Seed.Strict = f.Strict
	}
	if fs.Changed(FlagPrompt) {
		cfg.Seed.Prompt = f.Prompt
	}
	if fs.Changed(FlagFormat) {
		cfg.Output.Format = OutputFormat(strings.ToLower(f.Format))
	}
	if fs.Changed(FlagLogLevel) {
		cfg.Log.Level = f.LogLevel
	}
	if fs.Changed(FlagLogFile) {
		cfg.Log.File = f.LogFile
	}
	if fs.Changed(FlagLogJSON) {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file (missing file is fine)
// 3. Command-line flags
func Load(fs *pflag.FlagSet, f *Flags) (*Config, error) {
	cfg := Default()
	if fs.Changed(FlagConfigDir) {
		cfg.ConfigDir = f.ConfigDir
	}

	configPath := f.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	ApplyFlags(cfg, fs, f)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
