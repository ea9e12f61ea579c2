package config

// Default returns the default configuration: 24-word phrases, permissive
// seed derivation, text output, warn-level console logs.
func Default() *Config {
	return &Config{
		ConfigDir: DefaultConfigDir(),
		Entropy: EntropyConfig{
			Bits: 256,
		},
		Seed: SeedConfig{
			Strict: false,
			Prompt: false,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
