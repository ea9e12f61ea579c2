package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration from a .conf file. A missing file yields
// an empty map.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "entropy.bits", "bits":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Entropy.Bits = n

	case "seed.strict", "strict":
		cfg.Seed.Strict = parseBool(value)
	case "seed.prompt":
		cfg.Seed.Prompt = parseBool(value)

	case "output.format", "format":
		cfg.Output.Format = OutputFormat(strings.ToLower(value))

	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	case "mnemonic", "passphrase", "seed", "entropy":
		return fmt.Errorf("secrets are not read from config files")

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented default configuration file. It
// refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	content := `# klingseed configuration
#
# Secrets (mnemonics, passphrases, seeds) are never read from this file.

# ============================================================================
# Generation
# ============================================================================

# Entropy size for new phrases: 128, 160, 192, 224 or 256 bits
# (12, 15, 18, 21 or 24 words)
entropy.bits = 256

# ============================================================================
# Seed derivation
# ============================================================================

# Reject phrases with unknown words or a bad checksum before deriving
seed.strict = false

# Prompt for a BIP-39 passphrase on the terminal
seed.prompt = false

# ============================================================================
# Output
# ============================================================================

# text or json
output.format = text

# ============================================================================
# Logging
# ============================================================================

log.level = warn
# log.file =
log.json = false
`
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
