package config

import (
	"fmt"

	klog "github.com/Klingon-tech/klingseed/internal/log"
	"github.com/Klingon-tech/klingseed/pkg/mnemonic"
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, err := mnemonic.EntropySizeFromBits(cfg.Entropy.Bits); err != nil {
		return fmt.Errorf("entropy.bits must be one of 128, 160, 192, 224, 256 (got %d)", cfg.Entropy.Bits)
	}
	switch cfg.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q", FormatText, FormatJSON)
	}
	if !klog.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, error or off")
	}
	return nil
}
