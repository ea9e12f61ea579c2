package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	klog "github.com/Klingon-tech/klingseed/internal/log"
	"github.com/Klingon-tech/klingseed/pkg/mnemonic"
)

type validateResult struct {
	Valid bool   `json:"valid"`
	Words int    `json:"words"`
	Kind  string `json:"error,omitempty"`
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [word...|-]",
		Short: "Check a mnemonic's words and checksum",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := readMnemonic(cmd, args)
			if err != nil {
				return err
			}
			res := validateResult{Words: len(strings.Fields(phrase))}

			verr := mnemonic.ValidateMnemonic(phrase)
			if verr != nil {
				res.Kind = mnemonic.KindOf(verr).String()
				klog.CLI.Debug().Str("kind", res.Kind).Int("words", res.Words).Msg("mnemonic rejected")
			} else {
				res.Valid = true
			}

			if err := a.output(cmd, res, func(w io.Writer) {
				if res.Valid {
					fmt.Fprintf(w, "valid (%d words)\n", res.Words)
				}
			}); err != nil {
				return err
			}
			return verr
		},
	}
}

type entropyResult struct {
	Entropy      string `json:"entropy"`
	Bits         int    `json:"bits"`
	Checksum     string `json:"checksum"`
	ChecksumBits int    `json:"checksum_bits"`
}

func (a *app) entropyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entropy [word...|-]",
		Short: "Recover the entropy encoded in a mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := readMnemonic(cmd, args)
			if err != nil {
				return err
			}
			entropy, sum, err := mnemonic.ParseMnemonic(phrase)
			if err != nil {
				return err
			}
			defer mnemonic.Wipe(entropy)

			res := entropyResult{
				Entropy:      hex.EncodeToString(entropy),
				Bits:         len(entropy) * 8,
				Checksum:     fmt.Sprintf("%0*b", int(sum.Bits), sum.Value),
				ChecksumBits: int(sum.Bits),
			}
			return a.output(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "entropy:  %s\n", res.Entropy)
				fmt.Fprintf(w, "checksum: %s (%d bits)\n", res.Checksum, res.ChecksumBits)
			})
		},
	}
}
