package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingseed/config"
	klog "github.com/Klingon-tech/klingseed/internal/log"
	"github.com/Klingon-tech/klingseed/pkg/mnemonic"
)

type generateResult struct {
	Mnemonic string `json:"mnemonic"`
	Words    int    `json:"words"`
	Seed     string `json:"seed,omitempty"`
}

func (a *app) generateCmd() *cobra.Command {
	var (
		entropyHex string
		label      string
		withSeed   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if entropyHex != "" && label != "" {
				return fmt.Errorf("--entropy and --label are mutually exclusive")
			}

			size := a.cfg.EntropyBytes()
			var src mnemonic.EntropySource = mnemonic.SystemEntropy{}
			switch {
			case entropyHex != "":
				raw, err := hex.DecodeString(strings.TrimSpace(entropyHex))
				if err != nil {
					return fmt.Errorf("decode --entropy: %w", err)
				}
				defer mnemonic.Wipe(raw)
				src, size = mnemonic.NewFixedEntropy(raw), len(raw)
			case label != "":
				klog.CLI.Warn().Msg("deterministic entropy from a label is reproducible by anyone who knows it")
				src = mnemonic.NewDeterministicEntropy(label)
			}

			phrase, err := mnemonic.MakeMnemonic(src, size)
			if err != nil {
				return err
			}
			res := generateResult{Mnemonic: phrase, Words: mnemonic.WordCount(size)}
			klog.CLI.Info().Int("words", res.Words).Msg("generated mnemonic")

			if withSeed {
				pass, err := a.passphrase(true)
				if err != nil {
					return err
				}
				done := klog.Benchmark(klog.Engine, "derive seed")
				seed, err := mnemonic.MakeSeed(phrase, pass)
				done()
				if err != nil {
					return err
				}
				res.Seed = seed.String()
				seed.Wipe()
			}

			return a.output(cmd, res, func(w io.Writer) {
				fmt.Fprintln(w, res.Mnemonic)
				if res.Seed != "" {
					fmt.Fprintln(w, res.Seed)
				}
			})
		},
	}

	config.BindEntropyFlags(cmd.Flags(), &a.flags)
	config.BindSeedFlags(cmd.Flags(), &a.flags)
	cmd.Flags().StringVar(&entropyHex, "entropy", "", "Use this hex entropy instead of the system RNG")
	cmd.Flags().StringVar(&label, "label", "", "Derive entropy deterministically from a label (testing only)")
	cmd.Flags().BoolVar(&withSeed, "seed", false, "Also print the derived seed")
	return cmd
}
