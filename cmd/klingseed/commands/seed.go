package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingseed/config"
	klog "github.com/Klingon-tech/klingseed/internal/log"
	"github.com/Klingon-tech/klingseed/pkg/mnemonic"
)

func (a *app) seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [word...|-]",
		Short: "Derive the BIP-39 seed for a mnemonic",
		Long: `Derive the 64-byte BIP-39 seed (PBKDF2-HMAC-SHA512, 2048 rounds).

Without --strict any text is accepted, as BIP-39 specifies; with --strict
the phrase must use dictionary words and carry a valid checksum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := readMnemonic(cmd, args)
			if err != nil {
				return err
			}
			pass, err := a.passphrase(false)
			if err != nil {
				return err
			}

			derive := mnemonic.MakeSeed
			if a.cfg.Seed.Strict {
				derive = mnemonic.MakeSeedStrict
			}
			done := klog.Benchmark(klog.Engine, "derive seed")
			seed, err := derive(phrase, pass)
			done()
			if err != nil {
				return err
			}
			defer seed.Wipe()

			hexSeed := seed.String()
			klog.CLI.Info().Bool("strict", a.cfg.Seed.Strict).Bool("passphrase", pass != "").Msg("derived seed")
			return a.output(cmd, map[string]string{"seed": hexSeed}, func(w io.Writer) {
				fmt.Fprintln(w, hexSeed)
			})
		},
	}
	config.BindSeedFlags(cmd.Flags(), &a.flags)
	return cmd
}
