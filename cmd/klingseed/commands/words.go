package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	klog "github.com/Klingon-tech/klingseed/internal/log"
	"github.com/Klingon-tech/klingseed/pkg/mnemonic"
)

func (a *app) wordsCmd() *cobra.Command {
	var (
		prefix      string
		export      bool
		fingerprint bool
	)

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the BIP-39 English word list",
		Long: `Print the BIP-39 English word list, one word per line.

--export prints the canonical blob (each word followed by a space), whose
SHA3-256 is ` + mnemonic.DictionaryFingerprint + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := mnemonic.English()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			switch {
			case fingerprint:
				sum := dict.Fingerprint()
				fp := hex.EncodeToString(sum[:])
				klog.CLI.Debug().Str("fingerprint", fp).Msg("dictionary fingerprint")
				return a.output(cmd, map[string]string{"sha3_256": fp}, func(w io.Writer) {
					fmt.Fprintln(w, fp)
				})
			case export:
				_, err := io.WriteString(w, dict.Export())
				return err
			case prefix != "":
				matches := dict.Complete(prefix)
				if len(matches) == 0 {
					return fmt.Errorf("no word starts with %q", prefix)
				}
				return a.output(cmd, matches, func(w io.Writer) {
					for _, m := range matches {
						fmt.Fprintln(w, m)
					}
				})
			default:
				words := dict.Words()
				return a.output(cmd, words, func(w io.Writer) {
					for _, m := range words {
						fmt.Fprintln(w, m)
					}
				})
			}
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only words starting with this prefix")
	cmd.Flags().BoolVar(&export, "export", false, "Print the canonical space-separated export")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "Print the SHA3-256 of the export")
	return cmd
}
