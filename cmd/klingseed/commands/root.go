package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingseed/config"
	klog "github.com/Klingon-tech/klingseed/internal/log"
)

// Version is the klingseed release.
const Version = "0.1.0"

// app is the state shared by every subcommand of one root command.
type app struct {
	flags config.Flags
	cfg   *config.Config

	// readPassword prompts for a hidden line. Replaced in tests.
	readPassword func(prompt string) (string, error)
	// logOut receives console logs.
	logOut io.Writer
}

// Execute runs the CLI against os.Args.
func Execute() error {
	defer klog.Close()
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		readPassword: terminalPassword,
		logOut:       os.Stderr,
	}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "klingseed",
		Short:        "BIP-39 mnemonic and seed tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), &a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := klog.InitWriter(a.logOut, cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
				return err
			}
			klog.Config.Debug().
				Str("command", cmd.Name()).
				Int("entropy_bits", cfg.Entropy.Bits).
				Bool("strict", cfg.Seed.Strict).
				Str("format", string(cfg.Output.Format)).
				Msg("configuration loaded")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return klog.Close()
		},
	}

	config.BindGlobalFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		a.generateCmd(),
		a.seedCmd(),
		a.validateCmd(),
		a.entropyCmd(),
		a.wordsCmd(),
		a.configCmd(),
		versionCmd(),
	)
	return root
}
