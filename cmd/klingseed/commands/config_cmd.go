package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingseed/config"
	klog "github.com/Klingon-tech/klingseed/internal/log"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the klingseed config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.flags.Config
			if path == "" {
				if err := os.MkdirAll(a.cfg.ConfigDir, 0700); err != nil {
					return fmt.Errorf("creating config dir: %w", err)
				}
				path = a.cfg.ConfigFile()
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}
			klog.Config.Info().Str("path", path).Msg("config written")
			fmt.Fprintf(cmd.OutOrStdout(), "Config written: %s\n", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg
			return a.output(cmd, c, func(w io.Writer) {
				fmt.Fprintf(w, "configdir     = %s\n", c.ConfigDir)
				fmt.Fprintf(w, "entropy.bits  = %d\n", c.Entropy.Bits)
				fmt.Fprintf(w, "seed.strict   = %t\n", c.Seed.Strict)
				fmt.Fprintf(w, "seed.prompt   = %t\n", c.Seed.Prompt)
				fmt.Fprintf(w, "output.format = %s\n", c.Output.Format)
				fmt.Fprintf(w, "log.level     = %s\n", c.Log.Level)
				fmt.Fprintf(w, "log.file      = %s\n", c.Log.File)
				fmt.Fprintf(w, "log.json      = %t\n", c.Log.JSON)
			})
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "klingseed version %s\n", Version)
			return nil
		},
	}
}
