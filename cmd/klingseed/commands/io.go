package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Klingon-tech/klingseed/config"
)

// readMnemonic joins the positional arguments, or reads stdin when there
// are none or the only argument is "-".
func readMnemonic(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read mnemonic: %w", err)
	}
	m := strings.TrimSpace(string(data))
	if m == "" {
		return "", fmt.Errorf("no mnemonic given (pass words as arguments or on stdin)")
	}
	return m, nil
}

// passphrase asks for a passphrase when prompting is enabled. The
// passphrase is entered twice when confirm is set.
func (a *app) passphrase(confirm bool) (string, error) {
	if !a.cfg.Seed.Prompt {
		return "", nil
	}
	pass, err := a.readPassword("Enter passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if confirm {
		again, err := a.readPassword("Confirm passphrase: ")
		if err != nil {
			return "", fmt.Errorf("read passphrase: %w", err)
		}
		if again != pass {
			return "", fmt.Errorf("passphrases do not match")
		}
	}
	return pass, nil
}

func terminalPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("passphrase prompt needs a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", err
	}
	return string(password), nil
}

// output writes v as indented JSON, or calls text for the text format.
func (a *app) output(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.cfg.Output.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
