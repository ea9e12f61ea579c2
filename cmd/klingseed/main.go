// klingseed generates BIP-39 mnemonics and derives their seeds.
//
// Usage:
//
//	klingseed generate [--bits 256] [--seed -p]   New mnemonic
//	klingseed seed word1 word2 ...                 Derive seed
//	klingseed validate < phrase.txt                Check a phrase
//	klingseed --help                               Show help
package main

import (
	"os"

	"github.com/Klingon-tech/klingseed/cmd/klingseed/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
