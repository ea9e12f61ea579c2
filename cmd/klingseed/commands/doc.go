// Package commands defines the klingseed CLI.
//
// Commands
//
//   - generate   Create a new mnemonic (optionally with its seed)
//   - seed       Derive the 64-byte seed for a mnemonic
//   - validate   Check word list membership and checksum
//   - entropy    Recover the entropy and checksum bits from a mnemonic
//   - words      Print, search or fingerprint the word list
//   - config     Write or show the configuration
//   - version    Print the version
//
// # Implementation
//
// The root command loads configuration (defaults, config file, flags) and
// initialises logging before any subcommand runs. Phrases are taken from
// arguments or stdin; passphrases only from an interactive prompt, never
// from flags, so they stay out of shell history.
package commands
