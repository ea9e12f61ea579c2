package mnemonic

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// Seed derivation parameters fixed by BIP-39.
const (
	SeedSize       = 64
	SeedIterations = 2048
	SaltPrefix     = "mnemonic"
)

// Seed is the 512-bit output of seed derivation.
type Seed [SeedSize]byte

// Bytes returns a copy of the seed.
func (s Seed) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, s[:])
	return b
}

// String returns the seed as lowercase hex.
func (s Seed) String() string { return hex.EncodeToString(s[:]) }

// Wipe zeroes the seed in place.
func (s *Seed) Wipe() { Wipe(s[:]) }

// MakeSeed stretches a phrase and passphrase into a seed. An empty
// passphrase means no passphrase.
//
// The phrase is not checked against the word list or checksum: any
// non-blank text yields a seed. Use MakeSeedStrict to validate first.
func MakeSeed(mnemonic, passphrase string) (Seed, error) {
	if strings.TrimSpace(mnemonic) == "" {
		return Seed{}, newError(InvalidArgument, "make seed", "mnemonic is empty")
	}
	return deriveSeed(mnemonic, passphrase), nil
}

// MakeSeedStrict is MakeSeed for phrases that pass ValidateMnemonic.
func MakeSeedStrict(mnemonic, passphrase string) (Seed, error) {
	if strings.TrimSpace(mnemonic) == "" {
		return Seed{}, newError(InvalidArgument, "make seed", "mnemonic is empty")
	}
	if err := ValidateMnemonic(mnemonic); err != nil {
		return Seed{}, err
	}
	return deriveSeed(mnemonic, passphrase), nil
}

func deriveSeed(mnemonic, passphrase string) Seed {
	password := []byte(norm.NFKD.String(mnemonic))
	salt := []byte(norm.NFKD.String(SaltPrefix + passphrase))
	defer Wipe(password)
	defer Wipe(salt)

	key := pbkdf2.Key(password, salt, SeedIterations, SeedSize, sha512.New)
	defer Wipe(key)

	var s Seed
	copy(s[:], key)
	return s
}

// SeedToString hex-encodes binary data. Empty input is rejected.
func SeedToString(data []byte) (string, error) {
	if len(data) == 0 {
		return "", newError(InvalidArgument, "seed to string", "no data")
	}
	return hex.EncodeToString(data), nil
}
