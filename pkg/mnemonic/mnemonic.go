// Package mnemonic implements BIP-39 mnemonic encoding and seed derivation
// over the English word list.
//
// Entropy of 16 to 32 bytes (in steps of 4) is extended with the leading
// bits of its SHA-256 digest and split into 11-bit word indices. A phrase
// and an optional passphrase are stretched into a 64-byte seed with
// PBKDF2-HMAC-SHA512.
//
// Every operation returns its result only on success; on failure the
// result is the zero value and the error is an *Error carrying a Kind.
package mnemonic

import "fmt"

// Entropy sizes in bytes.
const (
	MinEntropySize     = 16
	MaxEntropySize     = 32
	DefaultEntropySize = 32
	entropySizeStep    = 4
)

const (
	bitsPerWord   = 11
	wordIndexMask = DictionarySize - 1
)

// ValidEntropySize reports whether n bytes of entropy can be encoded.
func ValidEntropySize(n int) bool {
	return n >= MinEntropySize && n <= MaxEntropySize && n%entropySizeStep == 0
}

// WordCount returns the number of words produced for n bytes of entropy,
// or 0 if n is not a valid size.
func WordCount(n int) int {
	if !ValidEntropySize(n) {
		return 0
	}
	return (n*8 + n/entropySizeStep) / bitsPerWord
}

// entropySizeForWords is the inverse of WordCount.
func entropySizeForWords(words int) (int, bool) {
	for n := MinEntropySize; n <= MaxEntropySize; n += entropySizeStep {
		if WordCount(n) == words {
			return n, true
		}
	}
	return 0, false
}

// EntropySizeFromBits converts a bit length (128..256) to bytes.
func EntropySizeFromBits(bits int) (int, error) {
	if bits%8 != 0 || !ValidEntropySize(bits/8) {
		return 0, newError(UnsupportedEntropyLength, "entropy size", "%d bits", bits)
	}
	return bits / 8, nil
}

// NewMnemonic generates a phrase from size bytes of system entropy.
func NewMnemonic(size int) (string, error) {
	m, err := MakeMnemonic(SystemEntropy{}, size)
	if err != nil {
		return "", fmt.Errorf("new mnemonic: %w", err)
	}
	return m, nil
}
