package mnemonic

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseMnemonic decodes a phrase back into its entropy and embedded
// checksum. Words may be separated by any whitespace. The checksum is
// verified against the recovered entropy.
func ParseMnemonic(text string) ([]byte, Checksum, error) {
	const op = "parse mnemonic"

	words := strings.Fields(norm.NFKD.String(text))
	size, ok := entropySizeForWords(len(words))
	if !ok {
		return nil, Checksum{}, newError(InvalidWordCount, op, "%d words", len(words))
	}
	dict, err := English()
	if err != nil {
		return nil, Checksum{}, err
	}

	bitstream := make([]byte, size+1)
	defer Wipe(bitstream)
	for i, w := range words {
		idx, err := dict.IndexOf(w)
		if err != nil {
			// Position only; the word itself is secret material.
			return nil, Checksum{}, newError(UnknownWord, op, "word %d is not in the dictionary", i+1)
		}
		writeBits(bitstream, i*bitsPerWord, bitsPerWord, idx)
	}

	entropy := make([]byte, size)
	copy(entropy, bitstream[:size])
	bits := uint8(size / entropySizeStep)
	embedded := Checksum{Bits: bits, Value: byte(readBits(bitstream, size*8, int(bits)))}

	if want := checksumOf(entropy); want != embedded {
		Wipe(entropy)
		return nil, Checksum{}, newError(ChecksumMismatch, op, "")
	}
	return entropy, embedded, nil
}

// ValidateMnemonic returns nil if text is a well-formed English phrase
// with a correct checksum.
func ValidateMnemonic(text string) error {
	entropy, _, err := ParseMnemonic(text)
	if err != nil {
		return err
	}
	Wipe(entropy)
	return nil
}

// IsValid reports whether ValidateMnemonic(text) succeeds.
func IsValid(text string) bool {
	return ValidateMnemonic(text) == nil
}
