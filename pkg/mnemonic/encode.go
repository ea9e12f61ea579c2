package mnemonic

import (
	"crypto/sha256"
	"strings"
)

// Checksum holds the leading digest bits appended to entropy. Value is
// right-aligned: a 4-bit checksum 1011 has Value 0x0b.
type Checksum struct {
	Bits  uint8
	Value byte
}

// checksumOf returns the first len(entropy)*8/32 bits of SHA-256(entropy).
func checksumOf(entropy []byte) Checksum {
	bits := uint8(len(entropy) / entropySizeStep)
	sum := sha256.Sum256(entropy)
	return Checksum{Bits: bits, Value: sum[0] >> (8 - bits)}
}

// MakeMnemonic pulls size bytes from src with a single Fill call and
// encodes them. The entropy buffer is wiped before returning.
func MakeMnemonic(src EntropySource, size int) (string, error) {
	const op = "make mnemonic"

	if f, ok := src.(EntropyFunc); src == nil || (ok && f == nil) {
		return "", newError(InvalidEntropySource, op, "no entropy source")
	}
	if !ValidEntropySize(size) {
		return "", newError(UnsupportedEntropyLength, op, "%d bytes", size)
	}

	buf := make([]byte, size)
	defer Wipe(buf)

	n, err := src.Fill(buf)
	if err != nil {
		return "", &Error{Kind: InvalidEntropySource, Op: op, Msg: "fill failed", Err: err}
	}
	if n < size {
		return "", newError(InvalidEntropySource, op, "got %d bytes, want %d", n, size)
	}
	return EntropyToMnemonic(buf)
}

// EntropyToMnemonic encodes entropy as a space separated phrase.
func EntropyToMnemonic(entropy []byte) (string, error) {
	const op = "encode entropy"

	if !ValidEntropySize(len(entropy)) {
		return "", newError(UnsupportedEntropyLength, op, "%d bytes", len(entropy))
	}
	dict, err := English()
	if err != nil {
		return "", err
	}

	// entropy || checksum, with the checksum left-aligned in the last byte.
	cs := checksumOf(entropy)
	bitstream := make([]byte, len(entropy)+1)
	defer Wipe(bitstream)
	copy(bitstream, entropy)
	bitstream[len(entropy)] = cs.Value << (8 - cs.Bits)

	count := WordCount(len(entropy))
	var b strings.Builder
	for i := 0; i < count; i++ {
		idx := readBits(bitstream, i*bitsPerWord, bitsPerWord)
		w, err := dict.WordAt(idx)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String(), nil
}

// readBits reads n bits starting at bit offset off, most significant
// bit first.
func readBits(data []byte, off, n int) int {
	v := 0
	for i := off; i < off+n; i++ {
		v = v<<1 | int(data[i/8]>>(7-uint(i%8))&1)
	}
	return v
}

// writeBits stores the low n bits of v at bit offset off, most
// significant bit first. data must be zeroed in that range.
func writeBits(data []byte, off, n, v int) {
	for i := 0; i < n; i++ {
		if v>>(n-1-i)&1 == 1 {
			pos := off + i
			data[pos/8] |= 1 << (7 - uint(pos%8))
		}
	}
}
