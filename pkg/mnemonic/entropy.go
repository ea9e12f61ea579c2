package mnemonic

import (
	"crypto/rand"
	"errors"

	"github.com/zeebo/blake3"
)

// EntropySource produces raw entropy. Fill is called once per mnemonic
// and may write fewer than len(p) bytes; it returns how many it wrote.
type EntropySource interface {
	Fill(p []byte) (int, error)
}

var errNilSource = errors.New("nil entropy source")

// EntropyFunc adapts a plain function to EntropySource.
type EntropyFunc func(p []byte) (int, error)

// Fill calls f(p).
func (f EntropyFunc) Fill(p []byte) (int, error) {
	if f == nil {
		return 0, errNilSource
	}
	return f(p)
}

// SystemEntropy reads from the operating system CSPRNG.
type SystemEntropy struct{}

// Fill fills p from crypto/rand.
func (SystemEntropy) Fill(p []byte) (int, error) {
	return rand.Read(p)
}

// FixedEntropy replays a fixed buffer. It writes min(len(p), len(buf))
// bytes on every call.
type FixedEntropy struct {
	buf []byte
}

// NewFixedEntropy returns a source replaying a copy of b.
func NewFixedEntropy(b []byte) *FixedEntropy {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &FixedEntropy{buf: buf}
}

// Fill copies the fixed buffer into p.
func (f *FixedEntropy) Fill(p []byte) (int, error) {
	if f == nil {
		return 0, errNilSource
	}
	return copy(p, f.buf), nil
}

// deterministicContext is the BLAKE3 derive-key context. Changing it
// changes every mnemonic produced from a label.
const deterministicContext = "klingseed 2024-06-01 deterministic entropy v1"

// DeterministicEntropy derives reproducible bytes from a label using the
// BLAKE3 extendable output. Not suitable for real keys.
type DeterministicEntropy struct {
	label string
}

// NewDeterministicEntropy returns a source keyed by label.
func NewDeterministicEntropy(label string) *DeterministicEntropy {
	return &DeterministicEntropy{label: label}
}

// Fill writes the first len(p) bytes of the label's output stream, so
// equal labels and sizes always give equal bytes.
func (d *DeterministicEntropy) Fill(p []byte) (int, error) {
	if d == nil {
		return 0, errNilSource
	}
	h := blake3.NewDeriveKey(deterministicContext)
	if _, err := h.Write([]byte(d.label)); err != nil {
		return 0, err
	}
	return h.Digest().Read(p)
}
