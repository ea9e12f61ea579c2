package mnemonic

import (
	_ "embed"
	"encoding/hex"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/sha3"
)

// DictionarySize is the number of words in a BIP-39 word list.
const DictionarySize = 2048

// DictionaryFingerprint is the SHA3-256 digest of the English export
// (every word followed by a single space).
const DictionaryFingerprint = "fca3543969cb6a75a90f898669c89a5ec85215a09d97bcad71ab6e7fd5d560b4"

//go:embed wordlist/english.txt
var englishList string

// Dictionary is an immutable, ordered BIP-39 word list.
type Dictionary struct {
	words  [DictionarySize]string
	index  map[string]uint16
	export string
}

var (
	englishOnce sync.Once
	englishDict *Dictionary
	englishErr  error
)

// English returns the process-wide English dictionary, building it on
// first use. Every call returns the same instance.
func English() (*Dictionary, error) {
	englishOnce.Do(func() {
		englishDict, englishErr = newDictionary(englishList, DictionaryFingerprint)
	})
	return englishDict, englishErr
}

// GetDictionary returns the English word list as a single text blob.
func GetDictionary() (string, error) {
	d, err := English()
	if err != nil {
		return "", err
	}
	return d.Export(), nil
}

// newDictionary parses a newline separated list. When fingerprint is
// non-empty the export digest must match it.
func newDictionary(list, fingerprint string) (*Dictionary, error) {
	const op = "load dictionary"

	words := strings.Fields(list)
	if len(words) != DictionarySize {
		return nil, newError(DictionaryCorrupt, op, "have %d words, want %d", len(words), DictionarySize)
	}

	d := &Dictionary{index: make(map[string]uint16, DictionarySize)}
	var b strings.Builder
	for i, w := range words {
		if _, dup := d.index[w]; dup {
			return nil, newError(DictionaryCorrupt, op, "duplicate word %q at %d", w, i)
		}
		d.words[i] = w
		d.index[w] = uint16(i)
		b.WriteString(w)
		b.WriteByte(' ')
	}
	d.export = b.String()

	if fingerprint != "" {
		sum := d.Fingerprint()
		if got := hex.EncodeToString(sum[:]); got != fingerprint {
			return nil, newError(DictionaryCorrupt, op, "fingerprint %s, want %s", got, fingerprint)
		}
	}
	return d, nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// WordAt returns the word at index i.
func (d *Dictionary) WordAt(i int) (string, error) {
	if i < 0 || i >= len(d.words) {
		return "", newError(OutOfRange, "word at", "index %d not in [0, %d)", i, len(d.words))
	}
	return d.words[i], nil
}

// IndexOf returns the index of word. Matching is exact and case-sensitive.
func (d *Dictionary) IndexOf(word string) (int, error) {
	i, ok := d.index[word]
	if !ok {
		return 0, newError(UnknownWord, "index of", "%q is not in the dictionary", word)
	}
	return int(i), nil
}

// Words returns a copy of the word list in index order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words[:])
	return out
}

// Export returns every word followed by a single space, in index order.
func (d *Dictionary) Export() string { return d.export }

// Fingerprint returns the SHA3-256 digest of Export.
func (d *Dictionary) Fingerprint() [32]byte {
	return sha3.Sum256([]byte(d.export))
}

// Complete returns the words starting with prefix, in index order.
// An empty prefix yields nothing.
func (d *Dictionary) Complete(prefix string) []string {
	if prefix == "" {
		return nil
	}
	// The list is sorted, so the matches form one contiguous run.
	start := sort.Search(len(d.words), func(i int) bool { return d.words[i] >= prefix })
	var out []string
	for i := start; i < len(d.words) && strings.HasPrefix(d.words[i], prefix); i++ {
		out = append(out, d.words[i])
	}
	return out
}
