package mnemonic

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error so callers can branch on it without
// matching message text.
type Kind int

const (
	KindUnknown Kind = iota
	InvalidArgument
	InvalidEntropySource
	UnsupportedEntropyLength
	InvalidWordCount
	UnknownWord
	ChecksumMismatch
	OutOfRange
	DictionaryCorrupt
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	InvalidArgument:          "invalid argument",
	InvalidEntropySource:     "invalid entropy source",
	UnsupportedEntropyLength: "unsupported entropy length",
	InvalidWordCount:         "invalid word count",
	UnknownWord:              "unknown word",
	ChecksumMismatch:         "checksum mismatch",
	OutOfRange:               "index out of range",
	DictionaryCorrupt:        "dictionary corrupt",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel errors, one per kind. Compare with errors.Is.
var (
	ErrInvalidArgument          = &Error{Kind: InvalidArgument}
	ErrInvalidEntropySource     = &Error{Kind: InvalidEntropySource}
	ErrUnsupportedEntropyLength = &Error{Kind: UnsupportedEntropyLength}
	ErrInvalidWordCount         = &Error{Kind: InvalidWordCount}
	ErrUnknownWord              = &Error{Kind: UnknownWord}
	ErrChecksumMismatch         = &Error{Kind: ChecksumMismatch}
	ErrOutOfRange               = &Error{Kind: OutOfRange}
	ErrDictionaryCorrupt        = &Error{Kind: DictionaryCorrupt}
)

// Error is returned by every fallible operation in this package.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "make mnemonic"
	Msg  string
	Err  error // underlying cause, if any
}

func newError(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
