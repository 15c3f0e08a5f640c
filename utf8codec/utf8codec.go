/*
Package utf8codec converts between scalar values and UTF-8 bytes.

Both directions fail closed. Encoding refuses isolated surrogates instead of
substituting U+FFFD, and decoding refuses overlong forms, truncated sequences,
encoded surrogates and values above U+10FFFF. Failures are reported as
*EncodingError, which carries the offending position and value and matches
ErrIsolatedSurrogate, ErrInvalidScalar or ErrInvalidUTF8 with errors.Is.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package utf8codec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textprim.utf8'
func tracer() tracing.Trace {
	return tracing.Select("textprim.utf8")
}

// Kind classifies encoding failures.
type Kind uint8

// Kinds of encoding failures.
const (
	IsolatedSurrogate Kind = iota + 1 // encode: scalar is a surrogate
	InvalidScalar                     // encode: scalar outside [0, 0x10FFFF]
	InvalidUTF8                       // decode: malformed byte sequence
)

func (k Kind) String() string {
	switch k {
	case IsolatedSurrogate:
		return "isolated surrogate"
	case InvalidScalar:
		return "invalid scalar"
	case InvalidUTF8:
		return "invalid UTF-8"
	}
	return "<unknown>"
}

// Sentinels for errors.Is checks against *EncodingError.
var (
	ErrIsolatedSurrogate = errors.New("utf8codec: isolated surrogate")
	ErrInvalidScalar     = errors.New("utf8codec: invalid scalar")
	ErrInvalidUTF8       = errors.New("utf8codec: invalid UTF-8")
)

// EncodingError reports a failed conversion.
//
// For encoding, Index is the position in the scalar input and Value the
// offending scalar. For decoding, Index is the byte offset where the malformed
// sequence starts and Value is the byte found there.
type EncodingError struct {
	Kind  Kind
	Index int
	Value rune
}

func (e *EncodingError) Error() string {
	if e.Kind == InvalidUTF8 {
		return fmt.Sprintf("utf8codec: invalid UTF-8 at byte %d (%#02x)", e.Index, e.Value)
	}
	return fmt.Sprintf("utf8codec: %s %#04x at index %d", e.Kind, e.Value, e.Index)
}

// Unwrap maps the error kind to its sentinel.
func (e *EncodingError) Unwrap() error {
	switch e.Kind {
	case IsolatedSurrogate:
		return ErrIsolatedSurrogate
	case InvalidScalar:
		return ErrInvalidScalar
	case InvalidUTF8:
		return ErrInvalidUTF8
	}
	return nil
}

// Encode converts scalars to UTF-8, using 1 to 4 bytes per scalar.
func Encode(scalars []rune) ([]byte, error) {
	n := 0
	for i, r := range scalars {
		l := utf8.RuneLen(r)
		if l < 0 {
			err := &EncodingError{Kind: InvalidScalar, Index: i, Value: r}
			if r >= 0xD800 && r <= 0xDFFF {
				err.Kind = IsolatedSurrogate
			}
			tracer().Debugf("encode failed: %v", err)
			return nil, err
		}
		n += l
	}
	out := make([]byte, 0, n)
	for _, r := range scalars {
		out = utf8.AppendRune(out, r)
	}
	return out, nil
}

// Decode converts UTF-8 bytes to scalars.
func Decode(b []byte) ([]rune, error) {
	scalars := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			err := &EncodingError{Kind: InvalidUTF8, Index: i, Value: rune(b[i])}
			tracer().Debugf("decode failed: %v", err)
			return nil, err
		}
		scalars = append(scalars, r)
		i += size
	}
	return scalars, nil
}

// Valid reports whether scalars can be encoded, i.e. contain neither
// surrogates nor out-of-range values.
func Valid(scalars []rune) bool {
	for _, r := range scalars {
		if !utf8.ValidRune(r) {
			return false
		}
	}
	return true
}
