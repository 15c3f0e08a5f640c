package rng

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/textprim"
	"github.com/npillmayer/textprim/codeunit"
)

// RngError is an error type for the rng package.
type RngError string

func (e RngError) Error() string {
	return string(e)
}

// ErrInvalidRange is flagged if the lower bound of a range exceeds the upper.
const ErrInvalidRange = RngError("rng: invalid range, min > max")

// ErrRangeTooWide is flagged for ranges of more than 2^53 values.
const ErrRangeTooWide = RngError("rng: range too wide for a single draw")

// ErrUnknownAlgorithm is flagged for algorithm names not known to this package.
const ErrUnknownAlgorithm = RngError("rng: unknown algorithm")

const maxSpan = 1 << 53

// Algorithm selects the generator behind a Rand.
type Algorithm uint8

// Supported algorithms.
const (
	ARC4 Algorithm = iota
	ChaCha20
)

func (a Algorithm) String() string {
	switch a {
	case ARC4:
		return "arc4"
	case ChaCha20:
		return "chacha20"
	}
	return "<unknown algorithm>"
}

// ParseAlgorithm returns the algorithm for a name as printed by
// Algorithm.String. Case is ignored, and "rc4" is accepted for ARC4.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "arc4", "rc4", "":
		return ARC4, nil
	case "chacha20", "chacha":
		return ChaCha20, nil
	}
	return ARC4, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Seed is the initial input of a generator.
type Seed struct {
	text codeunit.String
}

// NumberSeed creates a seed from a number, using its decimal text.
func NumberSeed(x float64) Seed {
	return Seed{text: textprim.FormatNumber(x).Str()}
}

// TextSeed creates a seed from a code-unit string.
func TextSeed(s codeunit.String) Seed {
	return Seed{text: s}
}

// StringSeed creates a seed from a Go string.
func StringSeed(s string) Seed {
	return Seed{text: codeunit.FromString(s)}
}

func (s Seed) String() string {
	return s.text.String()
}

// source produces uniformly distributed floats in [0, 1).
type source interface {
	float() float64
}

// Rand is a seeded pseudo-random generator.
//
// A Rand is not safe for concurrent use; clients have to serialize calls.
type Rand struct {
	algo Algorithm
	src  source
}

type config struct {
	algo Algorithm
}

// Option configures a generator.
type Option func(*config)

// WithAlgorithm selects the algorithm of a generator. The default is ARC4.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) {
		c.algo = a
	}
}

// New creates a generator from seed.
func New(seed Seed, opts ...Option) (*Rand, error) {
	conf := config{algo: ARC4}
	for _, opt := range opts {
		opt(&conf)
	}
	r := &Rand{algo: conf.algo}
	switch conf.algo {
	case ARC4:
		r.src = newARC4(seed.text)
	case ChaCha20:
		src, err := newChaCha(seed.text)
		if err != nil {
			return nil, err
		}
		r.src = src
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, conf.algo)
	}
	tracer().Debugf("new %s generator for seed %q", conf.algo, seed)
	return r, nil
}

// Algorithm returns the algorithm of r.
func (r *Rand) Algorithm() Algorithm {
	return r.algo
}

// Float returns the next draw, a float in [0, 1).
func (r *Rand) Float() float64 {
	return r.src.float()
}

// Range returns an integer in the inclusive range [min, max], computed as
// min + floor(Float() * (max-min+1)).
//
// If min > max, ErrInvalidRange is returned. Ranges of more than 2^53
// values return ErrRangeTooWide. In both cases no draw is consumed.
func (r *Rand) Range(min, max int64) (int64, error) {
	if min > max {
		return 0, ErrInvalidRange
	}
	span := uint64(max) - uint64(min) + 1 // 0 for the full int64 range
	if span == 0 || span > maxSpan {
		return 0, ErrRangeTooWide
	}
	off := uint64(r.Float() * float64(span))
	if off >= span {
		off = span - 1
	}
	return int64(uint64(min) + off), nil
}
