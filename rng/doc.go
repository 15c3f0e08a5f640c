/*
Package rng produces deterministic pseudo-random sequences from a seed.

A generator is a pure function of its seed: two generators created from the
same seed and algorithm return bit-identical sequences of draws, on every
platform and in every run.

	r, _ := rng.New(rng.NumberSeed(42))
	x := r.Float()          // in [0, 1)
	n, _ := r.Range(1, 6)   // in [1, 6]

Seeds

Numeric seeds are converted to their decimal text first, i.e. NumberSeed(42)
and StringSeed("42") are the same seed. Seed texts are taken as UTF-16 code
units, so texts with isolated surrogates are valid seeds, too.

Algorithms

ARC4 is the default. It reproduces the widely used 'seedrandom' generator:
the seed's code units are mixed into a key of at most 256 bytes
(key[j mod 256] = ((smear ^= key[j mod 256]*19) + unit) mod 256), the key
initializes an RC4 state, 256 bytes of key stream are discarded, and each draw
consumes 7 or more key stream bytes to produce 52 significant bits.

ChaCha20 keys a ChaCha20 stream with the SHA-256 hash of the seed's code
units (UTF-16, little endian), using an all-zero nonce. Each draw takes the
next 8 bytes of key stream as a little-endian integer and keeps its upper 53
bits.

Ranges

Range(min, max) maps a draw d onto the inclusive range by
min + floor(d * (max-min+1)). Every value of the range is reachable and no
value outside of it is produced. Ranges wider than 2^53 values cannot be
covered by a single draw and are rejected.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package rng

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textprim.rng'
func tracer() tracing.Trace {
	return tracing.Select("textprim.rng")
}
