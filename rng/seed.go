package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (Seed, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return Seed{}, fmt.Errorf("read random seed: %w", err)
	}
	return StringSeed(strconv.FormatUint(binary.LittleEndian.Uint64(b[:]), 10)), nil
}

// Auto creates a generator from a random seed, for scripts which do not
// care about reproducibility.
func Auto(opts ...Option) (*Rand, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed, opts...)
}
