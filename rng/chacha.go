package rng

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/npillmayer/textprim/codeunit"
	"golang.org/x/crypto/chacha20"
)

const blockSize = 64

// chachaSource draws from a ChaCha20 key stream.
type chachaSource struct {
	cipher *chacha20.Cipher
	block  [blockSize]byte
	pos    int
}

func newChaCha(seed codeunit.String) (*chachaSource, error) {
	raw := make([]byte, 2*seed.Len())
	for i := 0; i < seed.Len(); i++ {
		u, _ := seed.At(i)
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}
	key := sha256.Sum256(raw)
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("rng: init chacha20: %w", err)
	}
	return &chachaSource{cipher: c, pos: blockSize}, nil
}

func (c *chachaSource) uint64() uint64 {
	if c.pos+8 > blockSize {
		clear(c.block[:])
		c.cipher.XORKeyStream(c.block[:], c.block[:])
		c.pos = 0
	}
	v := binary.LittleEndian.Uint64(c.block[c.pos:])
	c.pos += 8
	return v
}

func (c *chachaSource) float() float64 {
	return float64(c.uint64()>>11) / (1 << 53)
}
