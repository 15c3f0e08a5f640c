package rng

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/textprim/codeunit"
)

const (
	width        = 256
	mask         = width - 1
	chunks       = 6
	startdenom   = 1 << (8 * chunks) // 2^48
	significance = 1 << 52
	overflow     = significance * 2
)

// arc4 is the RC4 key stream generator of 'seedrandom'.
type arc4 struct {
	i, j uint8
	s    [width]uint8
}

// mixKey folds the code units of a seed into a key of at most 256 bytes.
func mixKey(seed codeunit.String) []uint8 {
	n := min(seed.Len(), width)
	key := make([]uint8, n)
	smear := int32(0)
	for j := 0; j < seed.Len(); j++ {
		u, _ := seed.At(j)
		smear ^= int32(key[j&mask]) * 19
		key[j&mask] = uint8((smear + int32(u)) & mask)
	}
	return key
}

func newARC4(seed codeunit.String) *arc4 {
	key := mixKey(seed)
	if len(key) == 0 {
		key = []uint8{0}
	}
	a := &arc4{}
	for i := range a.s {
		a.s[i] = uint8(i)
	}
	var j uint8
	for i := 0; i < width; i++ {
		t := a.s[i]
		j += key[i%len(key)] + t
		a.s[i], a.s[j] = a.s[j], t
	}
	a.next(width)
	return a
}

// next returns the following count bytes of key stream as a big-endian
// number. Only the last 8 bytes of longer runs are kept.
func (a *arc4) next(count int) uint64 {
	var r uint64
	i, j := a.i, a.j
	for ; count > 0; count-- {
		i++
		t := a.s[i]
		j += t
		a.s[i] = a.s[j]
		a.s[j] = t
		r = r*width + uint64(a.s[a.s[i]+a.s[j]])
	}
	a.i, a.j = i, j
	return r
}

func (a *arc4) float() float64 {
	n := float64(a.next(chunks))
	d := float64(startdenom)
	x := uint64(0)
	for n < significance {
		n = (n + float64(x)) * width
		d *= width
		x = a.next(1)
	}
	for n >= overflow {
		n /= 2
		d /= 2
		x >>= 1
	}
	return (n + float64(x)) / d
}
