// Package sample implements Dilithium's rejection samplers: uniform
// polynomials (for the public matrix), eta-bounded polynomials (for the
// secret vectors), gamma1-bounded polynomials (for the masking vector),
// and the sparse +-1 challenge polynomial.
package sample

import (
	"github.com/dilithium-go/dilithium/internal/field"
	"github.com/dilithium-go/dilithium/internal/pack"
	"github.com/dilithium-go/dilithium/internal/params"
	"github.com/dilithium-go/dilithium/internal/sponge"
)

// RejUniform reads 3-byte little-endian chunks from buf, masks to 23
// bits, and appends every value below Q to out until out is full or buf
// is exhausted. Returns the number of coefficients written.
func RejUniform(out []int32, buf []byte) int {
	n := 0
	for idx := 0; idx+3 <= len(buf) && n < len(out); idx += 3 {
		d := int32(buf[idx]) | int32(buf[idx+1])<<8 | int32(buf[idx+2])<<16
		d &= 0x7FFFFF
		if d < field.Q {
			out[n] = d
			n++
		}
	}
	return n
}

// PolyUniform samples a uniform polynomial from Stream128(seed, nonce),
// squeezing additional blocks until all N coefficients are accepted.
func PolyUniform(seed []byte, nonce uint16) [field.N]int32 {
	var cs [field.N]int32
	s := sponge.Stream128(seed, nonce)

	const blocks = 5 // ceil(N*3/Rate128) with slack for rejections
	buf := make([]byte, blocks*sponge.Rate128)
	s.SqueezeBlocks(sponge.Rate128, blocks, buf)

	n := RejUniform(cs[:], buf)
	for n < field.N {
		extra := make([]byte, sponge.Rate128)
		s.SqueezeBlocks(sponge.Rate128, 1, extra)
		n += RejUniform(cs[n:], extra)
	}
	return cs
}

// rejEta2 maps a nibble < 15 to a coefficient in [-2, 2], mod Q. Values
// >= 15 are rejected by the caller.
func rejEta2(t uint8) (int32, bool) {
	if t >= 15 {
		return 0, false
	}
	v := int32(2) - (int32(t) - (int32(205)*int32(t)>>10)*5)
	return field.Freeze(v), true
}

// rejEta4 maps a nibble < 9 to a coefficient in [-4, 4], mod Q. Values
// >= 9 are rejected by the caller.
func rejEta4(t uint8) (int32, bool) {
	if t >= 9 {
		return 0, false
	}
	return field.Freeze(4 - int32(t)), true
}

// PolyUniformEta samples a polynomial with coefficients in [-eta, eta]
// from Stream256(seed, nonce).
func PolyUniformEta(seed []byte, nonce uint16, eta int32) [field.N]int32 {
	var cs [field.N]int32
	s := sponge.Stream256(seed, nonce)

	blocks := 2
	if eta == 2 {
		blocks = 1
	}
	buf := make([]byte, blocks*sponge.Rate256)
	s.SqueezeBlocks(sponge.Rate256, blocks, buf)

	n := 0
	consume := func(buf []byte) {
		for i := 0; i < len(buf) && n < field.N; i++ {
			nibbles := [2]uint8{buf[i] & 15, buf[i] >> 4}
			for _, t := range nibbles {
				if n >= field.N {
					break
				}
				var v int32
				var ok bool
				if eta == 2 {
					v, ok = rejEta2(t)
				} else {
					v, ok = rejEta4(t)
				}
				if ok {
					cs[n] = v
					n++
				}
			}
		}
	}
	consume(buf)
	for n < field.N {
		extra := make([]byte, sponge.Rate256)
		s.SqueezeBlocks(sponge.Rate256, 1, extra)
		consume(extra)
	}
	return cs
}

// PolyUniformGamma1 samples a polynomial with coefficients in
// (-gamma1, gamma1] from Stream256(seed, nonce), by squeezing exactly the
// packed-width blocks and unpacking via the gamma1 codec.
func PolyUniformGamma1(seed []byte, nonce uint16, p params.Params) [field.N]int32 {
	s := sponge.Stream256(seed, nonce)
	buf := make([]byte, p.PolyZBytes)
	blocks := (len(buf) + sponge.Rate256 - 1) / sponge.Rate256
	padded := make([]byte, blocks*sponge.Rate256)
	s.SqueezeBlocks(sponge.Rate256, blocks, padded)
	copy(buf, padded)
	return pack.UnpackGamma1(buf, p)
}

// Challenge samples the tau-sparse +-1 challenge polynomial from a
// 32-byte seed, via SHAKE256 and a Fisher-Yates shuffle over the last
// tau positions (spec.md §4.5).
func Challenge(seed []byte, tau int) [field.N]int32 {
	var c [field.N]int32

	s := sponge.Stream256WithoutNonce(seed)
	var signBuf [8]byte
	s.Squeeze(signBuf[:])
	signs := uint64(0)
	for i := 0; i < 8; i++ {
		signs |= uint64(signBuf[i]) << (8 * i)
	}

	var buf [1]byte
	for i := field.N - tau; i < field.N; i++ {
		var b byte
		for {
			s.Squeeze(buf[:])
			b = buf[0]
			if int(b) <= i {
				break
			}
		}
		c[i] = c[b]
		if signs&1 != 0 {
			c[b] = field.Q - 1
		} else {
			c[b] = 1
		}
		signs >>= 1
	}
	return c
}
