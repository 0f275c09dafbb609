package pack

import (
	"github.com/dilithium-go/dilithium/internal/field"
	"github.com/dilithium-go/dilithium/internal/params"
)

// T1 packs a polynomial whose coefficients already sit in [0, 2^10)
// (the high bits produced by Power2Round), 10 bits each.
func T1(cs []int32) []byte {
	return packBits(cs, 10)
}

// UnpackT1 is T1's inverse.
func UnpackT1(buf []byte) []int32 {
	return unpackBits(buf, field.N, 10)
}

// T0 packs a polynomial whose coefficients are the canonical [0,Q)
// representatives of values in (-2^(D-1), 2^(D-1)], via the centering
// offset 2^(D-1) - c mod Q, 13 bits each.
func T0(cs []int32) []byte {
	offset := make([]int32, len(cs))
	for i, c := range cs {
		offset[i] = field.Freeze((1 << (field.D - 1)) - c)
	}
	return packBits(offset, 13)
}

// UnpackT0 is T0's inverse, returning canonical [0,Q) representatives.
func UnpackT0(buf []byte) []int32 {
	offset := unpackBits(buf, field.N, 13)
	out := make([]int32, field.N)
	for i, v := range offset {
		out[i] = field.Freeze((1 << (field.D - 1)) - v)
	}
	return out
}

func etaWidth(eta int32) int {
	if eta == 2 {
		return 3
	}
	return 4
}

// Eta packs a polynomial with coefficients in [-eta, eta] (centered
// representatives, i.e. either in [0, eta] or [Q-eta, Q-1]) via the
// offset eta - c mod Q.
func Eta(cs []int32, eta int32) []byte {
	width := etaWidth(eta)
	offset := make([]int32, len(cs))
	for i, c := range cs {
		offset[i] = field.Freeze(eta - c)
	}
	return packBits(offset, width)
}

// UnpackEta is Eta's inverse.
func UnpackEta(buf []byte, eta int32) []int32 {
	width := etaWidth(eta)
	offset := unpackBits(buf, field.N, width)
	out := make([]int32, field.N)
	for i, v := range offset {
		out[i] = field.Freeze(eta - v)
	}
	return out
}

func gamma1Width(gamma1 int32) int {
	if gamma1 == 1<<17 {
		return 18
	}
	return 20
}

// Z packs a polynomial with coefficients in (-gamma1, gamma1] via the
// offset gamma1 - c mod Q.
func Z(cs []int32, gamma1 int32) []byte {
	width := gamma1Width(gamma1)
	offset := make([]int32, len(cs))
	for i, c := range cs {
		offset[i] = field.Freeze(gamma1 - c)
	}
	return packBits(offset, width)
}

// UnpackZ is Z's inverse.
func UnpackZ(buf []byte, gamma1 int32) []int32 {
	width := gamma1Width(gamma1)
	offset := unpackBits(buf, field.N, width)
	out := make([]int32, field.N)
	for i, v := range offset {
		out[i] = field.Freeze(gamma1 - v)
	}
	return out
}

// UnpackGamma1 decodes a masking-vector polynomial straight out of raw
// XOF output, applying the same inverse transform as UnpackZ: the XOF
// squeeze is treated as if it were already a packed gamma1 polynomial,
// per spec.md §4.5 ("streams SHAKE256 ... then unpacks via the γ1-packing
// inverse").
func UnpackGamma1(buf []byte, p params.Params) [field.N]int32 {
	var out [field.N]int32
	copy(out[:], UnpackZ(buf, p.Gamma1))
	return out
}

func w1Width(scheme field.RoundingScheme) int {
	if scheme == field.Scheme88 {
		return 6
	}
	return 4
}

// W1 packs the high-bits commitment polynomial, 4 or 6 bits per
// coefficient depending on the rounding scheme in force.
func W1(cs []int32, scheme field.RoundingScheme) []byte {
	return packBits(cs, w1Width(scheme))
}

// UnpackW1 is W1's inverse.
func UnpackW1(buf []byte, scheme field.RoundingScheme) []int32 {
	return unpackBits(buf, field.N, w1Width(scheme))
}
