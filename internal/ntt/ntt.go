// Package ntt provides the Number Theoretic Transform over Z_q used to
// multiply Dilithium ring elements in O(N log N).
package ntt

import "github.com/dilithium-go/dilithium/internal/field"

// Zetas[i] = zeta^brv(i+1) mod Q, the forward NTT twiddle table.
var Zetas [field.N]int32

// InvZetas is the matching inverse-NTT twiddle table.
var InvZetas [field.N]int32

// Inv2 is the modular inverse of 2.
var Inv2 int32

func init() {
	for i := 0; i < field.N; i++ {
		Zetas[i] = field.Exp(field.Zeta, uint32(field.Brv(uint8(i+1))))
	}

	invZeta := field.Exp(field.Zeta, uint32(field.Q-2))
	for i := 0; i < field.N; i++ {
		exp := 256 - int(field.Brv(uint8(255-i)))
		InvZetas[i] = field.Exp(invZeta, uint32(exp))
	}

	Inv2 = field.Exp(2, uint32(field.Q-2))
}

// Forward computes the NTT of cs in place. Input and output are standard
// representatives.
func Forward(cs *[field.N]int32) {
	layer := field.N / 2
	zi := 0
	for layer >= 1 {
		for offset := 0; offset < field.N-layer; offset += 2 * layer {
			z := Zetas[zi]
			zi++
			for j := offset; j < offset+layer; j++ {
				t := mulMod(z, cs[j+layer])
				cs[j+layer] = subMod(cs[j], t)
				cs[j] = addMod(cs[j], t)
			}
		}
		layer /= 2
	}
}

// Inverse computes the inverse NTT of cs in place.
func Inverse(cs *[field.N]int32) {
	layer := 1
	zi := 0
	for layer < field.N {
		for offset := 0; offset < field.N-layer; offset += 2 * layer {
			z := InvZetas[zi]
			zi++
			inv2z := mulMod(Inv2, z)
			for j := offset; j < offset+layer; j++ {
				t := subMod(cs[j], cs[j+layer])
				cs[j] = mulMod(Inv2, addMod(cs[j], cs[j+layer]))
				cs[j+layer] = mulMod(inv2z, t)
			}
		}
		layer *= 2
	}
}

// Pointwise computes the componentwise product of two polynomials already
// in NTT domain, result in standard (non-Montgomery) representatives.
func Pointwise(a, b, result *[field.N]int32) {
	for i := 0; i < field.N; i++ {
		result[i] = mulMod(a[i], b[i])
	}
}

func addMod(a, b int32) int32 {
	s := a + b
	if s >= field.Q {
		s -= field.Q
	}
	return s
}

func subMod(a, b int32) int32 {
	d := a - b
	if d < 0 {
		d += field.Q
	}
	return d
}

func mulMod(a, b int32) int32 {
	return int32((int64(a) * int64(b)) % int64(field.Q))
}
