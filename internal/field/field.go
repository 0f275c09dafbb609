// Package field provides modular arithmetic over Z_q for Dilithium, where
// q = 8380417 = 2^23 - 2^13 + 1.
package field

const (
	// Q is the prime modulus.
	Q int32 = 8380417

	// N is the polynomial degree (ring is Z_q[x]/<x^256+1>).
	N = 256

	// D is the number of bits dropped by Power2Round.
	D = 13

	// Zeta is a primitive 512th root of unity mod Q, used to build the
	// NTT twiddle table.
	Zeta = 1753

	// qinv = q^(-1) mod 2^32, used by MontReduce.
	qinv uint32 = 58728449
)

// MontReduce computes r ≡ a·R^(-1) (mod Q) for R = 2^32, given
// |a| < Q·2^31. The result satisfies |r| < Q.
func MontReduce(a int64) int32 {
	t := int32(int64(int32(a)) * int64(qinv))
	return int32((a - int64(t)*int64(Q)) >> 32)
}

// Reduce32 reduces a with |a| <= 2^31 - 2^22 - 1 to a representative r
// with -6283009 <= r <= 6283008 and r ≡ a (mod Q).
func Reduce32(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*Q
}

// CaddQ conditionally adds Q to a negative a, branch-free.
func CaddQ(a int32) int32 {
	return a + ((a >> 31) & Q)
}

// Freeze reduces a to the standard representative in [0, Q).
func Freeze(a int32) int32 {
	return CaddQ(Reduce32(a))
}

// ToMont converts a standard representative to Montgomery form, a·R mod Q.
func ToMont(a int32) int32 {
	const r2ModQ = 2365951 // R^2 mod Q
	return MontReduce(int64(a) * r2ModQ)
}

// MulMont computes the Montgomery product of a and b: if a is in
// Montgomery form and b is a plain residue, returns a*b in plain form; if
// both are Montgomery, returns (a*b) in Montgomery form.
func MulMont(a, b int32) int32 {
	return MontReduce(int64(a) * int64(b))
}

// Power2Round splits a standard representative a into a1, a0 such that
// a = a1*2^D + a0, with a0 in (-2^(D-1), 2^(D-1)].
func Power2Round(a int32) (a1, a0 int32) {
	a1 = (a + (1 << (D - 1)) - 1) >> D
	a0 = a - (a1 << D)
	return
}

// RoundingScheme distinguishes the two Decompose/MakeHint/UseHint variants
// used across security levels, selected by Gamma2.
type RoundingScheme int

const (
	Scheme88 RoundingScheme = iota
	Scheme32
)

// Decompose splits a standard representative a into (a1, a0) with
// a ≡ a1*(2*gamma2) + a0 (mod Q) and |a0| <= gamma2, applying the
// boundary rule of the given scheme.
func Decompose(a, gamma2 int32, scheme RoundingScheme) (a1, a0 int32) {
	a1 = (a + 127) >> 7
	switch scheme {
	case Scheme32:
		a1 = (a1*1025 + (1 << 21)) >> 22
		a1 &= 15
	case Scheme88:
		a1 = (a1*11275 + (1 << 23)) >> 24
		a1 ^= ((43 - a1) >> 31) & a1
	}
	a0 = a - a1*2*gamma2
	a0 -= (((Q-1)/2 - a0) >> 31) & Q
	return
}

// MakeHint returns 1 iff adding a0 back into the high bits would carry,
// per spec.md §4.3.
func MakeHint(a0, a1, gamma2 int32) uint32 {
	if a0 > gamma2 || a0 < -gamma2 || (a0 == -gamma2 && a1 != 0) {
		return 1
	}
	return 0
}

// UseHint reconstructs the corrected high bits of a given a hint bit.
func UseHint(a, gamma2 int32, scheme RoundingScheme, hint uint32) int32 {
	a1, a0 := Decompose(a, gamma2, scheme)
	if hint == 0 {
		return a1
	}
	switch scheme {
	case Scheme32:
		if a0 > 0 {
			return (a1 + 1) & 15
		}
		return (a1 - 1) & 15
	case Scheme88:
		if a0 > 0 {
			if a1 == 43 {
				return 0
			}
			return a1 + 1
		}
		if a1 == 0 {
			return 43
		}
		return a1 - 1
	}
	return a1
}

// Exp returns a^e mod Q using binary exponentiation, used only to build
// the NTT twiddle table at init time.
func Exp(a int32, e uint32) int32 {
	result := int64(1)
	base := int64(Freeze(a))
	for e > 0 {
		if e&1 == 1 {
			result = (result * base) % int64(Q)
		}
		base = (base * base) % int64(Q)
		e >>= 1
	}
	return int32(result)
}

// Brv reverses an 8-bit index, used to place NTT twiddles in
// bit-reversed order.
func Brv(x uint8) uint8 {
	x = (x&0xF0)>>4 | (x&0x0F)<<4
	x = (x&0xCC)>>2 | (x&0x33)<<2
	x = (x&0xAA)>>1 | (x&0x55)<<1
	return x
}
