// Package poly lifts field and NTT operations to whole polynomials and to
// the K- and L-length vectors Dilithium works with, carrying the
// normal-vs-NTT domain as a type (spec.md §9's redesign flag) instead of
// as caller discipline.
package poly

import (
	"github.com/dilithium-go/dilithium/internal/field"
	"github.com/dilithium-go/dilithium/internal/ntt"
)

// Normal is a polynomial in coefficient (non-NTT) representation.
type Normal struct {
	C [field.N]int32
}

// NTTDomain is a polynomial in NTT representation. Normal.NTT and
// NTTDomain.InvNTT convert between the two; since they are distinct
// types, one can't be passed where the other is expected without an
// explicit conversion.
type NTTDomain struct {
	C [field.N]int32
}

// NTT transforms p into NTT domain, leaving p untouched.
func (p Normal) NTT() NTTDomain {
	c := p.C
	ntt.Forward(&c)
	return NTTDomain{c}
}

// InvNTT transforms p back into coefficient domain, leaving p untouched.
func (p NTTDomain) InvNTT() Normal {
	c := p.C
	ntt.Inverse(&c)
	return Normal{c}
}

// Add returns a+b coefficientwise mod Q.
func Add(a, b Normal) Normal {
	var r Normal
	for i := range r.C {
		s := a.C[i] + b.C[i]
		if s >= field.Q {
			s -= field.Q
		}
		r.C[i] = s
	}
	return r
}

// Sub returns a-b coefficientwise mod Q.
func Sub(a, b Normal) Normal {
	var r Normal
	for i := range r.C {
		d := a.C[i] - b.C[i]
		if d < 0 {
			d += field.Q
		}
		r.C[i] = d
	}
	return r
}

// Neg returns -a coefficientwise mod Q.
func Neg(a Normal) Normal {
	var r Normal
	for i := range r.C {
		if a.C[i] != 0 {
			r.C[i] = field.Q - a.C[i]
		}
	}
	return r
}

// Pointwise returns the coefficientwise (NTT-domain) product of a and b.
func Pointwise(a, b NTTDomain) NTTDomain {
	var r NTTDomain
	ntt.Pointwise(&a.C, &b.C, &r.C)
	return r
}

// Power2Round splits every coefficient of p via field.Power2Round.
func Power2Round(p Normal) (t1, t0 Normal) {
	for i, c := range p.C {
		a1, a0 := field.Power2Round(c)
		t1.C[i] = a1
		t0.C[i] = field.Freeze(a0)
	}
	return
}

// Decompose splits every coefficient of p via field.Decompose.
func Decompose(p Normal, gamma2 int32, scheme field.RoundingScheme) (hi, lo Normal) {
	for i, c := range p.C {
		a1, a0 := field.Decompose(c, gamma2, scheme)
		hi.C[i] = a1
		lo.C[i] = field.Freeze(a0)
	}
	return
}

// MakeHint returns, for each coefficient, 1 iff adding lo[i] back would
// carry the high bits, using the *centered* representative of lo.
func MakeHint(lo, hi Normal, gamma2 int32) []int32 {
	out := make([]int32, field.N)
	for i := range out {
		out[i] = int32(field.MakeHint(center(lo.C[i]), hi.C[i], gamma2))
	}
	return out
}

// UseHint reconstructs the corrected high bits of p given a hint vector.
func UseHint(p Normal, gamma2 int32, scheme field.RoundingScheme, hint []int32) Normal {
	var r Normal
	for i, c := range p.C {
		r.C[i] = field.UseHint(c, gamma2, scheme, uint32(hint[i]))
	}
	return r
}

// center maps a standard representative in [0,Q) to the centered
// representative in (-Q/2, Q/2].
func center(a int32) int32 {
	if a > (field.Q-1)/2 {
		return a - field.Q
	}
	return a
}

// Norm returns the infinity norm of p under the centered representative.
func Norm(p Normal) int32 {
	var n int32
	for _, c := range p.C {
		v := center(c)
		if v < 0 {
			v = -v
		}
		if v > n {
			n = v
		}
	}
	return n
}

// CaddQ applies field.CaddQ to every coefficient, used after a
// subtraction that may have gone negative.
func CaddQ(p Normal) Normal {
	var r Normal
	for i, c := range p.C {
		r.C[i] = field.CaddQ(c)
	}
	return r
}
