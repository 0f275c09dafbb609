package poly

import (
	"github.com/dilithium-go/dilithium/internal/field"
	"github.com/dilithium-go/dilithium/internal/params"
	"github.com/dilithium-go/dilithium/internal/sample"
)

// Matrix is a K×L matrix of polynomials in NTT domain.
type Matrix [][]NTTDomain

// ExpandA samples the public matrix A from the 32-byte seed rho, one
// uniform polynomial per (i,j) cell keyed by nonce i<<8|j, per spec.md
// §4.6. The sampled coefficients are taken directly as the cell's NTT
// representation; no transform is applied.
func ExpandA(rho []byte, p params.Params) Matrix {
	a := make(Matrix, p.K)
	for i := 0; i < p.K; i++ {
		a[i] = make([]NTTDomain, p.L)
		for j := 0; j < p.L; j++ {
			nonce := uint16(i)<<8 | uint16(j)
			c := sample.PolyUniform(rho, nonce)
			a[i][j] = NTTDomain{c}
		}
	}
	return a
}

// ExpandS samples the secret vectors s1 (length L) and s2 (length K)
// from a 64-byte seed, consecutive nonces 0..L+K-1.
func ExpandS(rho2 []byte, p params.Params) (s1, s2 []Normal) {
	s1 = make([]Normal, p.L)
	for i := 0; i < p.L; i++ {
		s1[i] = Normal{sample.PolyUniformEta(rho2, uint16(i), p.Eta)}
	}
	s2 = make([]Normal, p.K)
	for i := 0; i < p.K; i++ {
		s2[i] = Normal{sample.PolyUniformEta(rho2, uint16(p.L+i), p.Eta)}
	}
	return
}

// ExpandMask samples the masking vector y (length L) from a 64-byte
// seed and a running nonce, one SHAKE256 stream per coefficient vector
// entry, nonces base..base+L-1.
func ExpandMask(seed []byte, base uint16, p params.Params) []Normal {
	y := make([]Normal, p.L)
	for i := 0; i < p.L; i++ {
		y[i] = Normal{sample.PolyUniformGamma1(seed, base+uint16(i), p)}
	}
	return y
}

// Challenge samples the tau-sparse +-1 challenge polynomial from a
// 32-byte seed.
func Challenge(seed []byte, tau int) Normal {
	return Normal{sample.Challenge(seed, tau)}
}

// MatVecMulNTTRaw computes A*v for A a K×L matrix and v an L-length
// vector, both in NTT domain, leaving the K-length result in NTT domain
// so the caller can combine it with another NTT-domain term (e.g. the
// verifier's ĉ·t1 subtraction) before paying for a single inverse
// transform.
func MatVecMulNTTRaw(a Matrix, v []NTTDomain) []NTTDomain {
	k := len(a)
	out := make([]NTTDomain, k)
	for i := 0; i < k; i++ {
		var acc [field.N]int64
		for j := range v {
			prod := Pointwise(a[i][j], v[j])
			for c := 0; c < field.N; c++ {
				acc[c] += int64(prod.C[c])
			}
		}
		for c := 0; c < field.N; c++ {
			out[i].C[c] = int32(acc[c] % int64(field.Q))
		}
	}
	return out
}

// MatVecMulNTT is MatVecMulNTTRaw followed by an inverse transform of
// every row, back in coefficient domain.
func MatVecMulNTT(a Matrix, v []NTTDomain) []Normal {
	raw := MatVecMulNTTRaw(a, v)
	out := make([]Normal, len(raw))
	for i, r := range raw {
		out[i] = r.InvNTT()
	}
	return out
}

// SubNTT returns a-b coefficientwise, both in NTT domain.
func SubNTT(a, b NTTDomain) NTTDomain {
	var r NTTDomain
	for i := range r.C {
		d := a.C[i] - b.C[i]
		if d < 0 {
			d += field.Q
		}
		r.C[i] = d
	}
	return r
}

// NTTVec transforms every element of v into NTT domain.
func NTTVec(v []Normal) []NTTDomain {
	out := make([]NTTDomain, len(v))
	for i, p := range v {
		out[i] = p.NTT()
	}
	return out
}
