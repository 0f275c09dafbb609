package dilithium

import (
	"github.com/pkg/errors"

	"github.com/dilithium-go/dilithium/internal/obs"
	"github.com/dilithium-go/dilithium/internal/pack"
	"github.com/dilithium-go/dilithium/internal/params"
	"github.com/dilithium-go/dilithium/internal/poly"
	"github.com/dilithium-go/dilithium/internal/sponge"
)

const seedSize = 32

// KeyGen derives a public/secret key pair for the given level from a
// 32-byte seed, per spec.md §4.8. The same seed always yields the same
// key pair.
func KeyGen(level params.Level, seed []byte) (pk, sk []byte, err error) {
	if len(seed) != seedSize {
		return nil, nil, errors.Wrapf(ErrInvalidInputLength, "seed: got %d bytes, want %d", len(seed), seedSize)
	}
	p := params.For(level)

	expanded := sponge.H256(seed, seedSize+64+seedSize)
	rho := expanded[:seedSize]
	rho2 := expanded[seedSize : seedSize+64]
	key := expanded[seedSize+64:]

	a := poly.ExpandA(rho, p)
	s1, s2 := poly.ExpandS(rho2, p)

	s1Hat := poly.NTTVec(s1)
	t := poly.MatVecMulNTT(a, s1Hat)
	for i := range t {
		t[i] = poly.CaddQ(poly.Add(t[i], s2[i]))
	}

	t1 := make([][]int32, p.K)
	t0 := make([][]int32, p.K)
	for i := range t {
		hi, lo := poly.Power2Round(t[i])
		t1[i] = hi.C[:]
		t0[i] = lo.C[:]
	}

	pk = pack.PK(rho, t1, p)
	tr := sponge.H256(pk, seedSize)

	s1Coeffs := make([][]int32, p.L)
	for i := range s1 {
		s1Coeffs[i] = s1[i].C[:]
	}
	s2Coeffs := make([][]int32, p.K)
	for i := range s2 {
		s2Coeffs[i] = s2[i].C[:]
	}
	sk = pack.SK(rho, key, tr, s1Coeffs, s2Coeffs, t0, p)

	obs.Log.Debug().Str("level", level.String()).Msg("key pair generated")
	return pk, sk, nil
}
