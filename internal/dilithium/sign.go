package dilithium

import (
	"github.com/pkg/errors"

	"github.com/dilithium-go/dilithium/internal/obs"
	"github.com/dilithium-go/dilithium/internal/pack"
	"github.com/dilithium-go/dilithium/internal/params"
	"github.com/dilithium-go/dilithium/internal/poly"
	"github.com/dilithium-go/dilithium/internal/sponge"
)

// Sign produces a deterministic signature over msg under sk, per
// spec.md §4.9. The masking-vector seed is derived entirely from sk and
// msg, so signing the same message twice with the same key yields the
// same signature.
func Sign(level params.Level, sk, msg []byte) ([]byte, error) {
	return sign(level, sk, msg, nil)
}

// SignWithRandom is Sign's non-deterministic counterpart: rnd, if
// non-nil, must be exactly 32 bytes of caller-supplied randomness mixed
// into the masking-vector seed, so repeated signatures over the same
// message do not reuse the same nonce stream (see DESIGN.md's Open
// Question decision on non-deterministic signing).
func SignWithRandom(level params.Level, sk, msg, rnd []byte) ([]byte, error) {
	if rnd != nil && len(rnd) != seedSize {
		return nil, errors.Wrapf(ErrInvalidInputLength, "random: got %d bytes, want %d", len(rnd), seedSize)
	}
	return sign(level, sk, msg, rnd)
}

func sign(level params.Level, sk, msg, rnd []byte) ([]byte, error) {
	p := params.For(level)
	if len(sk) != p.SkBytes {
		return nil, errors.Wrapf(ErrInvalidInputLength, "secret key: got %d bytes, want %d", len(sk), p.SkBytes)
	}

	rho, key, tr, s1c, s2c, t0c, err := pack.UnpackSK(sk, p)
	if err != nil {
		return nil, errors.Wrap(err, "sign: unpack secret key")
	}

	a := poly.ExpandA(rho, p)
	s1 := toNormalVec(s1c)
	s2 := toNormalVec(s2c)
	t0 := toNormalVec(t0c)
	s1Hat := poly.NTTVec(s1)
	s2Hat := poly.NTTVec(s2)
	t0Hat := poly.NTTVec(t0)

	mu := sponge.H256(concat(tr, msg), 64)

	var rho2Input []byte
	if rnd != nil {
		rho2Input = concat(key, rnd, mu)
	} else {
		rho2Input = concat(key, mu)
	}
	rho2 := sponge.H256(rho2Input, 64)

	for kappa := 0; kappa < maxSignAttempts; kappa++ {
		base := uint16(kappa * p.L)
		y := poly.ExpandMask(rho2, base, p)
		yHat := poly.NTTVec(y)

		w := poly.MatVecMulNTT(a, yHat)
		for i := range w {
			w[i] = poly.CaddQ(w[i])
		}

		w1 := make([]poly.Normal, p.K)
		w0 := make([]poly.Normal, p.K)
		for i := range w {
			w1[i], w0[i] = poly.Decompose(w[i], p.Gamma2, p.Scheme)
		}

		w1Packed := make([]byte, 0, p.K*p.PolyW1Bytes)
		for i := range w1 {
			w1Packed = append(w1Packed, pack.W1(w1[i].C[:], p.Scheme)...)
		}
		cTilde := sponge.H256(concat(mu, w1Packed), seedSize)

		c := poly.Challenge(cTilde, p.Tau)
		cHat := c.NTT()

		z := make([]poly.Normal, p.L)
		zOK := true
		for i := range s1Hat {
			cs1 := poly.Pointwise(cHat, s1Hat[i]).InvNTT()
			z[i] = poly.Add(y[i], cs1)
			if poly.Norm(z[i]) >= p.Gamma1-p.Beta {
				zOK = false
				break
			}
		}
		if !zOK {
			obs.Log.Debug().Int("kappa", kappa).Msg("rejected: z norm too large")
			continue
		}

		r0 := make([]poly.Normal, p.K)
		ct0 := make([]poly.Normal, p.K)
		r0OK := true
		for i := range s2Hat {
			cs2 := poly.Pointwise(cHat, s2Hat[i]).InvNTT()
			r0[i] = poly.CaddQ(poly.Sub(w0[i], cs2))
			if poly.Norm(r0[i]) >= p.Gamma2-p.Beta {
				r0OK = false
				break
			}
			ct0[i] = poly.Pointwise(cHat, t0Hat[i]).InvNTT()
			ct0[i] = poly.CaddQ(ct0[i])
			if poly.Norm(ct0[i]) >= p.Gamma2 {
				r0OK = false
				break
			}
		}
		if !r0OK {
			obs.Log.Debug().Int("kappa", kappa).Msg("rejected: r0/ct0 norm too large")
			continue
		}

		hint := make([][]int32, p.K)
		total := 0
		for i := range r0 {
			wFinal := poly.CaddQ(poly.Add(r0[i], ct0[i]))
			hint[i] = poly.MakeHint(wFinal, w1[i], p.Gamma2)
			for _, b := range hint[i] {
				total += int(b)
			}
		}
		if total > p.Omega {
			obs.Log.Debug().Int("kappa", kappa).Int("weight", total).Msg("rejected: hint weight too large")
			continue
		}

		zCoeffs := make([][]int32, p.L)
		for i := range z {
			zCoeffs[i] = z[i].C[:]
		}
		sig := pack.Sig(cTilde, zCoeffs, hint, p)
		obs.Log.Debug().Int("kappa", kappa).Msg("signature produced")
		return sig, nil
	}

	panic(errors.Wrapf(errRejectionLoopExceeded, "level %s", level))
}

func toNormalVec(coeffs [][]int32) []poly.Normal {
	out := make([]poly.Normal, len(coeffs))
	for i, c := range coeffs {
		var n poly.Normal
		copy(n.C[:], c)
		out[i] = n
	}
	return out
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
