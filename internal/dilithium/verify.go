package dilithium

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/dilithium-go/dilithium/internal/field"
	"github.com/dilithium-go/dilithium/internal/obs"
	"github.com/dilithium-go/dilithium/internal/pack"
	"github.com/dilithium-go/dilithium/internal/params"
	"github.com/dilithium-go/dilithium/internal/poly"
	"github.com/dilithium-go/dilithium/internal/sponge"
)

// Verify checks sig against pk and msg, per spec.md §4.10. It returns
// nil only when the signature is well-formed and valid. A public key or
// signature of the wrong length yields ErrInvalidInputLength, a malformed
// hint encoding yields ErrInvalidSignatureEncoding, and a norm bound
// exceeded or a commitment mismatch yields ErrVerificationFailed.
func Verify(level params.Level, pk, msg, sig []byte) error {
	p := params.For(level)
	if len(pk) != p.PkBytes {
		return errors.Wrapf(ErrInvalidInputLength, "public key: got %d bytes, want %d", len(pk), p.PkBytes)
	}
	if len(sig) != p.SigBytes {
		return errors.Wrapf(ErrInvalidInputLength, "signature: got %d bytes, want %d", len(sig), p.SigBytes)
	}

	rho, t1c, err := pack.UnpackPK(pk, p)
	if err != nil {
		return errors.Wrap(err, "verify: unpack public key")
	}
	cTilde, zc, hint, err := pack.UnpackSig(sig, p)
	if err != nil {
		return errors.Wrap(ErrInvalidSignatureEncoding, err.Error())
	}

	z := toNormalVec(zc)
	for i := range z {
		if poly.Norm(z[i]) >= p.Gamma1-p.Beta {
			obs.Log.Debug().Msg("verify failed: z norm too large")
			return ErrVerificationFailed
		}
	}
	if pack.PopCount(hint) > p.Omega {
		obs.Log.Debug().Msg("verify failed: hint weight too large")
		return ErrVerificationFailed
	}

	tr := sponge.H256(pk, seedSize)
	mu := sponge.H256(concat(tr, msg), 64)

	c := poly.Challenge(cTilde, p.Tau)
	cHat := c.NTT()

	a := poly.ExpandA(rho, p)
	zHat := poly.NTTVec(z)
	azHat := poly.MatVecMulNTTRaw(a, zHat)

	w1 := make([]poly.Normal, p.K)
	for i := range azHat {
		t1Shifted := shiftT1(t1c[i])
		ct1Hat := poly.Pointwise(cHat, t1Shifted.NTT())
		wPrime := poly.SubNTT(azHat[i], ct1Hat).InvNTT()
		wPrime = poly.CaddQ(wPrime)
		w1[i] = poly.UseHint(wPrime, p.Gamma2, p.Scheme, hint[i])
	}

	w1Packed := make([]byte, 0, p.K*p.PolyW1Bytes)
	for i := range w1 {
		w1Packed = append(w1Packed, pack.W1(w1[i].C[:], p.Scheme)...)
	}
	cTilde2 := sponge.H256(concat(mu, w1Packed), seedSize)

	if !bytes.Equal(cTilde, cTilde2) {
		obs.Log.Debug().Msg("verify failed: commitment mismatch")
		return ErrVerificationFailed
	}
	return nil
}

// shiftT1 returns the polynomial with coefficients t1[i]*2^D mod Q, the
// "t1 * 2^D" term the verifier needs in NTT domain alongside A*z.
func shiftT1(t1 []int32) poly.Normal {
	var p poly.Normal
	for i, c := range t1 {
		p.C[i] = field.Freeze(c << field.D)
	}
	return p
}
