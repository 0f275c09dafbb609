package pack

import (
	"github.com/pkg/errors"

	"github.com/dilithium-go/dilithium/internal/field"
	"github.com/dilithium-go/dilithium/internal/params"
)

// ErrWrongLength is returned by any Unpack* frame function when the
// input does not have the exact byte length the level declares.
var ErrWrongLength = errors.New("pack: wrong input length")

const seedBytes = 32

// PK packs a public key: rho(32) || t1[0..K).
func PK(rho []byte, t1 [][]int32, p params.Params) []byte {
	out := make([]byte, 0, p.PkBytes)
	out = append(out, rho...)
	for i := 0; i < p.K; i++ {
		out = append(out, T1(t1[i])...)
	}
	return out
}

// UnpackPK is PK's inverse.
func UnpackPK(buf []byte, p params.Params) (rho []byte, t1 [][]int32, err error) {
	if len(buf) != p.PkBytes {
		return nil, nil, errors.Wrapf(ErrWrongLength, "public key: got %d, want %d", len(buf), p.PkBytes)
	}
	rho = append([]byte(nil), buf[:seedBytes]...)
	t1 = make([][]int32, p.K)
	const t1Bytes = 320
	off := seedBytes
	for i := 0; i < p.K; i++ {
		t1[i] = UnpackT1(buf[off : off+t1Bytes])
		off += t1Bytes
	}
	return rho, t1, nil
}

// SK packs a secret key: rho(32) || key(32) || tr(32) ||
// packEta(s1) || packEta(s2) || packT0(t0).
func SK(rho, key, tr []byte, s1, s2, t0 [][]int32, p params.Params) []byte {
	out := make([]byte, 0, p.SkBytes)
	out = append(out, rho...)
	out = append(out, key...)
	out = append(out, tr...)
	for i := 0; i < p.L; i++ {
		out = append(out, Eta(s1[i], p.Eta)...)
	}
	for i := 0; i < p.K; i++ {
		out = append(out, Eta(s2[i], p.Eta)...)
	}
	for i := 0; i < p.K; i++ {
		out = append(out, T0(t0[i])...)
	}
	return out
}

// UnpackSK is SK's inverse.
func UnpackSK(buf []byte, p params.Params) (rho, key, tr []byte, s1, s2, t0 [][]int32, err error) {
	if len(buf) != p.SkBytes {
		return nil, nil, nil, nil, nil, nil, errors.Wrapf(ErrWrongLength, "secret key: got %d, want %d", len(buf), p.SkBytes)
	}
	off := 0
	next := func(n int) []byte {
		b := buf[off : off+n]
		off += n
		return b
	}
	rho = append([]byte(nil), next(seedBytes)...)
	key = append([]byte(nil), next(seedBytes)...)
	tr = append([]byte(nil), next(seedBytes)...)

	s1 = make([][]int32, p.L)
	for i := 0; i < p.L; i++ {
		s1[i] = UnpackEta(next(p.PolyEtaBytes), p.Eta)
	}
	s2 = make([][]int32, p.K)
	for i := 0; i < p.K; i++ {
		s2[i] = UnpackEta(next(p.PolyEtaBytes), p.Eta)
	}
	const t0Bytes = 416
	t0 = make([][]int32, p.K)
	for i := 0; i < p.K; i++ {
		t0[i] = UnpackT0(next(t0Bytes))
	}
	return rho, key, tr, s1, s2, t0, nil
}

// Sig packs a signature: cTilde(32) || z[0..L) || hint.
func Sig(cTilde []byte, z [][]int32, hint [][]int32, p params.Params) []byte {
	out := make([]byte, 0, p.SigBytes)
	out = append(out, cTilde...)
	for i := 0; i < p.L; i++ {
		out = append(out, Z(z[i], p.Gamma1)...)
	}
	out = append(out, Hint(hint, p.Omega, p.K)...)
	return out
}

// UnpackSig is Sig's inverse. A malformed hint section (per
// UnpackHint's rules) is reported distinctly from a wrong overall
// length, matching spec.md §7's three failure kinds.
func UnpackSig(buf []byte, p params.Params) (cTilde []byte, z [][]int32, hint [][]int32, err error) {
	if len(buf) != p.SigBytes {
		return nil, nil, nil, errors.Wrapf(ErrWrongLength, "signature: got %d, want %d", len(buf), p.SigBytes)
	}
	off := 0
	cTilde = append([]byte(nil), buf[:seedBytes]...)
	off += seedBytes

	z = make([][]int32, p.L)
	for i := 0; i < p.L; i++ {
		z[i] = UnpackZ(buf[off:off+p.PolyZBytes], p.Gamma1)
		off += p.PolyZBytes
	}

	hint, err = UnpackHint(buf[off:], p.Omega, p.K, field.N)
	if err != nil {
		return nil, nil, nil, err
	}
	return cTilde, z, hint, nil
}
