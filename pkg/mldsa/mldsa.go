// Package mldsa is the public surface of the module: ML-DSA (Dilithium)
// key generation, signing, and verification at security levels L2, L3,
// and L5. The arithmetic, sampling, and packing machinery lives in
// internal/dilithium and its dependencies; this package forwards to it,
// reading seed or signing randomness from an io.Reader where asked.
package mldsa

import (
	"io"

	"github.com/dilithium-go/dilithium/internal/dilithium"
	"github.com/dilithium-go/dilithium/internal/params"
)

// Level selects a security level, re-exported so callers never need to
// import internal/params directly.
type Level = params.Level

const (
	L2 = params.L2
	L3 = params.L3
	L5 = params.L5
)

// Re-exported error sentinels, matched with errors.Is.
var (
	ErrInvalidInputLength       = dilithium.ErrInvalidInputLength
	ErrInvalidSignatureEncoding = dilithium.ErrInvalidSignatureEncoding
	ErrVerificationFailed       = dilithium.ErrVerificationFailed
)

// GenerateKey derives a deterministic key pair at the given level from a
// 32-byte seed.
func GenerateKey(level Level, seed []byte) (pk, sk []byte, err error) {
	return dilithium.KeyGen(level, seed)
}

// GenerateKeyFrom reads a 32-byte seed from rnd (crypto/rand.Reader in
// the common case) and derives a key pair from it.
func GenerateKeyFrom(level Level, rnd io.Reader) (pk, sk []byte, err error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		return nil, nil, err
	}
	return dilithium.KeyGen(level, seed)
}

// Sign deterministically signs msg under sk.
func Sign(level Level, sk, msg []byte) ([]byte, error) {
	return dilithium.Sign(level, sk, msg)
}

// SignWithRandom signs msg under sk, mixing 32 bytes read from rnd into
// the masking-vector derivation so repeated signatures over the same
// message do not repeat the same nonce stream.
func SignWithRandom(level Level, sk, msg []byte, rnd io.Reader) ([]byte, error) {
	r := make([]byte, 32)
	if _, err := io.ReadFull(rnd, r); err != nil {
		return nil, err
	}
	return dilithium.SignWithRandom(level, sk, msg, r)
}

// Verify reports whether sig is a valid signature over msg under pk. A
// nil return means valid; any non-nil error means invalid, and callers
// that only care about the verdict should test with errors.Is against
// ErrVerificationFailed, ErrInvalidSignatureEncoding, or
// ErrInvalidInputLength as appropriate.
func Verify(level Level, pk, msg, sig []byte) error {
	return dilithium.Verify(level, pk, msg, sig)
}
