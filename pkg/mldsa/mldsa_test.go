package mldsa_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dilithium-go/dilithium/pkg/mldsa"
)

func TestGenerateKeyFromAndSign(t *testing.T) {
	pk, sk, err := mldsa.GenerateKeyFrom(mldsa.L3, rand.Reader)
	require.NoError(t, err)
	require.NotEmpty(t, pk)
	require.NotEmpty(t, sk)

	msg := []byte("hello, post-quantum world")
	sig, err := mldsa.Sign(mldsa.L3, sk, msg)
	require.NoError(t, err)

	require.NoError(t, mldsa.Verify(mldsa.L3, pk, msg, sig))
}

func TestSignWithRandomRoundTrips(t *testing.T) {
	pk, sk, err := mldsa.GenerateKey(mldsa.L2, make([]byte, 32))
	require.NoError(t, err)

	msg := []byte("non-deterministic path")
	sig, err := mldsa.SignWithRandom(mldsa.L2, sk, msg, rand.Reader)
	require.NoError(t, err)
	require.NoError(t, mldsa.Verify(mldsa.L2, pk, msg, sig))
}

func TestVerifyFailsOnWrongMessage(t *testing.T) {
	pk, sk, err := mldsa.GenerateKey(mldsa.L5, make([]byte, 32))
	require.NoError(t, err)

	sig, err := mldsa.Sign(mldsa.L5, sk, []byte("a"))
	require.NoError(t, err)

	err = mldsa.Verify(mldsa.L5, pk, []byte("b"), sig)
	require.ErrorIs(t, err, mldsa.ErrVerificationFailed)
}

func TestGenerateKeyFromShortReaderFails(t *testing.T) {
	_, _, err := mldsa.GenerateKeyFrom(mldsa.L2, bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}
