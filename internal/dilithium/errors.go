package dilithium

import "github.com/pkg/errors"

// ErrInvalidInputLength is returned when a seed, key, or signature buffer
// passed to one of the exported operations does not match the byte
// length the selected security level requires.
var ErrInvalidInputLength = errors.New("dilithium: invalid input length")

// ErrInvalidSignatureEncoding is returned when a signature's bytes parse
// to the right length but fail a structural check on the hint section.
// Packed z coefficients are not range-checked here; Verify's norm check
// covers them.
var ErrInvalidSignatureEncoding = errors.New("dilithium: invalid signature encoding")

// ErrVerificationFailed is returned when a signature is well-formed but
// does not verify against the given public key and message.
var ErrVerificationFailed = errors.New("dilithium: signature verification failed")

// errRejectionLoopExceeded is an internal invariant violation: the
// Fiat-Shamir-with-aborts loop in Sign did not converge within the
// bounded iteration budget. With correctly generated keys this has
// negligible probability; if it triggers, something upstream (a broken
// sampler, a corrupted secret key) is almost certainly wrong, so Sign
// panics rather than silently returning an invalid signature.
var errRejectionLoopExceeded = errors.New("dilithium: rejection loop exceeded iteration budget")

// maxSignAttempts bounds the Sign rejection loop. The expected number of
// attempts is a small constant per security level (well under 10 in
// practice); 1000 gives enormous headroom while still turning a runaway
// loop into a panic instead of a hang.
const maxSignAttempts = 1000
