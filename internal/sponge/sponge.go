// Package sponge wraps golang.org/x/crypto/sha3's SHAKE128/256 sponge
// construction with the two streaming shapes Dilithium uses everywhere:
// absorb(seed || little-endian nonce), then squeeze an arbitrary-length
// or block-aligned output. The underlying library already implements
// Keccak-f[1600] absorb/pad/squeeze; this package only adds the
// seed+nonce keying convention and the rate-block helpers spec.md §4.4
// names.
package sponge

import "golang.org/x/crypto/sha3"

// Rate128 is the SHAKE128 block size in bytes.
const Rate128 = 168

// Rate256 is the SHAKE256 block size in bytes.
const Rate256 = 136

// State is an incremental SHAKE sponge. Absorb may be called repeatedly;
// the first Squeeze implicitly finalizes (pads and permutes), matching
// sha3.ShakeHash's own Read semantics, which is what spec.md §4.4's
// "finalize" step reduces to once the pad byte is fixed at 0x1F/0x80.
type State struct {
	h sha3.ShakeHash
}

// NewShake128 returns a fresh, empty SHAKE128 sponge.
func NewShake128() *State { return &State{h: sha3.NewShake128()} }

// NewShake256 returns a fresh, empty SHAKE256 sponge.
func NewShake256() *State { return &State{h: sha3.NewShake256()} }

// Absorb appends bytes to the sponge. Must not be called after Squeeze.
func (s *State) Absorb(p []byte) {
	s.h.Write(p)
}

// Squeeze reads exactly len(out) bytes from the sponge, permuting as
// needed.
func (s *State) Squeeze(out []byte) {
	s.h.Read(out)
}

// SqueezeBlocks reads exactly n*rate bytes, the rate-aligned squeeze
// spec.md §4.4 names separately since it is the common case when driving
// a rejection sampler.
func (s *State) SqueezeBlocks(rate, n int, out []byte) {
	s.h.Read(out[:n*rate])
}

// nonceBytes encodes a 16-bit nonce as two little-endian bytes.
func nonceBytes(nonce uint16) [2]byte {
	return [2]byte{byte(nonce), byte(nonce >> 8)}
}

// Stream128 returns a SHAKE128 sponge with seed || LE16(nonce) already
// absorbed and finalized, ready to squeeze.
func Stream128(seed []byte, nonce uint16) *State {
	s := NewShake128()
	s.Absorb(seed)
	nb := nonceBytes(nonce)
	s.Absorb(nb[:])
	return s
}

// Stream256 returns a SHAKE256 sponge with seed || LE16(nonce) already
// absorbed and finalized, ready to squeeze.
func Stream256(seed []byte, nonce uint16) *State {
	s := NewShake256()
	s.Absorb(seed)
	nb := nonceBytes(nonce)
	s.Absorb(nb[:])
	return s
}

// Stream256WithoutNonce returns a SHAKE256 sponge with only seed absorbed,
// used by the challenge sampler which keys on a single 32-byte digest
// rather than a seed+nonce pair.
func Stream256WithoutNonce(seed []byte) *State {
	s := NewShake256()
	s.Absorb(seed)
	return s
}

// H256 returns the SHAKE256 digest of msg truncated/extended to n bytes.
func H256(msg []byte, n int) []byte {
	s := NewShake256()
	s.Absorb(msg)
	out := make([]byte, n)
	s.Squeeze(out)
	return out
}

// H128 returns the SHAKE128 digest of msg truncated/extended to n bytes.
func H128(msg []byte, n int) []byte {
	s := NewShake128()
	s.Absorb(msg)
	out := make([]byte, n)
	s.Squeeze(out)
	return out
}
