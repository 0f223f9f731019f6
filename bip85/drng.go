package bip85

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/not-for-prod/hdsecrets"
)

// DRNG is BIP-85's deterministic random number generator: a SHAKE-256
// extendable-output stream seeded from 64 bytes of application entropy,
// with a monotonic cursor so repeated Read calls never repeat output.
type DRNG struct {
	shake  sha3.ShakeHash
	cursor int
}

// NewDRNG seeds a DRNG from exactly 64 bytes of entropy, as produced by
// DeriveEntropy for application code AppRNG or AppDice.
func NewDRNG(seed []byte) (*DRNG, error) {
	if len(seed) != 64 {
		return nil, errors.Wrapf(hdsecrets.ErrBadSeedLength, "got %d bytes", len(seed))
	}
	shake := sha3.NewShake256()
	shake.Write(seed)
	return &DRNG{shake: shake}, nil
}

// Read returns the next n bytes of the DRNG's output stream.
func (d *DRNG) Read(n int) []byte {
	out := make([]byte, n)
	d.shake.Read(out)
	d.cursor += n
	return out
}

// Cursor returns the number of bytes emitted so far.
func (d *DRNG) Cursor() int { return d.cursor }
