// Package bip85 implements BIP-85: deriving independent, deterministic
// child entropy from a BIP-32 master key and formatting it for a family
// of downstream applications (mnemonics, WIF keys, extended keys, hex,
// passwords, dice rolls, and raw DRNG output).
package bip85

import (
	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
	"github.com/not-for-prod/hdsecrets/bip32"
	"github.com/not-for-prod/hdsecrets/internal/primitives"
)

// Purpose is the BIP-85 root purpose value, always the first hardened
// segment of every BIP-85 path: m/83696968'/...
const Purpose uint32 = 83696968

// Application codes, the second hardened segment of a BIP-85 path.
const (
	AppMnemonic  uint32 = 39
	AppWIF       uint32 = 2
	AppXPRV      uint32 = 32
	AppHex       uint32 = 128169
	AppPWDBase64 uint32 = 707764
	AppPWDBase85 uint32 = 707785
	AppDice      uint32 = 89101
	AppRNG       uint32 = 0
	AppRSA       uint32 = 828365
)

// entropyHMACKey is the fixed HMAC key BIP-85 uses to turn a derived
// private key into application entropy: HMAC-SHA512("bip-entropy-from-k", k).
var entropyHMACKey = []byte("bip-entropy-from-k")

// ValidatePath reports whether path is a well-formed BIP-85 path: rooted
// at Purpose, every segment hardened, and at least one parameter segment
// past the application code.
func ValidatePath(path bip32.Path) error {
	if len(path) < 3 {
		return errors.Wrap(hdsecrets.ErrBadFormat, "BIP-85 path needs at least purpose, application, and one parameter segment")
	}
	if path[0] != Purpose+bip32.HardenedOffset {
		return errors.Wrapf(hdsecrets.ErrBadFormat, "BIP-85 path must start with %d'", Purpose)
	}
	for _, segment := range path {
		if segment < bip32.HardenedOffset {
			return errors.Wrap(hdsecrets.ErrBadFormat, "every BIP-85 path segment must be hardened")
		}
	}
	return nil
}

// Application returns the application code (path[1], hardening stripped)
// of a validated BIP-85 path.
func Application(path bip32.Path) uint32 {
	return path[1] - bip32.HardenedOffset
}

// Param returns path segment i (0-based, counting from the application
// segment) with hardening stripped. Segment 0 is the application code
// itself.
func Param(path bip32.Path, i int) (uint32, error) {
	idx := 1 + i
	if idx >= len(path) {
		return 0, errors.Wrapf(hdsecrets.ErrBadFormat, "BIP-85 path is missing parameter %d", i)
	}
	return path[idx] - bip32.HardenedOffset, nil
}

// DeriveEntropy walks path from master (which must be private) and
// returns the 64-byte application entropy HMAC-SHA512("bip-entropy-from-k",
// derived_private_scalar) produces. This is the single primitive every
// BIP-85 application formatter in this package builds on.
func DeriveEntropy(master *bip32.ExtendedKey, path bip32.Path) ([]byte, error) {
	if !master.IsPrivate() {
		return nil, errors.Wrap(hdsecrets.ErrBadFormat, "BIP-85 derivation must start from a private master key")
	}
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	derived, err := bip32.Derive(master, path, true)
	if err != nil {
		return nil, err
	}

	scalar := derived.PrivateScalar()
	return primitives.HMACSHA512(entropyHMACKey, scalar[:]), nil
}
