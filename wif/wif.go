// Package wif implements the Wallet Import Format encoding of a raw
// secp256k1 private key: a single version byte, the 32-byte scalar, an
// optional compressed-public-key marker, and a Base58Check trailer.
package wif

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
	"github.com/not-for-prod/hdsecrets/internal/primitives"
)

const (
	versionMainnet = 0x80
	versionTestnet = 0xef
	compressedFlag = 0x01
)

// Encode renders a 32-byte private key as a WIF string. compressed should
// be true for every key this module derives, since BIP-32 and BIP-85 only
// ever produce compressed public keys.
func Encode(scalar [32]byte, mainnet, compressed bool) string {
	version := byte(versionMainnet)
	if !mainnet {
		version = versionTestnet
	}

	payload := make([]byte, 0, 34)
	payload = append(payload, scalar[:]...)
	if compressed {
		payload = append(payload, compressedFlag)
	}

	return base58.CheckEncode(payload, version)
}

// Decode parses a WIF string back into its 32-byte private key, network,
// and compression flag.
func Decode(s string) (scalar [32]byte, mainnet, compressed bool, err error) {
	payload, version, decodeErr := base58.CheckDecode(s)
	if decodeErr != nil {
		return scalar, false, false, errors.Wrapf(hdsecrets.ErrBadFormat, "%s: %v", s, decodeErr)
	}

	switch version {
	case versionMainnet:
		mainnet = true
	case versionTestnet:
		mainnet = false
	default:
		return scalar, false, false, errors.Wrapf(hdsecrets.ErrBadFormat, "unrecognized WIF version 0x%02x", version)
	}

	switch len(payload) {
	case 32:
		compressed = false
	case 33:
		if payload[32] != compressedFlag {
			return scalar, false, false, errors.Wrap(hdsecrets.ErrBadFormat, "unrecognized WIF compression suffix")
		}
		compressed = true
	default:
		return scalar, false, false, errors.Wrapf(hdsecrets.ErrBadFormat, "WIF payload must be 32 or 33 bytes, got %d", len(payload))
	}

	copy(scalar[:], payload[:32])

	candidate, overflow := primitives.ScalarFromBytes(scalar[:])
	if !primitives.ScalarIsValid(candidate, overflow) {
		return scalar, false, false, errors.Wrap(hdsecrets.ErrInvalidKey, "WIF scalar out of (0, n)")
	}

	return scalar, mainnet, compressed, nil
}
