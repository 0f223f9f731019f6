// Package bip32 implements BIP-32 hierarchical-deterministic extended
// keys: the 78-byte ExtendedKey record, its Base58Check codec, and the
// CKDpriv/CKDpub/N derivation engine.
package bip32

import (
	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
	"github.com/not-for-prod/hdsecrets/internal/primitives"
)

// Version is the 4-byte network/visibility tag that opens every extended
// key. Exactly one of the four values below is valid.
type Version [4]byte

// The four BIP-32 extended key versions.
var (
	VersionMainnetPrivate = Version{0x04, 0x88, 0xad, 0xe4}
	VersionMainnetPublic  = Version{0x04, 0x88, 0xb2, 0x1e}
	VersionTestnetPrivate = Version{0x04, 0x35, 0x83, 0x94}
	VersionTestnetPublic  = Version{0x04, 0x35, 0x87, 0xcf}
)

// textPrefix returns the 4-character textual prefix (xprv/xpub/tprv/tpub)
// implied by a version, or "" if the version is not one of the four known
// values.
func (v Version) textPrefix() string {
	switch v {
	case VersionMainnetPrivate:
		return "xprv"
	case VersionMainnetPublic:
		return "xpub"
	case VersionTestnetPrivate:
		return "tprv"
	case VersionTestnetPublic:
		return "tpub"
	default:
		return ""
	}
}

// IsPrivate reports whether v denotes a private extended key.
func (v Version) IsPrivate() bool {
	return v == VersionMainnetPrivate || v == VersionTestnetPrivate
}

// IsMainnet reports whether v denotes a mainnet extended key.
func (v Version) IsMainnet() bool {
	return v == VersionMainnetPrivate || v == VersionMainnetPublic
}

// Neutered returns the public version paired with v's network.
func (v Version) Neutered() Version {
	if v.IsMainnet() {
		return VersionMainnetPublic
	}
	return VersionTestnetPublic
}

// Hardened returns the private version for mainnet (true) or testnet
// (false). It exists for symmetry with Neutered; BIP-32 never "un-neuters"
// a key in practice, but NewMaster and BIP-85's XPRV application build a
// fresh private key from scratch and want the private version constant
// without repeating the literal.
func Hardened(mainnet bool) Version {
	if mainnet {
		return VersionMainnetPrivate
	}
	return VersionTestnetPrivate
}

// HardenedOffset is the child-index threshold (2^31) at and above which a
// child is hardened.
const HardenedOffset uint32 = 1 << 31

// ExtendedKey is the 78-byte BIP-32 extended key record: version, depth,
// parent fingerprint, child number, chain code, and key data (private
// scalar or compressed public point).
type ExtendedKey struct {
	version     Version
	depth       uint8
	finger      [4]byte
	childNumber uint32
	chainCode   [32]byte
	data        [33]byte
}

// New constructs an ExtendedKey, enforcing every width and consistency
// invariant of the BIP-32 record. Construction is the only place those
// invariants are checked; every other ExtendedKey-producing function in
// this package routes through it.
func New(version Version, depth uint8, finger [4]byte, childNumber uint32, chainCode [32]byte, data [33]byte) (*ExtendedKey, error) {
	if version.textPrefix() == "" {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "unrecognized extended key version %x", version)
	}
	if depth == 0 {
		if finger != ([4]byte{}) || childNumber != 0 {
			return nil, errors.Wrap(hdsecrets.ErrBadFormat, "root extended key must have zero finger and child number")
		}
	}

	switch data[0] {
	case 0x00:
		if !version.IsPrivate() {
			return nil, errors.Wrap(hdsecrets.ErrBadFormat, "private key data with public version")
		}
		scalar, overflow := primitives.ScalarFromBytes(data[1:])
		if !primitives.ScalarIsValid(scalar, overflow) {
			return nil, errors.Wrap(hdsecrets.ErrInvalidKey, "private scalar out of (0, n)")
		}
	case 0x02, 0x03:
		if version.IsPrivate() {
			return nil, errors.Wrap(hdsecrets.ErrBadFormat, "public key data with private version")
		}
		if _, err := primitives.ParseCompressedPubKey(data[:]); err != nil {
			return nil, errors.Wrap(hdsecrets.ErrBadFormat, "public key does not lie on secp256k1")
		}
	default:
		return nil, errors.Wrap(hdsecrets.ErrBadFormat, "key data must start with 0x00, 0x02, or 0x03")
	}

	return &ExtendedKey{
		version:     version,
		depth:       depth,
		finger:      finger,
		childNumber: childNumber,
		chainCode:   chainCode,
		data:        data,
	}, nil
}

// Version returns the extended key's version tag.
func (k *ExtendedKey) Version() Version { return k.version }

// Depth returns the extended key's position in its tree; the root is 0.
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// Finger returns the first 4 bytes of RIPEMD160(SHA256(parent public key)).
func (k *ExtendedKey) Finger() [4]byte { return k.finger }

// ChildNumber returns the big-endian child index this key was derived at.
// Values >= HardenedOffset denote a hardened child.
func (k *ExtendedKey) ChildNumber() uint32 { return k.childNumber }

// ChainCode returns the 32-byte chain code.
func (k *ExtendedKey) ChainCode() [32]byte { return k.chainCode }

// Data returns the 33-byte key data: 0x00||scalar for private keys, or a
// compressed point for public keys.
func (k *ExtendedKey) Data() [33]byte { return k.data }

// IsPrivate reports whether this key carries a private scalar.
func (k *ExtendedKey) IsPrivate() bool { return k.data[0] == 0x00 }

// IsPublic reports whether this key carries a public point.
func (k *ExtendedKey) IsPublic() bool { return !k.IsPrivate() }

// IsMainnet reports whether this key belongs to the mainnet tree.
func (k *ExtendedKey) IsMainnet() bool { return k.version.IsMainnet() }

// PrivateScalar returns the 32-byte private scalar. It panics if the key
// is public; callers must check IsPrivate first.
func (k *ExtendedKey) PrivateScalar() [32]byte {
	if !k.IsPrivate() {
		panic("bip32: PrivateScalar called on a public extended key")
	}
	var scalar [32]byte
	copy(scalar[:], k.data[1:])
	return scalar
}

// CompressedPublicKey returns the 33-byte compressed public key for this
// node, computing it from the private scalar if necessary.
func (k *ExtendedKey) CompressedPublicKey() [33]byte {
	if k.IsPublic() {
		return k.data
	}
	scalar, _ := primitives.ScalarFromBytes(k.data[1:])
	compressed := primitives.CompressedPubKeyFromScalar(scalar)
	var out [33]byte
	copy(out[:], compressed)
	return out
}

// serialize lays the six fields out in BIP-32 wire order: version, depth,
// finger, child number, chain code, data. 78 bytes, always.
func (k *ExtendedKey) serialize() []byte {
	out := make([]byte, 0, 78)
	out = append(out, k.version[:]...)
	out = append(out, k.depth)
	out = append(out, k.finger[:]...)
	var childNumberBytes [4]byte
	childNumberBytes[0] = byte(k.childNumber >> 24)
	childNumberBytes[1] = byte(k.childNumber >> 16)
	childNumberBytes[2] = byte(k.childNumber >> 8)
	childNumberBytes[3] = byte(k.childNumber)
	out = append(out, childNumberBytes[:]...)
	out = append(out, k.chainCode[:]...)
	out = append(out, k.data[:]...)
	return out
}

// String returns the 111-character Base58Check encoding of the extended
// key, exactly as BIP-32's serialization format specifies.
func (k *ExtendedKey) String() string {
	return primitives.EncodeCheck(k.serialize())
}

// parseOptions controls ParseExtendedKey's strictness.
type parseOptions struct {
	skipValidation bool
}

// ParseOption configures ParseExtendedKey.
type ParseOption func(*parseOptions)

// SkipValidation disables every structural check beyond length and
// checksum, so a test can exercise invalid-key fixtures without the
// constructor rejecting them first.
func SkipValidation() ParseOption {
	return func(o *parseOptions) { o.skipValidation = true }
}

// ParseExtendedKey decodes a Base58Check extended key string, validating
// every field invariant New enforces, unless SkipValidation is passed.
func ParseExtendedKey(s string, opts ...ParseOption) (*ExtendedKey, error) {
	var cfg parseOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	payload, err := primitives.DecodeCheck(s)
	if err != nil {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "%s: %v", s, err)
	}
	if len(payload) != 78 {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "extended key must decode to 78 bytes, got %d", len(payload))
	}

	var version Version
	copy(version[:], payload[0:4])
	depth := payload[4]
	var finger [4]byte
	copy(finger[:], payload[5:9])
	childNumber := uint32(payload[9])<<24 | uint32(payload[10])<<16 | uint32(payload[11])<<8 | uint32(payload[12])
	var chainCode [32]byte
	copy(chainCode[:], payload[13:45])
	var data [33]byte
	copy(data[:], payload[45:78])

	if cfg.skipValidation {
		return &ExtendedKey{
			version:     version,
			depth:       depth,
			finger:      finger,
			childNumber: childNumber,
			chainCode:   chainCode,
			data:        data,
		}, nil
	}

	prefix := version.textPrefix()
	if prefix == "" {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "unrecognized version %x", version)
	}
	if len(s) < 4 || s[:4] != prefix {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "textual prefix %q does not match version %x (%s)", s[:min(4, len(s))], version, prefix)
	}

	return New(version, depth, finger, childNumber, chainCode, data)
}
