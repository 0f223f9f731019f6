package bip32

import (
	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
	"github.com/not-for-prod/hdsecrets/internal/primitives"
)

// masterHMACKey is the fixed HMAC key "Bitcoin seed" BIP-32 uses to turn a
// raw seed into a master extended key.
var masterHMACKey = []byte("Bitcoin seed")

// NewMaster derives the master extended private key from a BIP-39 seed (or
// any 16-to-64 byte high-entropy input).
func NewMaster(seed []byte, mainnet bool) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "seed must be 16 to 64 bytes, got %d", len(seed))
	}

	digest := primitives.HMACSHA512(masterHMACKey, seed)
	scalarBytes, chainCodeBytes := digest[:32], digest[32:]

	scalar, overflow := primitives.ScalarFromBytes(scalarBytes)
	if !primitives.ScalarIsValid(scalar, overflow) {
		return nil, errors.Wrap(hdsecrets.ErrInvalidKey, "seed produced an invalid master scalar")
	}

	var data [33]byte
	data[0] = 0x00
	copy(data[1:], scalarBytes)

	var chainCode [32]byte
	copy(chainCode[:], chainCodeBytes)

	version := Hardened(mainnet)
	return New(version, 0, [4]byte{}, 0, chainCode, data)
}

// ckdPriv computes one step of CKDpriv: the private child at index
// childNumber of a private parent. It returns ErrInvalidChild, unwrapped,
// when the candidate scalar is degenerate so the orchestrator can retry
// with childNumber+1.
func ckdPriv(parent *ExtendedKey, childNumber uint32) (*ExtendedKey, error) {
	parentScalar, _ := primitives.ScalarFromBytes(parent.data[1:])
	parentPub := parent.CompressedPublicKey()

	var indexBytes [4]byte
	indexBytes[0] = byte(childNumber >> 24)
	indexBytes[1] = byte(childNumber >> 16)
	indexBytes[2] = byte(childNumber >> 8)
	indexBytes[3] = byte(childNumber)

	hmacData := make([]byte, 0, 37)
	if childNumber >= HardenedOffset {
		hmacData = append(hmacData, parent.data[:]...)
	} else {
		hmacData = append(hmacData, parentPub[:]...)
	}
	hmacData = append(hmacData, indexBytes[:]...)

	digest := primitives.HMACSHA512(parent.chainCode[:], hmacData)
	tweak, overflow := primitives.ScalarFromBytes(digest[:32])
	if overflow {
		return nil, hdsecrets.ErrInvalidChild
	}

	childScalar := primitives.AddScalars(tweak, parentScalar)
	if childScalar.IsZero() {
		return nil, hdsecrets.ErrInvalidChild
	}

	var data [33]byte
	data[0] = 0x00
	scalarBytes := childScalar.Bytes()
	copy(data[1:], scalarBytes[:])

	var chainCode [32]byte
	copy(chainCode[:], digest[32:])

	finger := primitives.Fingerprint(parentPub[:])
	return New(parent.version, parent.depth+1, finger, childNumber, chainCode, data)
}

// ckdPub computes one step of CKDpub: the public child at index
// childNumber of a public parent. Hardened children are unreachable from a
// public parent and reported as ErrHardenedPublic.
func ckdPub(parent *ExtendedKey, childNumber uint32) (*ExtendedKey, error) {
	if childNumber >= HardenedOffset {
		return nil, hdsecrets.ErrHardenedPublic
	}

	parentPub := parent.data

	var indexBytes [4]byte
	indexBytes[0] = byte(childNumber >> 24)
	indexBytes[1] = byte(childNumber >> 16)
	indexBytes[2] = byte(childNumber >> 8)
	indexBytes[3] = byte(childNumber)

	hmacData := make([]byte, 0, 37)
	hmacData = append(hmacData, parentPub[:]...)
	hmacData = append(hmacData, indexBytes[:]...)

	digest := primitives.HMACSHA512(parent.chainCode[:], hmacData)
	tweak, overflow := primitives.ScalarFromBytes(digest[:32])
	if overflow {
		return nil, hdsecrets.ErrInvalidChild
	}

	parsedParent, err := primitives.ParseCompressedPubKey(parentPub[:])
	if err != nil {
		return nil, errors.Wrap(hdsecrets.ErrInvalidKey, "parent public key does not lie on secp256k1")
	}

	childPub, isInfinity := primitives.AddGeneratorMultiple(parsedParent, tweak)
	if isInfinity {
		return nil, hdsecrets.ErrInvalidChild
	}

	var data [33]byte
	copy(data[:], childPub)

	var chainCode [32]byte
	copy(chainCode[:], digest[32:])

	finger := primitives.Fingerprint(parentPub[:])
	return New(parent.version.Neutered(), parent.depth+1, finger, childNumber, chainCode, data)
}

// childAt derives the single child at childNumber, retrying at
// childNumber+1 whenever the derivation reports ErrInvalidChild. This is
// the caller-side recovery protocol BIP-32 mandates for the invalid-child
// case: CKDpriv and CKDpub themselves never retry internally.
func childAt(parent *ExtendedKey, childNumber uint32, private bool) (*ExtendedKey, error) {
	for {
		var child *ExtendedKey
		var err error
		if private {
			child, err = ckdPriv(parent, childNumber)
		} else {
			child, err = ckdPub(parent, childNumber)
		}
		if err == nil {
			return child, nil
		}
		if !errors.Is(err, hdsecrets.ErrInvalidChild) {
			return nil, err
		}
		if childNumber == HardenedOffset-1 || childNumber == ^uint32(0) {
			return nil, errors.Wrap(hdsecrets.ErrInvalidChild, "exhausted child index space without a valid candidate")
		}
		childNumber++
	}
}

// Child derives the single child of parent at childNumber, applying the
// ErrInvalidChild retry protocol: a private child of a private parent, or
// a public child of a public parent (ErrHardenedPublic if childNumber is
// hardened).
func Child(parent *ExtendedKey, childNumber uint32) (*ExtendedKey, error) {
	if !parent.IsPrivate() {
		if childNumber >= HardenedOffset {
			return nil, hdsecrets.ErrHardenedPublic
		}
		return childAt(parent, childNumber, false)
	}
	return childAt(parent, childNumber, true)
}

// Neuter converts a private extended key into its public counterpart at
// the same tree position, per BIP-32's N().
func Neuter(key *ExtendedKey) (*ExtendedKey, error) {
	if key.IsPublic() {
		return key, nil
	}
	pub := key.CompressedPublicKey()
	return New(key.version.Neutered(), key.depth, key.finger, key.childNumber, key.chainCode, pub)
}

// Derive walks path from root. When root is public, every segment must be
// non-hardened, the walk uses CKDpub throughout, and the result is public
// whatever private says. When root is private, every step up to the
// penultimate node produces a private extended key, and the final node is
// private when private is true. When root is private and private is false, the walk
// stops one segment short: it derives privately up to the penultimate
// node, then produces the final node either by neutering (if the last
// segment is hardened, where CKDpub cannot reach) or by calling CKDpub
// directly against the penultimate node's neutered public key (if the
// last segment is non-hardened) — exercising CKDpub rather than always
// deriving the last step privately and discarding the private half.
func Derive(root *ExtendedKey, path Path, private bool) (*ExtendedKey, error) {
	if !root.IsPrivate() {
		for _, childNumber := range path {
			if childNumber >= HardenedOffset {
				return nil, errors.Wrap(hdsecrets.ErrHardenedPublic, "cannot walk a hardened segment from a public root")
			}
		}
		current := root
		for _, childNumber := range path {
			child, err := Child(current, childNumber)
			if err != nil {
				return nil, err
			}
			current = child
		}
		return current, nil
	}

	if len(path) == 0 {
		if private {
			return root, nil
		}
		return Neuter(root)
	}

	walkLen := len(path)
	if !private {
		walkLen--
	}

	current := root
	for _, childNumber := range path[:walkLen] {
		child, err := childAt(current, childNumber, true)
		if err != nil {
			return nil, err
		}
		current = child
	}
	if private {
		return current, nil
	}

	lastChildNumber := path[len(path)-1]
	if lastChildNumber >= HardenedOffset {
		finalPrivate, err := childAt(current, lastChildNumber, true)
		if err != nil {
			return nil, err
		}
		return Neuter(finalPrivate)
	}

	parentPub, err := Neuter(current)
	if err != nil {
		return nil, err
	}
	return childAt(parentPub, lastChildNumber, false)
}
