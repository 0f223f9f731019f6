package hdsecrets

import "errors"

// Sentinel errors shared across every package in this module. Call sites
// wrap these with github.com/pkg/errors for context; callers recover the
// taxonomy with errors.Is.
var (
	// ErrBadFormat covers length, checksum, version-prefix, or grammar
	// mismatches: a malformed extended key string or derivation path.
	ErrBadFormat = errors.New("hdsecrets: bad format")

	// ErrInvalidKey means a 32-byte scalar fell outside (0, n) for the
	// secp256k1 group order n, or a parent public key handed to CKDpub
	// does not lie on secp256k1.
	ErrInvalidKey = errors.New("hdsecrets: invalid key material")

	// ErrInvalidChild is the BIP-32 degenerate-derivation case. Callers
	// advance the child index by one and retry.
	ErrInvalidChild = errors.New("hdsecrets: invalid child, retry with next index")

	// ErrHardenedPublic means a caller asked to derive a hardened child
	// from a public (neutered) parent, which BIP-32 forbids.
	ErrHardenedPublic = errors.New("hdsecrets: cannot derive hardened child from public parent")

	// ErrWrongCount means a mnemonic did not have 12, 15, 18, 21, or 24 words.
	ErrWrongCount = errors.New("hdsecrets: wrong mnemonic word count")

	// ErrUnknownWord means a mnemonic word is absent from the wordlist.
	ErrUnknownWord = errors.New("hdsecrets: unknown mnemonic word")

	// ErrBadChecksum means a mnemonic's embedded checksum did not match
	// its entropy.
	ErrBadChecksum = errors.New("hdsecrets: bad mnemonic checksum")

	// ErrOutOfRange means a BIP-85 application parameter (num_bytes,
	// pwd_len, sides, ...) fell outside its documented bounds.
	ErrOutOfRange = errors.New("hdsecrets: parameter out of range")

	// ErrNotImplemented means an unsupported operation was requested: the
	// BIP-85 RSA application, a BIP-39 wordlist whose data is not
	// packaged, or a BIP-85 mnemonic in a language with no BIP-85 code.
	ErrNotImplemented = errors.New("hdsecrets: application not implemented")

	// ErrBadSeedLength means the DRNG constructor received a seed that
	// was not exactly 64 bytes.
	ErrBadSeedLength = errors.New("hdsecrets: DRNG seed must be 64 bytes")
)
