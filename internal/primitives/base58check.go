package primitives

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// checksumLen is the width of a Base58Check checksum: the first 4 bytes of
// SHA256(SHA256(payload)).
const checksumLen = 4

func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// EncodeCheck Base58Check-encodes payload with a 4-byte double-SHA256
// checksum appended, matching the extended-key serialization of BIP-32
// (the version is carried inside payload itself, unlike the single
// version-byte form base58.CheckEncode expects).
func EncodeCheck(payload []byte) string {
	checksum := doubleSHA256(payload)
	full := make([]byte, 0, len(payload)+checksumLen)
	full = append(full, payload...)
	full = append(full, checksum[:checksumLen]...)
	return base58.Encode(full)
}

// DecodeCheck reverses EncodeCheck, verifying the checksum and returning
// the original payload.
func DecodeCheck(s string) ([]byte, error) {
	full := base58.Decode(s)
	if len(full) < checksumLen {
		return nil, fmt.Errorf("base58check: input too short (%d bytes)", len(full))
	}
	payload := full[:len(full)-checksumLen]
	wantChecksum := full[len(full)-checksumLen:]
	gotChecksum := doubleSHA256(payload)
	for i := 0; i < checksumLen; i++ {
		if wantChecksum[i] != gotChecksum[i] {
			return nil, fmt.Errorf("base58check: checksum mismatch")
		}
	}
	return payload, nil
}
