package bip39

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// seedIterations and seedKeyLen are fixed by BIP-39: 2048 rounds of
// HMAC-SHA512, producing a 64-byte seed.
const (
	seedIterations = 2048
	seedKeyLen     = 64
)

// SeedFromMnemonic stretches a mnemonic phrase and an optional passphrase
// into the 64-byte seed bip32.NewMaster roots its tree from, per BIP-39's
// PBKDF2-HMAC-SHA512 construction. Words are lower-cased (a no-op for
// scripts without case, such as Japanese) and re-joined with single
// spaces before NFKD normalization, so leading, trailing, doubled
// whitespace, or mixed case never changes the derived seed.
func SeedFromMnemonic(phrase, passphrase string) []byte {
	words := Split(phrase)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	normalizedPhrase := norm.NFKD.String(strings.Join(words, " "))
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(normalizedPhrase), []byte(salt), seedIterations, seedKeyLen, sha512.New)
}
