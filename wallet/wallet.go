// Package wallet wires bip32, bip39, and cointype together the way an
// application consuming this module would: generate or validate a
// mnemonic, stretch it into a seed, root a BIP-32 tree from it, and walk
// a BIP-44 path to a specific chain's key.
package wallet

import (
	"github.com/not-for-prod/hdsecrets/bip32"
	"github.com/not-for-prod/hdsecrets/bip39"
	"github.com/not-for-prod/hdsecrets/cointype"
)

// GenerateMnemonic returns a fresh, checksummed BIP-39 mnemonic of
// bitSize bits of entropy (128, 160, 192, 224, or 256) in wl's language.
func GenerateMnemonic(bitSize int, wl *bip39.Wordlist, randomBytes func(n int) ([]byte, error)) ([]string, error) {
	entropy, err := randomBytes(bitSize / 8)
	if err != nil {
		return nil, err
	}
	return bip39.EntropyToMnemonic(entropy, wl)
}

// DeriveKeyFromMnemonic turns a mnemonic phrase into the BIP-32 extended
// key at the standard BIP-44 path m/44'/coin'/account'/chain/address,
// validating the mnemonic against wl before deriving anything.
func DeriveKeyFromMnemonic(words []string, wl *bip39.Wordlist, passphrase string, mainnet bool, coin cointype.CoinType, account, chain, address uint32) (*bip32.ExtendedKey, error) {
	if err := bip39.Validate(words, wl); err != nil {
		return nil, err
	}

	seed := bip39.SeedFromMnemonic(bip39.Join(words), passphrase)
	master, err := bip32.NewMaster(seed, mainnet)
	if err != nil {
		return nil, err
	}

	path := cointype.Path44(coin, account, chain, address)
	return bip32.Derive(master, path, true)
}
