package cointype

import "github.com/not-for-prod/hdsecrets/bip32"

// Path44 builds the standard BIP-44 path
// m/44'/coinType'/account'/change/index for a given coin, account, change
// chain (0 external, 1 internal), and address index.
func Path44(coin CoinType, account, change, index uint32) bip32.Path {
	return bip32.Path{
		44 + bip32.HardenedOffset,
		uint32(coin) + bip32.HardenedOffset,
		account + bip32.HardenedOffset,
		change,
		index,
	}
}
