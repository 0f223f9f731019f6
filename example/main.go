// Command example demonstrates deriving a BIP-44 key for TRON's SLIP-44
// coin type from a fresh mnemonic, and deriving a BIP-85 child mnemonic
// from the same tree.
package main

import (
	"crypto/rand"
	"fmt"
	"log"

	"github.com/not-for-prod/hdsecrets/bip32"
	"github.com/not-for-prod/hdsecrets/bip39"
	"github.com/not-for-prod/hdsecrets/bip85"
	"github.com/not-for-prod/hdsecrets/cointype"
	"github.com/not-for-prod/hdsecrets/wallet"
)

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

func main() {
	wl, err := bip39.NewWordlist(bip39.English)
	if err != nil {
		log.Fatal(err)
	}

	// Generate a 12-word mnemonic (128 bits entropy).
	mnemonic, err := wallet.GenerateMnemonic(128, wl, randomBytes)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Mnemonic: %s\n", bip39.Join(mnemonic))

	// Derive the first TRON-chain key from the mnemonic (SLIP-44 path
	// construction only; address formatting is out of scope).
	key, err := wallet.DeriveKeyFromMnemonic(mnemonic, wl, "", true, cointype.Tron, 0, 0, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Extended Private Key: %s\n", key.String())
	fmt.Printf("Private Key:          %x\n", key.PrivateScalar())
	fmt.Printf("Public Key:           %x\n", key.CompressedPublicKey())

	// Derive an independent BIP-85 child mnemonic from the same master
	// key, useful for splitting a single backup into several wallets.
	seed := bip39.SeedFromMnemonic(bip39.Join(mnemonic), "")
	master, err := bip32.NewMaster(seed, true)
	if err != nil {
		log.Fatal(err)
	}
	child, err := bip85.Mnemonic(master, wl, 12, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("BIP-85 child mnemonic #0: %s\n", bip39.Join(child))
}
