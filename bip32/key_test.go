package bip32_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/bip32"
)

func TestVector1MasterKey(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")

	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)
	require.Equal(t,
		"xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
		master.String())

	pub, err := bip32.Neuter(master)
	require.NoError(t, err)
	require.Equal(t,
		"xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
		pub.String())
}

func TestParseExtendedKeyRoundTrip(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	parsed, err := bip32.ParseExtendedKey(master.String())
	require.NoError(t, err)
	require.Equal(t, master.String(), parsed.String())
}

func TestParseExtendedKeyBadChecksum(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	corrupted := []byte(master.String())
	corrupted[len(corrupted)-1]++

	_, err = bip32.ParseExtendedKey(string(corrupted))
	require.Error(t, err)
}

func TestParseExtendedKeySkipValidation(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	parsed, err := bip32.ParseExtendedKey(master.String(), bip32.SkipValidation())
	require.NoError(t, err)
	require.Equal(t, master.Depth(), parsed.Depth())
}
