package bip39_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/bip39"
)

func wordlist(t *testing.T) *bip39.Wordlist {
	t.Helper()
	wl, err := bip39.NewWordlist(bip39.English)
	require.NoError(t, err)
	return wl
}

func TestEntropyToMnemonicBIP85Vector(t *testing.T) {
	wl := wordlist(t)
	entropy, err := hex.DecodeString("6250b68daf746d12a24d58b4787a714b")
	require.NoError(t, err)

	words, err := bip39.EntropyToMnemonic(entropy, wl)
	require.NoError(t, err)
	require.Equal(t,
		"girl mad pet galaxy egg matter matrix prison refuse sense ordinary nose",
		bip39.Join(words))
}

func TestMnemonicToEntropyRoundTrip(t *testing.T) {
	wl := wordlist(t)
	words := bip39.Split("girl mad pet galaxy egg matter matrix prison refuse sense ordinary nose")

	entropy, err := bip39.MnemonicToEntropy(words, wl)
	require.NoError(t, err)
	require.Equal(t, "6250b68daf746d12a24d58b4787a714b", hex.EncodeToString(entropy))

	reencoded, err := bip39.EntropyToMnemonic(entropy, wl)
	require.NoError(t, err)
	require.Equal(t, words, reencoded)
}

func TestValidateRejectsBadChecksum(t *testing.T) {
	wl := wordlist(t)
	words := bip39.Split("girl mad pet galaxy egg matter matrix prison refuse sense ordinary mad")
	require.Error(t, bip39.Validate(words, wl))
}

func TestValidateRejectsWrongWordCount(t *testing.T) {
	wl := wordlist(t)
	words := bip39.Split("girl mad pet")
	require.Error(t, bip39.Validate(words, wl))
}

func TestValidateRejectsUnknownWord(t *testing.T) {
	wl := wordlist(t)
	words := bip39.Split("girl mad pet galaxy egg matter matrix prison refuse sense ordinary notaword")
	require.Error(t, bip39.Validate(words, wl))
}
