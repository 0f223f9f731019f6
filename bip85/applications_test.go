package bip85_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/bip39"
	"github.com/not-for-prod/hdsecrets/bip85"
)

func TestMnemonicVector(t *testing.T) {
	master := mustMaster(t)
	wl, err := bip39.NewWordlist(bip39.English)
	require.NoError(t, err)

	words, err := bip85.Mnemonic(master, wl, 12, 0)
	require.NoError(t, err)
	require.Equal(t, "girl mad pet galaxy egg matter matrix prison refuse sense ordinary nose", bip39.Join(words))
}

func TestWIFVector(t *testing.T) {
	master := mustMaster(t)

	wif, err := bip85.WIF(master, true, 0)
	require.NoError(t, err)
	require.Equal(t, "Kzyv4uF39d4Jrw2W7UryTHwZr1zQVNk4dAFyqE6BuMrMh1Za7uhp", wif)
}

func TestDiceVector(t *testing.T) {
	master := mustMaster(t)

	rolls, err := bip85.Dice(master, 6, 10, 0)
	require.NoError(t, err)
	require.Equal(t, "1,0,0,2,0,1,5,5,2,4", rolls)
}

func TestHexRejectsOutOfRange(t *testing.T) {
	master := mustMaster(t)
	_, err := bip85.Hex(master, 8)
	require.Error(t, err)
	_, err = bip85.Hex(master, 65)
	require.Error(t, err)
}

func TestHexWithinRange(t *testing.T) {
	master := mustMaster(t)
	out, err := bip85.Hex(master, 16)
	require.NoError(t, err)
	require.Len(t, out, 32)
}

func TestPasswordBase64Length(t *testing.T) {
	master := mustMaster(t)
	pwd, err := bip85.PasswordBase64(master, 20)
	require.NoError(t, err)
	require.Len(t, pwd, 20)
}

func TestPasswordBase85Length(t *testing.T) {
	master := mustMaster(t)
	pwd, err := bip85.PasswordBase85(master, 10)
	require.NoError(t, err)
	require.Len(t, pwd, 10)
}

func TestXPRVProducesValidExtendedKey(t *testing.T) {
	master := mustMaster(t)
	child, err := bip85.XPRV(master, true, 0)
	require.NoError(t, err)
	require.True(t, child.IsPrivate())
	require.EqualValues(t, 0, child.Depth())
}

func TestRawRNGLength(t *testing.T) {
	master := mustMaster(t)
	out, err := bip85.RawRNG(master, 32)
	require.NoError(t, err)
	require.Len(t, out, 32)
}

func TestRSANotImplemented(t *testing.T) {
	master := mustMaster(t)
	err := bip85.RSA(master, 2048, 0)
	require.Error(t, err)
}
