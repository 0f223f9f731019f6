package cointype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/bip32"
	"github.com/not-for-prod/hdsecrets/cointype"
)

func TestPath44(t *testing.T) {
	path := cointype.Path44(cointype.Tron, 0, 0, 0)
	require.Equal(t, bip32.Path{
		44 + bip32.HardenedOffset,
		uint32(cointype.Tron) + bip32.HardenedOffset,
		0 + bip32.HardenedOffset,
		0,
		0,
	}, path)
}

func TestPath44DerivesThroughBIP32(t *testing.T) {
	seed := make([]byte, 16)
	for i := range seed {
		seed[i] = byte(i)
	}
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	path := cointype.Path44(cointype.Tron, 0, 0, 0)
	key, err := bip32.Derive(master, path, true)
	require.NoError(t, err)
	require.True(t, key.IsPrivate())
	require.EqualValues(t, len(path), key.Depth())
}
