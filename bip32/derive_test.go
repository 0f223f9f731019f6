package bip32_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/bip32"
)

func TestDeriveHardenedChild(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	path, err := bip32.ParsePath("m/0'")
	require.NoError(t, err)

	child, err := bip32.Derive(master, path, true)
	require.NoError(t, err)
	require.EqualValues(t, 1, child.Depth())
	require.True(t, child.ChildNumber() >= bip32.HardenedOffset)
}

func TestNeuterThenDerivePublicMatchesDerivePrivateThenNeuter(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	path, err := bip32.ParsePath("m/0/1")
	require.NoError(t, err)

	viaPrivate, err := bip32.Derive(master, path, true)
	require.NoError(t, err)
	neuteredAfter, err := bip32.Neuter(viaPrivate)
	require.NoError(t, err)

	rootPub, err := bip32.Neuter(master)
	require.NoError(t, err)
	viaPublic, err := bip32.Derive(rootPub, path, false)
	require.NoError(t, err)

	require.Equal(t, neuteredAfter.String(), viaPublic.String())
}

func TestDerivePrivateRootNonHardenedLastSegmentMatchesCKDpub(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	path, err := bip32.ParsePath("m/0'/1")
	require.NoError(t, err)

	viaPrivateThenNeuter, err := bip32.Derive(master, path, true)
	require.NoError(t, err)
	neutered, err := bip32.Neuter(viaPrivateThenNeuter)
	require.NoError(t, err)

	viaPublicLastStep, err := bip32.Derive(master, path, false)
	require.NoError(t, err)

	require.Equal(t, neutered.String(), viaPublicLastStep.String())
	require.True(t, viaPublicLastStep.IsPublic())
}

func TestDerivePrivateRootHardenedLastSegmentStillNeuters(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)

	path, err := bip32.ParsePath("m/0'")
	require.NoError(t, err)

	viaPublic, err := bip32.Derive(master, path, false)
	require.NoError(t, err)
	require.True(t, viaPublic.IsPublic())

	viaPrivate, err := bip32.Derive(master, path, true)
	require.NoError(t, err)
	neutered, err := bip32.Neuter(viaPrivate)
	require.NoError(t, err)

	require.Equal(t, neutered.String(), viaPublic.String())
}

func TestDeriveHardenedFromPublicFails(t *testing.T) {
	seed := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := bip32.NewMaster(seed, true)
	require.NoError(t, err)
	pub, err := bip32.Neuter(master)
	require.NoError(t, err)

	path, err := bip32.ParsePath("m/0'")
	require.NoError(t, err)

	_, err = bip32.Derive(pub, path, false)
	require.Error(t, err)
}

func TestNewMasterRejectsShortSeed(t *testing.T) {
	_, err := bip32.NewMaster(make([]byte, 8), true)
	require.Error(t, err)
}
