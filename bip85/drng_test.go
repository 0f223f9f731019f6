package bip85_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/bip85"
)

func TestDRNGConcatenationProperty(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 64)

	whole, err := bip85.NewDRNG(seed)
	require.NoError(t, err)
	wholeOut := whole.Read(48)

	split, err := bip85.NewDRNG(seed)
	require.NoError(t, err)
	a := split.Read(20)
	b := split.Read(28)

	require.Equal(t, wholeOut, append(a, b...))
}

func TestDRNGRejectsWrongSeedLength(t *testing.T) {
	_, err := bip85.NewDRNG(make([]byte, 63))
	require.Error(t, err)
	_, err = bip85.NewDRNG(make([]byte, 65))
	require.Error(t, err)
}
