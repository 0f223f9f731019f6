package bip39_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/bip39"
)

func TestRelativeEntropyEstimateScalesWithLength(t *testing.T) {
	short := bip39.RelativeEntropyEstimate("abc")
	long := bip39.RelativeEntropyEstimate("abcabcabcabc")
	require.Greater(t, long, short)
}

func TestRelativeEntropyEstimateEmptyIsZero(t *testing.T) {
	require.Equal(t, float64(0), bip39.RelativeEntropyEstimate(""))
}
