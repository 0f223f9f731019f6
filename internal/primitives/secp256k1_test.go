package primitives_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/internal/primitives"
)

func TestScalarFromBytesRejectsOverflow(t *testing.T) {
	// 2^256-1, above the secp256k1 group order n; any candidate >= n must overflow.
	n := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	_, overflow := primitives.ScalarFromBytes(n)
	require.True(t, overflow)
}

func TestCompressedPubKeyFromScalarParsesBack(t *testing.T) {
	scalar, overflow := primitives.ScalarFromBytes([]byte{0x01})
	require.False(t, overflow)

	compressed := primitives.CompressedPubKeyFromScalar(scalar)
	require.Len(t, compressed, 33)

	_, err := primitives.ParseCompressedPubKey(compressed)
	require.NoError(t, err)
}

func TestFingerprintIsFourBytes(t *testing.T) {
	scalar, _ := primitives.ScalarFromBytes([]byte{0x02})
	pub := primitives.CompressedPubKeyFromScalar(scalar)
	fp := primitives.Fingerprint(pub)
	require.Len(t, fp, 4)
}
