package primitives_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdsecrets/internal/primitives"
)

func TestEncodeDecodeCheckRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumped")
	encoded := primitives.EncodeCheck(payload)

	decoded, err := primitives.DecodeCheck(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestDecodeCheckRejectsCorruption(t *testing.T) {
	encoded := primitives.EncodeCheck([]byte("payload"))
	corrupted := []byte(encoded)
	corrupted[0] = corrupted[0] ^ 0x01

	_, err := primitives.DecodeCheck(string(corrupted))
	require.Error(t, err)
}
