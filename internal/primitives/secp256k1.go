// Package primitives adapts the low-level cryptographic building blocks
// BIP-32/39/85 are built on: secp256k1 group arithmetic, HMAC-SHA512,
// RIPEMD-160(SHA-256(.)) fingerprinting, and Base58Check. The higher
// packages are built on top of these thin wrappers rather than
// re-deriving curve math themselves.
package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // BIP-32 fingerprints are specified in terms of RIPEMD-160
)

// ScalarSize is the width in bytes of a secp256k1 scalar or a BIP-32 secret key.
const ScalarSize = 32

// HMACSHA512 computes HMAC-SHA512(key, data), the primitive BIP-32 and
// BIP-85 both build their derivation and entropy-stretching steps on.
func HMACSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Fingerprint returns RIPEMD160(SHA256(compressedPubKey))[:4], the BIP-32
// parent fingerprint.
func Fingerprint(compressedPubKey []byte) [4]byte {
	sum := sha256.Sum256(compressedPubKey)
	r := ripemd160.New()
	r.Write(sum[:])
	digest := r.Sum(nil)

	var out [4]byte
	copy(out[:], digest[:4])
	return out
}

// ScalarFromBytes reduces b (big-endian) modulo the secp256k1 group order
// and reports whether b was already within [0, n). A true overflow means
// the caller's candidate scalar is >= n.
func ScalarFromBytes(b []byte) (scalar secp256k1.ModNScalar, overflow bool) {
	overflow = scalar.SetByteSlice(b)
	return scalar, overflow
}

// ScalarIsValid reports whether scalar is in the open interval (0, n),
// i.e. neither zero nor the result of a reduction (overflow).
func ScalarIsValid(scalar secp256k1.ModNScalar, overflow bool) bool {
	return !overflow && !scalar.IsZero()
}

// AddScalars returns (a + b) mod n.
func AddScalars(a, b secp256k1.ModNScalar) secp256k1.ModNScalar {
	var sum secp256k1.ModNScalar
	sum.Add2(&a, &b)
	return sum
}

// CompressedPubKeyFromScalar returns the 33-byte compressed public key for
// a private scalar, i.e. serP(scalar * G).
func CompressedPubKeyFromScalar(scalar secp256k1.ModNScalar) []byte {
	var point secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar, &point)
	point.ToAffine()
	pub := secp256k1.NewPublicKey(&point.X, &point.Y)
	return pub.SerializeCompressed()
}

// ParseCompressedPubKey parses a 33-byte compressed secp256k1 public key,
// validating that it lies on the curve.
func ParseCompressedPubKey(b []byte) (*secp256k1.PublicKey, error) {
	return secp256k1.ParsePubKey(b)
}

// AddGeneratorMultiple computes pub + scalar*G and reports whether the
// result is the point at infinity (an invalid child in BIP-32's CKDpub).
func AddGeneratorMultiple(pub *secp256k1.PublicKey, scalar secp256k1.ModNScalar) (compressed []byte, isInfinity bool) {
	var tweak, parent, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar, &tweak)
	pub.AsJacobian(&parent)
	secp256k1.AddNonConst(&tweak, &parent, &sum)
	sum.ToAffine()

	if sum.X.IsZero() && sum.Y.IsZero() {
		return nil, true
	}

	result := secp256k1.NewPublicKey(&sum.X, &sum.Y)
	return result.SerializeCompressed(), false
}
