// Package bip39 implements BIP-39 mnemonic seed phrases: entropy/word
// conversion with an embedded SHA-256 checksum, mnemonic validation, and
// PBKDF2 seed stretching.
package bip39

import (
	"crypto/sha256"
	"strings"

	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
)

// entropyBitsByWordCount maps a valid mnemonic word count to the entropy
// width (in bits) it encodes, per BIP-39's ENT/CS table.
var entropyBitsByWordCount = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// ValidWordCounts returns the five word counts BIP-39 permits, ascending.
func ValidWordCounts() []int { return []int{12, 15, 18, 21, 24} }

// checksumBits returns the number of checksum bits a mnemonic of
// wordCount words carries: ENT/32.
func checksumBits(wordCount int) int {
	return entropyBitsByWordCount[wordCount] / 32
}

// EntropyToMnemonic encodes entropy (16, 20, 24, 28, or 32 bytes) into a
// checksummed mnemonic using wl.
func EntropyToMnemonic(entropy []byte, wl *Wordlist) ([]string, error) {
	entBits := len(entropy) * 8
	wordCount := 0
	for wc, bits := range entropyBitsByWordCount {
		if bits == entBits {
			wordCount = wc
			break
		}
	}
	if wordCount == 0 {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "entropy must be 16, 20, 24, 28, or 32 bytes, got %d", len(entropy))
	}

	csBits := checksumBits(wordCount)
	checksum := sha256.Sum256(entropy)

	// Concatenate entropy and the leading csBits of its SHA-256 digest
	// into one bit buffer, then slice it into 11-bit word indices.
	bits := make([]byte, 0, entBits+8)
	bits = appendBits(bits, entropy, entBits)
	bits = appendBits(bits, checksum[:], csBits)

	words := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		index := readBits(bits, i*11, 11)
		word, err := wl.Word(index)
		if err != nil {
			return nil, err
		}
		words[i] = word
	}
	return words, nil
}

// MnemonicToEntropy decodes a mnemonic back into its entropy, validating
// word count, wordlist membership, and the embedded checksum.
func MnemonicToEntropy(words []string, wl *Wordlist) ([]byte, error) {
	wordCount := len(words)
	entBits, ok := entropyBitsByWordCount[wordCount]
	if !ok {
		return nil, errors.Wrapf(hdsecrets.ErrWrongCount, "got %d words", wordCount)
	}
	csBits := checksumBits(wordCount)

	bits := make([]byte, entBits+csBits)
	for i, word := range words {
		index, err := wl.IndexOf(word)
		if err != nil {
			return nil, err
		}
		writeBits(bits, i*11, 11, index)
	}

	entropy := packBits(bits[:entBits])
	checksum := sha256.Sum256(entropy)
	wantChecksum := make([]byte, 0, 1)
	wantChecksum = appendBits(wantChecksum, checksum[:], csBits)

	gotChecksumBits := bits[entBits:]
	for i, bit := range gotChecksumBits {
		wantBit := readBitAt(wantChecksum, i)
		if bit != wantBit {
			return nil, errors.Wrap(hdsecrets.ErrBadChecksum, "mnemonic checksum does not match its entropy")
		}
	}

	return entropy, nil
}

// Validate reports whether words form a structurally valid, checksummed
// mnemonic in wl.
func Validate(words []string, wl *Wordlist) error {
	_, err := MnemonicToEntropy(words, wl)
	return err
}

// Split divides a space-separated mnemonic phrase into its words,
// collapsing repeated whitespace the way a pasted phrase commonly has.
func Split(phrase string) []string {
	return strings.Fields(phrase)
}

// Join renders words back into a single space-separated phrase.
func Join(words []string) string {
	return strings.Join(words, " ")
}

// appendBits appends the high n bits of src (MSB first) to a bit-per-byte
// buffer and returns the extended buffer.
func appendBits(dst []byte, src []byte, n int) []byte {
	for i := 0; i < n; i++ {
		byteIndex := i / 8
		bitIndex := 7 - (i % 8)
		bit := (src[byteIndex] >> uint(bitIndex)) & 1
		dst = append(dst, bit)
	}
	return dst
}

// readBitAt returns the bit at position i in a bit-per-byte buffer built
// by appendBits, or 0 if i is past its end.
func readBitAt(buf []byte, i int) byte {
	if i >= len(buf) {
		return 0
	}
	return buf[i]
}

// readBits reads n bits (MSB first) from a bit-per-byte buffer starting
// at offset and returns them as an integer.
func readBits(bits []byte, offset, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = (v << 1) | int(bits[offset+i])
	}
	return v
}

// writeBits writes the low n bits of value (MSB first) into a
// bit-per-byte buffer starting at offset.
func writeBits(bits []byte, offset, n, value int) {
	for i := 0; i < n; i++ {
		shift := n - 1 - i
		bits[offset+i] = byte((value >> uint(shift)) & 1)
	}
}

// packBits packs a bit-per-byte buffer (length a multiple of 8) into
// real bytes, MSB first.
func packBits(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i, bit := range bits {
		if bit != 0 {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}
	return out
}
