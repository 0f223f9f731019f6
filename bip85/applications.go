package bip85

import (
	"encoding/ascii85"
	"encoding/base64"
	"encoding/hex"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
	"github.com/not-for-prod/hdsecrets/bip32"
	"github.com/not-for-prod/hdsecrets/bip39"
	"github.com/not-for-prod/hdsecrets/wif"
)

// languageCodes assigns each BIP-39 language the hardened path segment
// BIP-85 reserves for it. Only English ships word data (see bip39), so
// NewWordlist fails for the other languages listed here; Portuguese has
// no code in this table and Mnemonic reports ErrNotImplemented for it.
var languageCodes = map[bip39.Language]uint32{
	bip39.English:            0,
	bip39.Japanese:           1,
	bip39.Korean:             2,
	bip39.Spanish:            3,
	bip39.ChineseSimplified:  4,
	bip39.ChineseTraditional: 5,
	bip39.French:             6,
	bip39.Italian:            7,
	bip39.Czech:              8,
}

// Mnemonic derives a BIP-39 mnemonic of wordCount words in wl's language
// from master at the standard application path
// m/83696968'/39'/<language>'/<wordCount>'/<index>'.
func Mnemonic(master *bip32.ExtendedKey, wl *bip39.Wordlist, wordCount, index uint32) ([]string, error) {
	entBits, ok := wordBitsByCount[wordCount]
	if !ok {
		return nil, errors.Wrapf(hdsecrets.ErrOutOfRange, "word count must be one of %v", bip39.ValidWordCounts())
	}
	language, ok := languageCodes[wl.Language()]
	if !ok {
		return nil, errors.Wrapf(hdsecrets.ErrNotImplemented, "no BIP-85 language code registered for %q", wl.Language())
	}

	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppMnemonic + bip32.HardenedOffset,
		language + bip32.HardenedOffset,
		wordCount + bip32.HardenedOffset,
		index + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return nil, err
	}

	trimmed := entropy[:entBits/8]
	return bip39.EntropyToMnemonic(trimmed, wl)
}

// wordBitsByCount mirrors bip39's ENT table.
var wordBitsByCount = map[uint32]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// WIF derives a WIF-encoded private key suitable for spending, at
// m/83696968'/2'/<index>'.
func WIF(master *bip32.ExtendedKey, mainnet bool, index uint32) (string, error) {
	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppWIF + bip32.HardenedOffset,
		index + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return "", err
	}

	var scalar [32]byte
	copy(scalar[:], entropy[:32])
	return wif.Encode(scalar, mainnet, true), nil
}

// XPRV derives a brand-new, unrelated BIP-32 master extended private key
// at m/83696968'/32'/<index>'. The 64 bytes of application entropy split
// evenly: the first 32 become the new tree's chain code, the last 32 its
// root private scalar.
func XPRV(master *bip32.ExtendedKey, mainnet bool, index uint32) (*bip32.ExtendedKey, error) {
	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppXPRV + bip32.HardenedOffset,
		index + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return nil, err
	}

	var chainCode [32]byte
	copy(chainCode[:], entropy[:32])
	var data [33]byte
	data[0] = 0x00
	copy(data[1:], entropy[32:])

	return bip32.New(bip32.Hardened(mainnet), 0, [4]byte{}, 0, chainCode, data)
}

// Hex derives numBytes (16 to 64) of raw hex-encoded entropy at
// m/83696968'/128169'/<numBytes>'.
func Hex(master *bip32.ExtendedKey, numBytes uint32) (string, error) {
	if numBytes < 16 || numBytes > 64 {
		return "", errors.Wrap(hdsecrets.ErrOutOfRange, "num_bytes must be in [16, 64]")
	}
	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppHex + bip32.HardenedOffset,
		numBytes + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(entropy[:numBytes]), nil
}

// PasswordBase64 derives a base64 password of pwdLen characters (20 to
// 86) at m/83696968'/707764'/<pwdLen>'.
func PasswordBase64(master *bip32.ExtendedKey, pwdLen uint32) (string, error) {
	if pwdLen < 20 || pwdLen > 86 {
		return "", errors.Wrap(hdsecrets.ErrOutOfRange, "pwd_len must be in [20, 86]")
	}
	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppPWDBase64 + bip32.HardenedOffset,
		pwdLen + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(entropy)
	return encoded[:pwdLen], nil
}

// PasswordBase85 derives a base85 password of pwdLen characters (10 to
// 80) at m/83696968'/707785'/<pwdLen>'.
func PasswordBase85(master *bip32.ExtendedKey, pwdLen uint32) (string, error) {
	if pwdLen < 10 || pwdLen > 80 {
		return "", errors.Wrap(hdsecrets.ErrOutOfRange, "pwd_len must be in [10, 80]")
	}
	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppPWDBase85 + bip32.HardenedOffset,
		pwdLen + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return "", err
	}

	dst := make([]byte, ascii85.MaxEncodedLen(len(entropy)))
	n := ascii85.Encode(dst, entropy)
	encoded := string(dst[:n])
	if uint32(len(encoded)) < pwdLen {
		return "", errors.Wrap(hdsecrets.ErrOutOfRange, "entropy did not produce enough base85 characters for pwd_len")
	}
	return encoded[:pwdLen], nil
}

// RawRNG derives numBytes of raw deterministic random output via the
// SHAKE-256 DRNG, at m/83696968'/0'/<numBytes>'.
func RawRNG(master *bip32.ExtendedKey, numBytes uint32) ([]byte, error) {
	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppRNG + bip32.HardenedOffset,
		numBytes + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return nil, err
	}
	drng, err := NewDRNG(entropy)
	if err != nil {
		return nil, err
	}
	return drng.Read(int(numBytes)), nil
}

// Dice simulates rollCount rolls of a sides-sided die at
// m/83696968'/89101'/<sides>'/<rollCount>'/<index>'. Each draw reads
// ceil(bits/8) bytes from the DRNG and keeps their leading bits, where
// bits is ceil(log2(sides)); draws are rejection-sampled so every face
// has equal probability: a sample that falls outside [0, sides) is
// discarded and the next draw is read.
// Results are rendered as 0-indexed face values, comma-separated, and
// zero-padded to the width of sides-1 so every roll takes the same
// column width.
func Dice(master *bip32.ExtendedKey, sides, rollCount, index uint32) (string, error) {
	if sides < 2 {
		return "", errors.Wrap(hdsecrets.ErrOutOfRange, "sides must be at least 2")
	}
	if rollCount == 0 {
		return "", errors.Wrap(hdsecrets.ErrOutOfRange, "roll_count must be at least 1")
	}

	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppDice + bip32.HardenedOffset,
		sides + bip32.HardenedOffset,
		rollCount + bip32.HardenedOffset,
		index + bip32.HardenedOffset,
	}
	entropy, err := DeriveEntropy(master, path)
	if err != nil {
		return "", err
	}
	drng, err := NewDRNG(entropy)
	if err != nil {
		return "", err
	}

	bitsPerRoll := int(math.Ceil(math.Log2(float64(sides))))
	bytesPerDraw := (bitsPerRoll + 7) / 8
	shift := uint(bytesPerDraw*8 - bitsPerRoll)

	width := len(itoa(sides - 1))
	rolls := make([]string, rollCount)
	for i := uint32(0); i < rollCount; i++ {
		for {
			draw := drng.Read(bytesPerDraw)
			var value uint32
			for _, b := range draw {
				value = value<<8 | uint32(b)
			}
			value >>= shift
			if value < sides {
				rolls[i] = padLeft(itoa(value), width)
				break
			}
		}
	}

	return strings.Join(rolls, ","), nil
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// RSA is not implemented: BIP-85's RSA application (code 828365) requires
// a probabilistic-prime-generation PRF this module does not implement.
// The path still validates so a caller can distinguish a malformed path
// from an unsupported one.
func RSA(master *bip32.ExtendedKey, keyBits, index uint32) error {
	path := bip32.Path{
		Purpose + bip32.HardenedOffset,
		AppRSA + bip32.HardenedOffset,
		keyBits + bip32.HardenedOffset,
		index + bip32.HardenedOffset,
	}
	if err := ValidatePath(path); err != nil {
		return err
	}
	return errors.Wrap(hdsecrets.ErrNotImplemented, "BIP-85 RSA application")
}
