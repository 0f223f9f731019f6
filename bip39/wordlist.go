package bip39

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
)

//go:embed wordlists/*.txt
var wordlistFS embed.FS

// Language identifies one of the BIP-39 wordlist languages.
type Language string

// The BIP-39 wordlist languages. Only English ships with word data; the
// rest are registered so callers and Languages() see the full namespace,
// but NewWordlist reports ErrNotImplemented for them until their source
// files are available. See DESIGN.md.
const (
	English            Language = "english"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	Czech              Language = "czech"
	French             Language = "french"
	Italian            Language = "italian"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Portuguese         Language = "portuguese"
	Spanish            Language = "spanish"
)

// wordlistDigests holds the expected SHA-256 of each language's packaged
// word file, the same integrity check the original bip39-english.txt
// loader calls out as a TODO. A language with no entry here is not
// packaged.
var wordlistDigests = map[Language]string{
	English: "2f5eed53a4727b4bf8880d8f3f199efc90e58503646d9ff8eff3a2ed3b24dbda",
}

// NumWords is the fixed size of every BIP-39 wordlist: 2^11 entries, one
// per 11-bit group.
const NumWords = 2048

// Wordlist is a loaded, integrity-checked BIP-39 word list with O(1)
// lookup in both directions.
type Wordlist struct {
	language Language
	words    [NumWords]string
	index    map[string]int
}

// Languages returns every language this package knows the name of,
// regardless of whether its word data is packaged.
func Languages() []Language {
	return []Language{
		English, ChineseSimplified, ChineseTraditional, Czech, French,
		Italian, Japanese, Korean, Portuguese, Spanish,
	}
}

// NewWordlist loads and verifies the wordlist for lang.
func NewWordlist(lang Language) (*Wordlist, error) {
	digest, ok := wordlistDigests[lang]
	if !ok {
		return nil, errors.Wrapf(hdsecrets.ErrNotImplemented, "wordlist data for %q is not packaged", lang)
	}

	raw, err := wordlistFS.ReadFile("wordlists/" + string(lang) + ".txt")
	if err != nil {
		return nil, errors.Wrapf(hdsecrets.ErrNotImplemented, "wordlist data for %q is not packaged", lang)
	}

	sum := sha256.Sum256(raw)
	if hex.EncodeToString(sum[:]) != digest {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "wordlist %q failed integrity check", lang)
	}

	wl := &Wordlist{
		language: lang,
		index:    make(map[string]int, NumWords),
	}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	n := 0
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if n >= NumWords {
			return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "wordlist %q has more than %d entries", lang, NumWords)
		}
		wl.words[n] = word
		wl.index[word] = n
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "wordlist %q: %v", lang, err)
	}
	if n != NumWords {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "wordlist %q has %d entries, want %d", lang, n, NumWords)
	}

	return wl, nil
}

// Language returns the language this wordlist was loaded for.
func (w *Wordlist) Language() Language { return w.language }

// Word returns the word at an 11-bit index in [0, NumWords).
func (w *Wordlist) Word(index int) (string, error) {
	if index < 0 || index >= NumWords {
		return "", errors.Wrapf(hdsecrets.ErrOutOfRange, "word index %d out of range", index)
	}
	return w.words[index], nil
}

// IndexOf returns the 11-bit index of word, or ErrUnknownWord if it is not
// in this wordlist.
func (w *Wordlist) IndexOf(word string) (int, error) {
	index, ok := w.index[word]
	if !ok {
		return 0, errors.Wrapf(hdsecrets.ErrUnknownWord, "%q", word)
	}
	return index, nil
}

func init() {
	// Sanity-check the digest table refers only to languages Languages()
	// knows about; a stray entry would silently shadow NewWordlist's
	// ErrNotImplemented path.
	known := make(map[Language]bool)
	for _, l := range Languages() {
		known[l] = true
	}
	for l := range wordlistDigests {
		if !known[l] {
			panic(fmt.Sprintf("bip39: wordlistDigests has unknown language %q", l))
		}
	}
}
