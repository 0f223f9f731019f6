package bip32

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/not-for-prod/hdsecrets"
)

// Path is a parsed derivation path: a sequence of child indices, each
// already carrying HardenedOffset when the segment was marked hardened.
// Path{} (the empty path) denotes the master key itself.
type Path []uint32

// ParsePath parses a path in the standard "m/44'/0'/0'/0/0" notation.
// A hardening marker may be "'", "h", or "H". The leading "m" is
// required and case-sensitive.
func ParsePath(s string) (Path, error) {
	segments := strings.Split(s, "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "path %q must start with \"m\"", s)
	}

	path := make(Path, 0, len(segments)-1)
	for _, raw := range segments[1:] {
		if raw == "" {
			return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "path %q has an empty segment", s)
		}

		hardened := false
		digits := raw
		switch last := raw[len(raw)-1]; last {
		case '\'', 'h', 'H':
			hardened = true
			digits = raw[:len(raw)-1]
		}

		index, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "path %q has a non-numeric segment %q", s, raw)
		}
		if index >= uint64(HardenedOffset) {
			return nil, errors.Wrapf(hdsecrets.ErrBadFormat, "path %q segment %q is out of range for an index", s, raw)
		}

		childNumber := uint32(index)
		if hardened {
			childNumber += HardenedOffset
		}
		path = append(path, childNumber)
	}

	return path, nil
}

// String renders the path back into "m/44'/0'/..." notation.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, childNumber := range p {
		b.WriteByte('/')
		if childNumber >= HardenedOffset {
			b.WriteString(strconv.FormatUint(uint64(childNumber-HardenedOffset), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(childNumber), 10))
		}
	}
	return b.String()
}
