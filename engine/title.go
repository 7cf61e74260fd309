package engine

import (
	"encoding/binary"
	"errors"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ErrBadTitle is returned by DecodeTitle for titles that are not valid
// UTF-16.
var ErrBadTitle = errors.New("engine: title is not valid UTF-16")

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeTitle converts s to UTF-16 code units.
func EncodeTitle(s string) []uint16 {
	b, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units
}

// DecodeTitle converts UTF-16 code units to UTF-8. Unpaired surrogates
// are an error.
func DecodeTitle(units []uint16) (string, error) {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	out, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Join(ErrBadTitle, err)
	}
	s := string(out)
	// The decoder substitutes U+FFFD for unpaired surrogates.
	if strings.Count(s, "\uFFFD") != countReplacement(units) {
		return "", ErrBadTitle
	}
	return s, nil
}

func countReplacement(units []uint16) int {
	n := 0
	for _, u := range units {
		if u == 0xFFFD {
			n++
		}
	}
	return n
}
