package imem

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ParseWord parses a hexadecimal 32-bit word. A 0x or 0X prefix is optional.
func ParseWord(s string) (uint32, error) {
	digits := trimHexPrefix(s)
	if digits == "" {
		return 0, errors.Errorf("no hex digits in %q", s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", s)
	}

	return uint32(v), nil
}

// ParseWordLenient never fails. It parses the longest leading run of hex
// digits after an optional 0x prefix, returns 0 when there is none and
// saturates to 0xFFFFFFFF on overflow.
func ParseWordLenient(s string) uint32 {
	digits := trimHexPrefix(s)

	var v uint64

	for i := 0; i < len(digits); i++ {
		d, ok := hexDigit(digits[i])
		if !ok {
			break
		}

		v = v<<4 | uint64(d)
		if v > math.MaxUint32 {
			return math.MaxUint32
		}
	}

	return uint32(v)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}

	return s
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
