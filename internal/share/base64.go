// Package share encodes schedules into compact, URL-safe link values and
// parses them back.
package share

import (
	"math"
	"strings"
)

// alphabet is the URL-safe symbol set. Index 0 is 'A'.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const base = uint64(len(alphabet))

// EncodeBase64 renders n as a base-64 positional number, most significant
// symbol first. Zero encodes to the empty string.
func EncodeBase64(n uint64) string {
	if n == 0 {
		return ""
	}
	var buf [11]byte // 64 bits need at most 11 symbols
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%base]
		n /= base
	}
	return string(buf[i:])
}

// DecodeBase64 is the inverse of EncodeBase64. The empty string decodes to 0.
func DecodeBase64(s string) (uint64, error) {
	var n uint64
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(alphabet, s[i])
		if d < 0 {
			return 0, &DecodeError{Input: s, Pos: i, Err: ErrInvalidSymbol}
		}
		if n > (math.MaxUint64-uint64(d))/base {
			return 0, &DecodeError{Input: s, Pos: i, Err: ErrOverflow}
		}
		n = n*base + uint64(d)
	}
	return n, nil
}
