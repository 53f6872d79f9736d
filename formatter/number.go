package formatter

import (
	"math"
	"strconv"
)

// AppendFixed appends exactly width characters holding the decimal digits
// of v, most significant first. Leading zero digits are replaced by pad;
// the units digit is always a literal digit, so 0 renders as pad...pad0.
// Digits that do not fit are dropped, which reduces v modulo 10^width.
func AppendFixed(dst []byte, v uint32, width int, pad byte) []byte {
	if width <= 0 {
		return dst
	}
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, pad)
	}
	for i := len(dst) - 1; i >= start; i-- {
		dst[i] = '0' + byte(v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return dst
}

var upperDigits = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}

// appendUnsigned writes v in base 2 or 16 without leading zeros, using
// upper-case hex digits.
func appendUnsigned(dst []byte, v uint64, base uint64) []byte {
	var tmp [64]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = upperDigits[v%base]
		v /= base
		if v == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendHex appends the 8-bit two's complement of v in upper-case hex
func AppendHex(dst []byte, v int8) []byte {
	return appendUnsigned(dst, uint64(uint8(v)), 16)
}

// AppendBinary appends the 8-bit two's complement of v in binary
func AppendBinary(dst []byte, v int8) []byte {
	return appendUnsigned(dst, uint64(uint8(v)), 2)
}

// appendReal renders a float the way a serial Print does: fixed decimals,
// with nan and inf spelled out.
func appendReal(dst []byte, v float64, precision, bitSize int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, v, 'f', precision, bitSize)
}
