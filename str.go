package chomp

import "strconv"

// Conversions from raw matched bytes to text-level values. These are the
// only places in the package that materialize owned data: converting to
// string or to an integer copies by nature, and the copy is the documented
// point of the operation.

// String materializes p's output as an owned string.
func String(p Parser[[]byte]) Parser[string] {
	return Map(p, func(b []byte) string { return string(b) })
}

// Int64 parses an optionally signed decimal integer. Overflow is folded
// into the Error outcome via MapRes. The digit run is greedy, so a number
// at the very end of a buffer reports Incomplete like any open class.
func Int64() Parser[int64] {
	digits := Recognize(Pair(Opt(OneOf("+-")), Digit1))
	return MapRes(digits, func(b []byte) (int64, error) {
		return strconv.ParseInt(string(b), 10, 64)
	})
}

// Uint64 parses an unsigned decimal integer with the same overflow and
// streaming behavior as Int64.
func Uint64() Parser[uint64] {
	return MapRes(Digit1, func(b []byte) (uint64, error) {
		return strconv.ParseUint(string(b), 10, 64)
	})
}
