package chomp

import "strings"

// Byte classification helpers, ASCII only. Multi-byte text belongs to a
// layer above the byte engine.

func isDigit(c byte) bool    { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool    { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlphanum(c byte) bool { return isDigit(c) || isAlpha(c) }
func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }
func isSpace(c byte) bool    { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Character-class parsers. All of them are greedy: they consume the maximal
// matching prefix, and when the whole buffer matches they return Incomplete
// because the true boundary is only known once a non-matching byte or the
// end of the stream is seen. This asymmetry against Tag/Take is deliberate
// and part of the streaming contract; see TakeWhile.
//
// The 0-variants accept a zero-width match; the 1-variants require at least
// one byte and fail with their class discriminant otherwise.
var (
	Digit0    = class0(isDigit)
	Digit1    = class1(isDigit, KindDigit)
	Alpha0    = class0(isAlpha)
	Alpha1    = class1(isAlpha, KindAlpha)
	Alphanum0 = class0(isAlphanum)
	Alphanum1 = class1(isAlphanum, KindAlphanumeric)
	HexDigit0 = class0(isHexDigit)
	HexDigit1 = class1(isHexDigit, KindHexDigit)
	OctDigit0 = class0(isOctDigit)
	OctDigit1 = class1(isOctDigit, KindOctDigit)
	Space0    = class0(isSpace)
	Space1    = class1(isSpace, KindSpace)
)

// AnyByte consumes a single byte. An empty buffer is Incomplete(1), never
// an error.
func AnyByte(in []byte) ([]byte, byte, error) {
	if len(in) == 0 {
		return nil, 0, needMore(1)
	}
	return in[1:], in[0], nil
}

// Satisfy consumes one byte for which pred returns true.
func Satisfy(pred func(byte) bool) Parser[byte] {
	return satisfy(pred, KindSatisfy)
}

// Char matches exactly the byte c.
func Char(c byte) Parser[byte] {
	return satisfy(func(b byte) bool { return b == c }, KindChar)
}

// OneOf matches any single byte contained in set.
func OneOf(set string) Parser[byte] {
	return satisfy(func(b byte) bool { return strings.IndexByte(set, b) >= 0 }, KindOneOf)
}

// NoneOf matches any single byte not contained in set.
func NoneOf(set string) Parser[byte] {
	return satisfy(func(b byte) bool { return strings.IndexByte(set, b) < 0 }, KindNoneOf)
}

func satisfy(pred func(byte) bool, kind ErrorKind) Parser[byte] {
	return func(in []byte) ([]byte, byte, error) {
		if len(in) == 0 {
			return nil, 0, needMore(1)
		}
		if !pred(in[0]) {
			return nil, 0, NewError(kind, in)
		}
		return in[1:], in[0], nil
	}
}
