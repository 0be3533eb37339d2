package chomp

// The input to a parser is a plain byte slice. A slice already is the
// zero-copy view the library is built around: sub-views are re-slices of the
// same backing array, splitting is O(1), and nothing below ever copies bytes
// unless a combinator documents that it materializes an owned value.
// Two views are compared by content (bytes.Equal), never by backing-array
// identity.

// Offset reports how many bytes of in were consumed to reach rest. rest must
// be a suffix view of in, which holds for every rest a parser returns and
// for every Frame.At recorded during that parse.
func Offset(in, rest []byte) int {
	return len(in) - len(rest)
}

// splitAt divides in into the first n bytes and the remainder. The caller
// guarantees n <= len(in).
func splitAt(in []byte, n int) (prefix, rest []byte) {
	return in[:n], in[n:]
}

// indexFunc returns the position of the first byte satisfying pred, or -1.
func indexFunc(in []byte, pred func(byte) bool) int {
	for i := 0; i < len(in); i++ {
		if pred(in[i]) {
			return i
		}
	}
	return -1
}
