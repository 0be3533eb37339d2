package chomp

// Padded discards ASCII whitespace around p. Because Space0 is a greedy
// class, Padded inherits the streaming asymmetry: trailing whitespace that
// runs to the end of the buffer reports Incomplete until a non-space byte
// (or an explicit terminator in the grammar) bounds it.
func Padded[O any](p Parser[O]) Parser[O] {
	return Delimited(Space0, p, Space0)
}

// PadLeft discards leading ASCII whitespace only, which keeps a grammar
// decidable at the end of a buffer.
func PadLeft[O any](p Parser[O]) Parser[O] {
	return Preceded(Space0, p)
}
