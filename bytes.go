package chomp

import "bytes"

// Tag matches the literal lit at the start of the input.
//
// When the input is shorter than lit but matches as far as it goes, Tag
// returns Incomplete with the exact number of missing bytes: a fixed-length
// matcher always knows its bound. Contrast the greedy character classes,
// which return Incomplete with an unknown bound at the end of the buffer.
func Tag(lit []byte) Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if len(in) >= len(lit) {
			if bytes.HasPrefix(in, lit) {
				prefix, rest := splitAt(in, len(lit))
				return rest, prefix, nil
			}
			return nil, nil, NewError(KindTag, in)
		}
		if bytes.HasPrefix(lit, in) {
			return nil, nil, needMore(Needed(len(lit) - len(in)))
		}
		return nil, nil, NewError(KindTag, in)
	}
}

// TagString is Tag for a string literal.
func TagString(lit string) Parser[[]byte] {
	return Tag([]byte(lit))
}

// Take consumes exactly n bytes, or reports how many are missing.
func Take(n int) Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if len(in) < n {
			return nil, nil, needMore(Needed(n - len(in)))
		}
		prefix, rest := splitAt(in, n)
		return rest, prefix, nil
	}
}

// TakeUntil consumes everything before the first occurrence of pat, leaving
// pat itself unconsumed. Absence of pat is Incomplete, not Error: a longer
// buffer may still contain it. An empty pat is a misuse and fails.
func TakeUntil(pat []byte) Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if len(pat) == 0 {
			return nil, nil, NewError(KindTakeUntil, in)
		}
		i := bytes.Index(in, pat)
		if i < 0 {
			return nil, nil, needMore(NeedMoreData)
		}
		prefix, rest := splitAt(in, i)
		return rest, prefix, nil
	}
}

// TakeTill consumes everything before the first byte satisfying pred. The
// matching byte stays in the remainder. When no byte satisfies pred the
// boundary is unknown and the outcome is Incomplete.
func TakeTill(pred func(byte) bool) Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		i := indexFunc(in, pred)
		if i < 0 {
			return nil, nil, needMore(NeedMoreData)
		}
		prefix, rest := splitAt(in, i)
		return rest, prefix, nil
	}
}

// TakeTill1 is TakeTill but fails when the very first byte already
// satisfies pred.
func TakeTill1(pred func(byte) bool) Parser[[]byte] {
	till := TakeTill(pred)
	return func(in []byte) ([]byte, []byte, error) {
		rest, out, err := till(in)
		if err != nil {
			return nil, nil, err
		}
		if len(out) == 0 {
			return nil, nil, NewError(KindTakeTill, in)
		}
		return rest, out, nil
	}
}

// TakeWhile consumes the maximal prefix of bytes satisfying pred. A
// zero-width match is a legal Done; repetition combinators guard against it.
// If every byte of the buffer satisfies pred the match could extend, so the
// outcome is Incomplete (unknown bound) rather than Done. Wrap with
// Complete when the buffer is known to be the whole input.
func TakeWhile(pred func(byte) bool) Parser[[]byte] {
	return class0(pred)
}

// TakeWhile1 is TakeWhile but requires at least one matching byte.
func TakeWhile1(pred func(byte) bool) Parser[[]byte] {
	return class1(pred, KindTakeWhile)
}

// class0 implements the greedy zero-or-more scan shared by TakeWhile and
// the character classes.
func class0(pred func(byte) bool) Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		i := indexFunc(in, func(c byte) bool { return !pred(c) })
		if i < 0 {
			return nil, nil, needMore(NeedMoreData)
		}
		prefix, rest := splitAt(in, i)
		return rest, prefix, nil
	}
}

// class1 is class0 with a one-byte minimum, failing with kind on an
// immediate mismatch.
func class1(pred func(byte) bool, kind ErrorKind) Parser[[]byte] {
	scan := class0(pred)
	return func(in []byte) ([]byte, []byte, error) {
		if len(in) == 0 {
			return nil, nil, needMore(1)
		}
		if !pred(in[0]) {
			return nil, nil, NewError(kind, in)
		}
		return scan(in)
	}
}
