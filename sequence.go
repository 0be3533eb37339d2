package chomp

// Tuple2 aggregates the outputs of a two-parser sequence.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Pair runs first then second, threading the remainder between them, and
// returns both outputs. The first non-Done child result is returned
// verbatim: Error and Incomplete alike short-circuit without masking.
func Pair[A, B any](first Parser[A], second Parser[B]) Parser[Tuple2[A, B]] {
	return func(in []byte) ([]byte, Tuple2[A, B], error) {
		var zero Tuple2[A, B]
		rest, a, err := first(in)
		if err != nil {
			return nil, zero, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return nil, zero, err
		}
		return rest, Tuple2[A, B]{First: a, Second: b}, nil
	}
}

// Seq runs the parsers in order and collects their outputs into an owned
// slice. Like Pair it short-circuits on the first non-Done result.
func Seq[O any](parsers ...Parser[O]) Parser[[]O] {
	return func(in []byte) ([]byte, []O, error) {
		outs := make([]O, 0, len(parsers))
		rest := in
		for _, p := range parsers {
			next, out, err := p(rest)
			if err != nil {
				return nil, nil, err
			}
			outs = append(outs, out)
			rest = next
		}
		return rest, outs, nil
	}
}

// Preceded discards prefix's output and returns p's.
func Preceded[A, B any](prefix Parser[A], p Parser[B]) Parser[B] {
	return func(in []byte) ([]byte, B, error) {
		var zero B
		rest, _, err := prefix(in)
		if err != nil {
			return nil, zero, err
		}
		return p(rest)
	}
}

// Terminated returns p's output and discards suffix's.
func Terminated[A, B any](p Parser[A], suffix Parser[B]) Parser[A] {
	return func(in []byte) ([]byte, A, error) {
		var zero A
		rest, out, err := p(in)
		if err != nil {
			return nil, zero, err
		}
		rest, _, err = suffix(rest)
		if err != nil {
			return nil, zero, err
		}
		return rest, out, nil
	}
}

// Delimited matches open, p, close in order and keeps only p's output. The
// delimiters are consumed and discarded.
func Delimited[A, B, C any](open Parser[A], p Parser[B], end Parser[C]) Parser[B] {
	return Preceded(open, Terminated(p, end))
}

// SeparatedPair matches first, sep, second and returns the two outer
// outputs, discarding the separator's.
func SeparatedPair[A, S, B any](first Parser[A], sep Parser[S], second Parser[B]) Parser[Tuple2[A, B]] {
	return Pair(Terminated(first, sep), second)
}
