package chomp

// Option is the output of Opt: a value that may be absent.
type Option[O any] struct {
	Value O
	Valid bool
}

// Some wraps a present value.
func Some[O any](v O) Option[O] { return Option[O]{Value: v, Valid: true} }

// Opt makes p optional. A failing p maps to Done with an absent output and
// the original, untouched input: no partial consumption leaks out of the
// failed attempt. Opt is the one combinator that absorbs an Error; an
// Incomplete still propagates, because more data could turn the absent
// branch into a present one.
func Opt[O any](p Parser[O]) Parser[Option[O]] {
	return func(in []byte) ([]byte, Option[O], error) {
		rest, out, err := p(in)
		if err != nil {
			if IsIncomplete(err) {
				return nil, Option[O]{}, err
			}
			return in, Option[O]{}, nil
		}
		return rest, Some(out), nil
	}
}

// Map applies f to p's output. f cannot fail; use MapRes when it can.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in []byte) ([]byte, B, error) {
		var zero B
		rest, out, err := p(in)
		if err != nil {
			return nil, zero, err
		}
		return rest, f(out), nil
	}
}

// MapRes applies a fallible conversion to p's output. A conversion error
// (overflow, bad encoding) is folded into the Error outcome under MapRes's
// own discriminant, at the position p was invoked on.
func MapRes[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return func(in []byte) ([]byte, B, error) {
		var zero B
		rest, out, err := p(in)
		if err != nil {
			return nil, zero, err
		}
		converted, err := f(out)
		if err != nil {
			return nil, zero, NewError(KindMapRes, in)
		}
		return rest, converted, nil
	}
}

// Value discards p's output and produces v instead.
func Value[A, B any](v B, p Parser[A]) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Recognize discards p's output and produces the consumed input span
// instead, as a zero-copy view.
func Recognize[O any](p Parser[O]) Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		rest, _, err := p(in)
		if err != nil {
			return nil, nil, err
		}
		return rest, in[:Offset(in, rest)], nil
	}
}

// Peek runs p without consuming anything: on Done the remainder is the
// original input.
func Peek[O any](p Parser[O]) Parser[O] {
	return func(in []byte) ([]byte, O, error) {
		var zero O
		_, out, err := p(in)
		if err != nil {
			return nil, zero, err
		}
		return in, out, nil
	}
}

// Verify fails with its own discriminant when p succeeds but pred rejects
// the output.
func Verify[O any](p Parser[O], pred func(O) bool) Parser[O] {
	return func(in []byte) ([]byte, O, error) {
		var zero O
		rest, out, err := p(in)
		if err != nil {
			return nil, zero, err
		}
		if !pred(out) {
			return nil, zero, NewError(KindVerify, in)
		}
		return rest, out, nil
	}
}

// Complete converts Incomplete into Error, for callers whose buffer is the
// entire input and for bridges (regexp) that cannot express "needs more".
// The greedy character classes only ever finish at the end of such a buffer
// when wrapped this way.
func Complete[O any](p Parser[O]) Parser[O] {
	return func(in []byte) ([]byte, O, error) {
		var zero O
		rest, out, err := p(in)
		if err != nil {
			if IsIncomplete(err) {
				return nil, zero, NewError(KindComplete, in)
			}
			return nil, zero, err
		}
		return rest, out, nil
	}
}
