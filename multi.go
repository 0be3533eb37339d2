package chomp

// Many0 applies p repeatedly, collecting the outputs into an owned slice,
// and stops at p's first failure. It never fails itself: zero matches is
// Done with an empty collection and the original input.
//
// A child Done that consumes nothing terminates the loop without collecting
// that output. Without this guard a zero-width child (TakeWhile, Digit0,
// Opt of anything) would spin forever; termination is a hard invariant of
// every repetition combinator here, not a best effort.
//
// Incomplete from the child propagates: with the buffer exhausted it cannot
// be known whether one more iteration would occur.
func Many0[O any](p Parser[O]) Parser[[]O] {
	return func(in []byte) ([]byte, []O, error) {
		var outs []O
		rest := in
		for {
			next, out, err := p(rest)
			if err != nil {
				if IsIncomplete(err) {
					return nil, nil, err
				}
				return rest, outs, nil
			}
			if len(next) == len(rest) {
				// No forward progress: terminate, do not fail.
				return rest, outs, nil
			}
			outs = append(outs, out)
			rest = next
		}
	}
}

// Many1 is Many0 with a one-match minimum: a failure on the first attempt
// is reported as an error with Many1's own frame on top of the child's.
func Many1[O any](p Parser[O]) Parser[[]O] {
	more := Many0(p)
	return func(in []byte) ([]byte, []O, error) {
		rest, out, err := p(in)
		if err != nil {
			if IsIncomplete(err) {
				return nil, nil, err
			}
			return nil, nil, toParseError(err, in).push(KindMany1, in)
		}
		if len(rest) == len(in) {
			return rest, []O{out}, nil
		}
		rest, outs, err := more(rest)
		if err != nil {
			return nil, nil, err
		}
		return rest, append([]O{out}, outs...), nil
	}
}

// Count applies p exactly n times. Fewer matches than n is an error
// carrying Count's frame; Incomplete mid-run propagates.
func Count[O any](p Parser[O], n int) Parser[[]O] {
	return func(in []byte) ([]byte, []O, error) {
		outs := make([]O, 0, n)
		rest := in
		for i := 0; i < n; i++ {
			next, out, err := p(rest)
			if err != nil {
				if IsIncomplete(err) {
					return nil, nil, err
				}
				return nil, nil, toParseError(err, rest).push(KindCount, in)
			}
			outs = append(outs, out)
			rest = next
		}
		return rest, outs, nil
	}
}

// SeparatedList0 parses zero or more p separated by sep, returning the
// element outputs and discarding the separators.
//
// Trailing-separator policy: a separator is only committed once the element
// after it parses. A trailing separator with no following element is left
// unconsumed in the remainder, never an error.
func SeparatedList0[S, O any](sep Parser[S], p Parser[O]) Parser[[]O] {
	return func(in []byte) ([]byte, []O, error) {
		rest, out, err := p(in)
		if err != nil {
			if IsIncomplete(err) {
				return nil, nil, err
			}
			return in, nil, nil
		}
		outs := []O{out}
		for {
			afterSep, _, err := sep(rest)
			if err != nil {
				if IsIncomplete(err) {
					return nil, nil, err
				}
				return rest, outs, nil
			}
			next, out, err := p(afterSep)
			if err != nil {
				if IsIncomplete(err) {
					return nil, nil, err
				}
				// Separator without a following element: back off to
				// before the separator.
				return rest, outs, nil
			}
			if len(next) == len(rest) {
				// sep and p both matched zero-width; see Many0.
				return rest, outs, nil
			}
			outs = append(outs, out)
			rest = next
		}
	}
}

// SeparatedList1 is SeparatedList0 with a one-element minimum: a failure on
// the first element is an error with SeparatedList's frame on top of the
// child's. It shares the trailing-separator policy.
func SeparatedList1[S, O any](sep Parser[S], p Parser[O]) Parser[[]O] {
	list := SeparatedList0(sep, p)
	return func(in []byte) ([]byte, []O, error) {
		if _, _, err := p(in); err != nil {
			if IsIncomplete(err) {
				return nil, nil, err
			}
			return nil, nil, toParseError(err, in).push(KindSeparatedList, in)
		}
		return list(in)
	}
}
