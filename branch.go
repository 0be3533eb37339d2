package chomp

// Alt tries each parser in order on the same input and returns the first
// Done.
//
// A child's Incomplete is returned immediately without trying later
// alternatives: more data might let the current branch succeed, and
// preferring a later branch here could produce a different parse than a
// retry with a longer buffer would. Determinism under streaming wins over
// eagerness.
//
// Only when every child fails does Alt fail. The tie-break is fixed: the
// first child's error is the one reported, with Alt's own frame appended in
// the verbose build. Later branches' failures are discarded; wrap the
// children yourself if you need them.
func Alt[O any](parsers ...Parser[O]) Parser[O] {
	return func(in []byte) ([]byte, O, error) {
		var zero O
		var first *ParseError
		for _, p := range parsers {
			rest, out, err := p(in)
			if err == nil {
				return rest, out, nil
			}
			if IsIncomplete(err) {
				return nil, zero, err
			}
			if first == nil {
				first = toParseError(err, in)
			}
		}
		if first == nil {
			// Alt with no branches cannot match anything.
			return nil, zero, NewError(KindAlt, in)
		}
		return nil, zero, first.push(KindAlt, in)
	}
}
