// Package regex bridges compiled regular expressions into the combinator
// model. The expression engine only operates on fully materialized input,
// so these parsers return Done or Error and never Incomplete; on a
// streaming source, match only after the buffer is known to be complete.
package regex

import (
	"regexp"

	"github.com/dhamidi/chomp"
)

// Match succeeds when re matches a prefix of the input, consuming and
// producing the matched span. A match that does not start at the first
// byte is a mismatch; anchor with \A (or structure the grammar so the
// prefix is already positioned) for clarity.
func Match(re *regexp.Regexp) chomp.Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		loc := re.FindIndex(in)
		if loc == nil || loc[0] != 0 {
			return nil, nil, chomp.NewError(chomp.KindRegexp, in)
		}
		return in[loc[1]:], in[:loc[1]], nil
	}
}

// Find succeeds on the first match of re anywhere in the input, consuming
// through the end of the match and producing the matched span. Bytes
// before the match are consumed and discarded.
func Find(re *regexp.Regexp) chomp.Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		loc := re.FindIndex(in)
		if loc == nil {
			return nil, nil, chomp.NewError(chomp.KindRegexp, in)
		}
		return in[loc[1]:], in[loc[0]:loc[1]], nil
	}
}

// Captures is Match exposing the submatches: element 0 is the whole match,
// the rest are capture groups in order, nil where a group did not
// participate. All views alias the input.
func Captures(re *regexp.Regexp) chomp.Parser[[][]byte] {
	return func(in []byte) ([]byte, [][]byte, error) {
		idx := re.FindSubmatchIndex(in)
		if idx == nil || idx[0] != 0 {
			return nil, nil, chomp.NewError(chomp.KindRegexp, in)
		}
		groups := make([][]byte, 0, len(idx)/2)
		for i := 0; i < len(idx); i += 2 {
			if idx[i] < 0 {
				groups = append(groups, nil)
				continue
			}
			groups = append(groups, in[idx[i]:idx[i+1]])
		}
		return in[idx[1]:], groups, nil
	}
}
