package chomp

import (
	"errors"
	"strconv"
)

// Parser is the fundamental unit of composition: a pure function from an
// input view to exactly one of three outcomes.
//
//   - Done: err is nil, rest is the unconsumed suffix of in, out is the
//     produced value. rest always aliases the tail of in; the consumed span
//     is in[:len(in)-len(rest)].
//   - Error: err is a *ParseError. The input did not match at this position.
//   - Incomplete: err is a *Incomplete. The outcome cannot be decided with
//     the input seen so far; the caller should retry the same parser on a
//     longer buffer starting from the same offset.
//
// Parsers hold no state between calls. Two parses on independent buffers
// never interact.
type Parser[O any] func(in []byte) (rest []byte, out O, err error)

// Needed is a lower bound on the additional input required before a parser
// could decide its outcome. The zero value means the amount is unknown.
type Needed int

// NeedMoreData marks an Incomplete whose missing amount cannot be bounded,
// for example an open-ended character class at the end of the buffer.
const NeedMoreData Needed = 0

// Known reports whether n carries a concrete byte count.
func (n Needed) Known() bool { return n > 0 }

// Incomplete signals that the buffer ended before the parser could decide.
// It is not a failure: feeding a longer buffer may yield Done or Error.
type Incomplete struct {
	// Needed is the minimum number of further bytes required, or
	// NeedMoreData when no bound is known.
	Needed Needed
}

func (e *Incomplete) Error() string {
	if e.Needed.Known() {
		return "incomplete input: need at least " + strconv.Itoa(int(e.Needed)) + " more bytes"
	}
	return "incomplete input: need more data"
}

// needMore builds the Incomplete outcome for n missing bytes.
func needMore(n Needed) *Incomplete {
	return &Incomplete{Needed: n}
}

// IsIncomplete reports whether err is the Incomplete outcome.
func IsIncomplete(err error) bool {
	var inc *Incomplete
	return errors.As(err, &inc)
}

// NeededBytes extracts the Needed bound from an Incomplete outcome.
// The second return is false when err is not Incomplete.
func NeededBytes(err error) (Needed, bool) {
	var inc *Incomplete
	if errors.As(err, &inc) {
		return inc.Needed, true
	}
	return 0, false
}
