package chomp

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind identifies which primitive or combinator rejected the input.
// Failures are reported as categories, not free text, so that callers can
// branch on them and so that the terse build carries a single word of state.
type ErrorKind uint8

const (
	KindFail ErrorKind = iota // failure outside the library's own vocabulary
	KindTag
	KindTakeUntil
	KindTakeTill
	KindTakeWhile
	KindChar
	KindSatisfy
	KindOneOf
	KindNoneOf
	KindDigit
	KindAlpha
	KindAlphanumeric
	KindHexDigit
	KindOctDigit
	KindSpace
	KindAlt
	KindMany1
	KindCount
	KindSeparatedList
	KindMapRes
	KindVerify
	KindComplete
	KindRegexp
	KindTakeBits
	KindTagBits
	KindAlignment
	KindGrammar
)

var errorKindNames = [...]string{
	KindFail:          "fail",
	KindTag:           "tag",
	KindTakeUntil:     "take until",
	KindTakeTill:      "take till",
	KindTakeWhile:     "take while",
	KindChar:          "char",
	KindSatisfy:       "satisfy",
	KindOneOf:         "one of",
	KindNoneOf:        "none of",
	KindDigit:         "digit",
	KindAlpha:         "alpha",
	KindAlphanumeric:  "alphanumeric",
	KindHexDigit:      "hex digit",
	KindOctDigit:      "octal digit",
	KindSpace:         "space",
	KindAlt:           "alt",
	KindMany1:         "many1",
	KindCount:         "count",
	KindSeparatedList: "separated list",
	KindMapRes:        "map result",
	KindVerify:        "verify",
	KindComplete:      "complete",
	KindRegexp:        "regexp",
	KindTakeBits:      "take bits",
	KindTagBits:       "tag bits",
	KindAlignment:     "bit alignment",
	KindGrammar:       "grammar",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "error kind " + strconv.Itoa(int(k))
}

// Frame records one step of a failure's propagation: which parser rejected
// the input and the unconsumed input at that point.
type Frame struct {
	Kind ErrorKind
	// At is the remaining input where the failure occurred. Positions are
	// recovered with Offset against the buffer the parse started from.
	At []byte
}

// ParseError is the Error outcome. In the default build every combinator
// that forwards a failure appends its own frame, yielding an innermost-first
// trace; under the chompterse build tag only the innermost frame is kept.
// The frame list is append-only: frames are never reordered or dropped, and
// stripping the trace down to its first frame never changes a parse outcome.
type ParseError struct {
	frames []Frame
}

// NewError builds the Error outcome for a single failed parser.
func NewError(kind ErrorKind, at []byte) *ParseError {
	return &ParseError{frames: []Frame{{Kind: kind, At: at}}}
}

// Kind returns the innermost discriminant, the parser that failed first.
func (e *ParseError) Kind() ErrorKind { return e.frames[0].Kind }

// Frames returns the trace, innermost first. In the terse build its length
// is always one.
func (e *ParseError) Frames() []Frame { return e.frames }

// push appends an enclosing combinator's frame. It compiles to a no-op in
// the terse build.
func (e *ParseError) push(kind ErrorKind, at []byte) *ParseError {
	if verboseErrors {
		e.frames = append(e.frames, Frame{Kind: kind, At: at})
	}
	return e
}

// WithFrame lets user-written combinators participate in the trace under
// the same append-only rule the built-in combinators follow.
func (e *ParseError) WithFrame(kind ErrorKind, at []byte) *ParseError {
	return e.push(kind, at)
}

func (e *ParseError) Error() string {
	var b strings.Builder
	for i := len(e.frames) - 1; i >= 0; i-- {
		b.WriteString(e.frames[i].Kind.String())
		b.WriteString(": ")
	}
	b.WriteString("no match at ")
	b.WriteString(snippet(e.frames[0].At))
	return b.String()
}

// snippet quotes a short preview of the rejected input.
func snippet(at []byte) string {
	const max = 16
	if len(at) > max {
		return strconv.Quote(string(at[:max])) + "..."
	}
	return strconv.Quote(string(at))
}

// toParseError normalizes a child failure. Errors from outside the library
// vocabulary are folded into KindFail at the current position.
func toParseError(err error, at []byte) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return NewError(KindFail, at)
}
