// Package chomp provides streaming parser combinators: small parsing
// primitives composed by ordinary function calls into grammars for binary
// and text formats, with zero-copy input handling throughout.
//
// A parser is a pure function from a byte slice to one of three outcomes:
//
//   - Done: err is nil; the output and the unconsumed remainder are
//     returned, the remainder aliasing the tail of the input.
//   - Error: err is a [*ParseError]; the input does not match here.
//   - Incomplete: err is a [*Incomplete]; the buffer ended before the
//     parser could decide, and retrying with more data may succeed.
//
// # Composing parsers
//
// Grammars are built by wrapping parsers in combinators. A parser for
// parenthesized, comma-separated integers:
//
//	ints := chomp.Delimited(
//		chomp.TagString("("),
//		chomp.SeparatedList0(chomp.TagString(","), chomp.Int64()),
//		chomp.TagString(")"),
//	)
//	rest, values, err := ints([]byte("(1,2,3)rest"))
//
// There is no grammar description language and no code generation: a named
// rule is just a Go function or variable built from the combinators, and
// recursion is ordinary function recursion.
//
// # Streaming
//
// Incomplete is not a failure. A caller reading from a network or a file
// owns the retry loop: keep the unconsumed bytes, append newly arrived
// data, and re-invoke the same parser on the longer buffer from the start.
// The library retains no state between calls, trading repeated work for
// zero-copy views and parsers that are safe to share and run in parallel
// on independent inputs.
//
// Fixed-length matchers ([Tag], [Take]) return Done as soon as they are
// satisfied, with a byte-exact Needed bound when they are not. Open
// character classes ([Digit1], [TakeWhile]) return Incomplete when the
// match runs to the end of the buffer, because only a non-matching byte
// can bound them. Grammars parsing a fully materialized buffer should
// therefore end in an explicit terminator (and may append a sentinel byte
// for that purpose), or wrap sub-parsers in [Complete] where "needs more
// data" should read as a mismatch.
//
// # Errors
//
// Failures carry an [ErrorKind] discriminant. In the default build every
// forwarding combinator appends a diagnostic frame, producing an
// innermost-first trace; building with -tags chompterse keeps a single
// discriminant and compiles the bookkeeping away. The trace never affects
// the outcome of a parse.
//
// The bit-level engine lives in the bits subpackage, regular-expression
// matching in regex, and EBNF-grammar-driven matching in ebnf.
package chomp
