// Package bits reinterprets a byte buffer as a stream addressable at bit
// granularity, most significant bit first, and feeds it to the same
// combinator model as the byte engine.
//
// The primary hazard of bit-level parsing is silent misalignment when
// crossing back into the byte world. The boundary rules here are explicit:
// [Enter] pads the cursor to the next byte boundary on exit, [Aligned]
// fails instead, and [Bytes] pads before handing the buffer to a byte
// parser.
package bits

import (
	"github.com/dhamidi/chomp"
)

// Input is a cursor into a byte buffer: a byte offset plus a bit offset
// within that byte (0–7, counted from the most significant bit). It is a
// value; parsers return advanced copies and never mutate the buffer.
type Input struct {
	Data []byte
	Off  int
	Bit  int
}

// FromBytes positions a bit cursor at the start of data.
func FromBytes(data []byte) Input {
	return Input{Data: data}
}

// Remaining reports how many bits are left in the buffer.
func (in Input) Remaining() int {
	return (len(in.Data)-in.Off)*8 - in.Bit
}

// aligned reports whether the cursor sits on a byte boundary.
func (in Input) aligned() bool { return in.Bit == 0 }

// align advances the cursor to the next byte boundary, consuming the
// remaining bits of a partially read byte.
func (in Input) align() Input {
	if in.Bit == 0 {
		return in
	}
	return Input{Data: in.Data, Off: in.Off + 1}
}

// Parser is the bit-level parser contract, identical in shape and outcome
// semantics to the byte-level one.
type Parser[O any] func(in Input) (rest Input, out O, err error)

// Take extracts the next n bits (0 < n <= 64) as an unsigned integer,
// crossing byte boundaries as needed. Fewer than n bits remaining is
// Incomplete, with the missing amount rounded up to whole bytes so that
// streaming callers reason in one unit.
func Take(n int) Parser[uint64] {
	return func(in Input) (Input, uint64, error) {
		if n <= 0 || n > 64 {
			return Input{}, 0, chomp.NewError(chomp.KindTakeBits, in.Data[in.Off:])
		}
		avail := in.Remaining()
		if avail < n {
			missing := n - avail
			return Input{}, 0, incompleteBits(missing)
		}
		var out uint64
		off, bit := in.Off, in.Bit
		for i := 0; i < n; i++ {
			out = out<<1 | uint64(in.Data[off]>>(7-bit))&1
			bit++
			if bit == 8 {
				bit = 0
				off++
			}
		}
		return Input{Data: in.Data, Off: off, Bit: bit}, out, nil
	}
}

// Tag matches a literal bit pattern: the next n bits must equal val.
func Tag(val uint64, n int) Parser[uint64] {
	take := Take(n)
	return func(in Input) (Input, uint64, error) {
		rest, out, err := take(in)
		if err != nil {
			return Input{}, 0, err
		}
		if out != val {
			return Input{}, 0, chomp.NewError(chomp.KindTagBits, in.Data[in.Off:])
		}
		return rest, out, nil
	}
}

// Enter adapts a bit parser into a byte parser. On success the cursor is
// padded to the next byte boundary: any remaining bits of a partially read
// byte are consumed and discarded. Use Aligned when padding would hide a
// grammar bug.
func Enter[O any](p Parser[O]) chomp.Parser[O] {
	return func(in []byte) ([]byte, O, error) {
		var zero O
		rest, out, err := p(FromBytes(in))
		if err != nil {
			return nil, zero, err
		}
		rest = rest.align()
		return in[rest.Off:], out, nil
	}
}

// Aligned adapts a bit parser into a byte parser like Enter, but fails
// with an alignment error unless the parser exits exactly on a byte
// boundary.
func Aligned[O any](p Parser[O]) chomp.Parser[O] {
	return func(in []byte) ([]byte, O, error) {
		var zero O
		rest, out, err := p(FromBytes(in))
		if err != nil {
			return nil, zero, err
		}
		if !rest.aligned() {
			return nil, zero, chomp.NewError(chomp.KindAlignment, in[rest.Off:])
		}
		return in[rest.Off:], out, nil
	}
}

// Bytes runs a byte-level parser from inside the bit engine. The cursor is
// padded to the next byte boundary first; the byte parser then consumes
// whole bytes and the bit cursor resumes, aligned, after them.
func Bytes[O any](p chomp.Parser[O]) Parser[O] {
	return func(in Input) (Input, O, error) {
		var zero O
		aligned := in.align()
		buf := aligned.Data[aligned.Off:]
		rest, out, err := p(buf)
		if err != nil {
			return Input{}, zero, err
		}
		consumed := chomp.Offset(buf, rest)
		return Input{Data: aligned.Data, Off: aligned.Off + consumed}, out, nil
	}
}

// incompleteBits converts a missing bit count into the byte-denominated
// Incomplete outcome, rounding up to whole bytes.
func incompleteBits(missingBits int) error {
	return &chomp.Incomplete{Needed: chomp.Needed((missingBits + 7) / 8)}
}
