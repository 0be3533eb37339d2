// Package ebnf compiles EBNF grammars (golang.org/x/exp/ebnf) into chomp
// parsers. Each production becomes a combinator composition matched against
// raw bytes, so grammar-driven matching gets the same three-way outcome
// semantics, zero-copy spans, and streaming behavior as hand-built parsers.
//
// The mapping is structural: sequences thread remainders, alternatives use
// chomp.Alt (first Done wins, Incomplete returned immediately), repetitions
// use chomp.Many0 with its zero-progress guard, options use chomp.Opt.
// Left-recursive productions are rejected at compile time by ebnf.Verify's
// reachability checks where possible; a production that recurses without
// consuming input terminates via the repetition guard rather than looping.
package ebnf

import (
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/chomp"
)

// Compile verifies g against the start production and returns a parser
// matching start. The parser produces the matched span as a zero-copy view
// of its input.
func Compile(g ebnf.Grammar, start string) (chomp.Parser[[]byte], error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	c := &compiler{grammar: g, productions: make(map[string]*chomp.Parser[[]byte])}
	p, err := c.production(start)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Parse is a convenience for Compile on grammar source text.
func Parse(name, src, start string) (chomp.Parser[[]byte], error) {
	g, err := ebnf.Parse(name, strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return Compile(g, start)
}

type compiler struct {
	grammar ebnf.Grammar
	// productions maps a name to the slot its compiled parser ends up in.
	// Recursive references close over the slot, so a production can refer
	// to itself or to productions compiled later.
	productions map[string]*chomp.Parser[[]byte]
}

func (c *compiler) production(name string) (chomp.Parser[[]byte], error) {
	if slot, ok := c.productions[name]; ok {
		return deref(slot), nil
	}
	prod, ok := c.grammar[name]
	if !ok || prod.Expr == nil {
		return nil, fmt.Errorf("production %q not found in grammar", name)
	}
	slot := new(chomp.Parser[[]byte])
	c.productions[name] = slot
	p, err := c.expression(prod.Expr)
	if err != nil {
		return nil, fmt.Errorf("production %q: %w", name, err)
	}
	*slot = p
	return deref(slot), nil
}

// deref delays the slot lookup to invocation time.
func deref(slot *chomp.Parser[[]byte]) chomp.Parser[[]byte] {
	return func(in []byte) ([]byte, []byte, error) {
		return (*slot)(in)
	}
}

func (c *compiler) expression(expr ebnf.Expression) (chomp.Parser[[]byte], error) {
	switch x := expr.(type) {
	case nil:
		return epsilon, nil

	case ebnf.Sequence:
		parsers := make([]chomp.Parser[[]byte], 0, len(x))
		for _, item := range x {
			p, err := c.expression(item)
			if err != nil {
				return nil, err
			}
			parsers = append(parsers, p)
		}
		return chomp.Recognize(chomp.Seq(parsers...)), nil

	case ebnf.Alternative:
		parsers := make([]chomp.Parser[[]byte], 0, len(x))
		for _, alt := range x {
			p, err := c.expression(alt)
			if err != nil {
				return nil, err
			}
			parsers = append(parsers, p)
		}
		return chomp.Alt(parsers...), nil

	case *ebnf.Name:
		return c.production(x.String)

	case *ebnf.Token:
		// Token.String is stored unquoted by the grammar parser.
		return chomp.TagString(x.String), nil

	case *ebnf.Range:
		return c.charRange(x)

	case *ebnf.Option:
		p, err := c.expression(x.Body)
		if err != nil {
			return nil, err
		}
		return chomp.Recognize(chomp.Opt(p)), nil

	case *ebnf.Repetition:
		p, err := c.expression(x.Body)
		if err != nil {
			return nil, err
		}
		return chomp.Recognize(chomp.Many0(p)), nil

	case *ebnf.Group:
		return c.expression(x.Body)

	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

func (c *compiler) charRange(x *ebnf.Range) (chomp.Parser[[]byte], error) {
	begin := x.Begin.String
	end := x.End.String
	if len(begin) != 1 || len(end) != 1 {
		return nil, fmt.Errorf("range bounds %q and %q must be single bytes", begin, end)
	}
	lo, hi := begin[0], end[0]
	match := chomp.Satisfy(func(b byte) bool { return b >= lo && b <= hi })
	return chomp.Recognize(match), nil
}

// epsilon matches the empty string: always Done, consuming nothing.
func epsilon(in []byte) ([]byte, []byte, error) {
	return in, in[:0], nil
}
