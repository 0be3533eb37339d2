package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/chomp"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "eval EXPR",
		Short:         "Evaluate an arithmetic expression (integers, + - * /, parentheses)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("chomp.eval")
			value, err := evalExpr(args[0])
			if err != nil {
				return err
			}
			log.Debugf("evaluated %q to %d", args[0], value)
			fmt.Println(value)
			return nil
		},
	}
}

// The demo grammar, one function per rule:
//
//	expression = term   (("+" | "-") term)*
//	term       = factor (("*" | "/") factor)*
//	factor     = integer | "(" expression ")"
//
// Rules are plain functions so they can refer to each other recursively.

var errDivisionByZero = errors.New("division by zero")

// evalExpr parses and evaluates src in one pass. The digit class only
// finishes when it sees a non-digit, so a NUL sentinel bounds trailing
// digits and whitespace before the grammar's explicit terminator.
func evalExpr(src string) (int64, error) {
	in := append([]byte(src), 0)
	full := chomp.Terminated(chomp.Terminated(chomp.Parser[int64](expression), chomp.Space0), chomp.Char(0))
	_, value, err := full(in)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", src, err)
	}
	return value, nil
}

func expression(in []byte) ([]byte, int64, error) {
	term := chomp.Parser[int64](term)
	p := chomp.MapRes(
		chomp.Pair(term, chomp.Many0(chomp.Pair(chomp.PadLeft(chomp.OneOf("+-")), term))),
		applyOperators,
	)
	return p(in)
}

func term(in []byte) ([]byte, int64, error) {
	factor := chomp.Parser[int64](factor)
	p := chomp.MapRes(
		chomp.Pair(factor, chomp.Many0(chomp.Pair(chomp.PadLeft(chomp.OneOf("*/")), factor))),
		applyOperators,
	)
	return p(in)
}

func factor(in []byte) ([]byte, int64, error) {
	parens := chomp.Delimited(chomp.Char('('), chomp.Parser[int64](expression), chomp.PadLeft(chomp.Char(')')))
	p := chomp.PadLeft(chomp.Alt(chomp.Int64(), parens))
	return p(in)
}

// applyOperators folds a left-associative operator chain.
func applyOperators(t chomp.Tuple2[int64, []chomp.Tuple2[byte, int64]]) (int64, error) {
	acc := t.First
	for _, op := range t.Second {
		switch op.First {
		case '+':
			acc += op.Second
		case '-':
			acc -= op.Second
		case '*':
			acc *= op.Second
		case '/':
			if op.Second == 0 {
				return 0, errDivisionByZero
			}
			acc /= op.Second
		}
	}
	return acc, nil
}
