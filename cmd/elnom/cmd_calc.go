package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/pkg/text"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an integer arithmetic expression",
		Long: `Evaluate an arithmetic expression with +, -, *, / and parentheses.

The grammar is the usual two-level precedence one, built from the
combinator API; run with --verbose to watch the parser work.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := evalArithmetic(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

// evalArithmetic parses and evaluates expr = term (('+'|'-') term)*,
// term = factor (('*'|'/') factor)*, factor = integer | '(' expr ')'.
func evalArithmetic(input string) (int64, error) {
	v, _, err := elnom.AllConsuming(elnom.Trace(nil, "expr", elnom.Parser[string, int64](expr)))(input)
	if err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", input, err)
	}
	return v, nil
}

var calcInteger = elnom.MapRes(
	elnom.Recognize(elnom.Pair(elnom.Opt(text.Char('-')), text.Digit1())),
	func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
)

func expr(in string) (int64, string, error) {
	p := elnom.MapRes(
		elnom.Pair(term, elnom.Many0(elnom.Pair(spaced(text.OneOf("+-")), term))),
		applyOps,
	)
	return p(in)
}

func term(in string) (int64, string, error) {
	p := elnom.MapRes(
		elnom.Pair(factor, elnom.Many0(elnom.Pair(spaced(text.OneOf("*/")), factor))),
		applyOps,
	)
	return p(in)
}

func factor(in string) (int64, string, error) {
	paren := elnom.Delimited(text.Char('('), elnom.Parser[string, int64](expr), text.Char(')'))
	p := spaced(elnom.Alt(calcInteger, paren))
	return p(in)
}

func spaced[O any](p elnom.Parser[string, O]) elnom.Parser[string, O] {
	return elnom.Delimited(text.Space0(), p, text.Space0())
}

func applyOps(v elnom.PairOf[int64, []elnom.PairOf[rune, int64]]) (int64, error) {
	acc := v.A
	for _, step := range v.B {
		switch step.A {
		case '+':
			acc += step.B
		case '-':
			acc -= step.B
		case '*':
			acc *= step.B
		case '/':
			if step.B == 0 {
				return 0, errors.New("division by zero")
			}
			acc /= step.B
		}
	}
	return acc, nil
}
