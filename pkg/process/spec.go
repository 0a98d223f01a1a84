package process

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/pkg/text"
)

// parseSpec parses "name" or "name(arg, arg)" into a lowercased name and
// its numeric arguments. Arguments are decimal (optionally negative) or
// 0x-prefixed hex integers; the grammar is built from this module's own
// combinators.
func parseSpec(spec string) (string, []int64, error) {
	hexArg := elnom.MapRes(
		elnom.Preceded(text.TagNoCase("0x"), text.HexDigit1()),
		func(s string) (int64, error) {
			v, err := strconv.ParseUint(s, 16, 32)
			return int64(v), err
		},
	)
	decArg := elnom.MapRes(
		elnom.Recognize(elnom.Pair(elnom.Opt(text.Char('-')), text.Digit1())),
		func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	)
	arg := elnom.Delimited(text.Space0(), elnom.Alt(hexArg, decArg), text.Space0())
	argList := elnom.Delimited(
		text.Char('('),
		elnom.SeparatedList0(text.Char(','), arg),
		text.Char(')'),
	)
	full := elnom.AllConsuming(elnom.Pair(text.Alphanumeric1(), elnom.Opt(argList)))

	v, _, err := full(strings.TrimSpace(spec))
	if err != nil {
		return "", nil, fmt.Errorf("invalid process specification %q: %w", spec, err)
	}
	var args []int64
	if v.B != nil {
		args = *v.B
	}
	return strings.ToLower(v.A), args, nil
}
