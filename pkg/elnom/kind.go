package elnom

// Kind identifies which primitive or combinator produced an Error. The
// enumeration is closed and stable: grammars built on top match on it for
// diagnostics, so parsers reuse these kinds (via NewError) instead of
// inventing new vocabulary.
type Kind uint8

const (
	// Literal and single-unit primitives.
	KindTag Kind = iota
	KindChar
	KindSatisfy
	KindOneOf
	KindNoneOf
	KindAnyChar

	// Character classes.
	KindAlpha
	KindDigit
	KindHexDigit
	KindOctDigit
	KindAlphanumeric
	KindSpace
	KindMultispace

	// Line endings. KindLineEnding covers LineEnding and NotLineEnding,
	// KindCRLF the strict two-unit Crlf.
	KindCRLF
	KindLineEnding
	KindNewline

	// Bounded takes and escape loops.
	KindTakeWhile1
	KindTakeWhileMN
	KindTakeTill1
	KindTakeUntil
	KindEscaped

	// Numbers.
	KindFloat

	// Repetition.
	KindMany
	KindManyMN
	KindFoldMany
	KindSeparatedList
	KindLengthCount
	KindLengthData

	// Branching and meta.
	KindAlt
	KindNot
	KindVerify
	KindMapRes
	KindAllConsuming
	KindComplete
	KindEOF
	KindFail
)

var kindNames = [...]string{
	KindTag:           "tag",
	KindChar:          "char",
	KindSatisfy:       "satisfy",
	KindOneOf:         "one_of",
	KindNoneOf:        "none_of",
	KindAnyChar:       "anychar",
	KindAlpha:         "alpha",
	KindDigit:         "digit",
	KindHexDigit:      "hex_digit",
	KindOctDigit:      "oct_digit",
	KindAlphanumeric:  "alphanumeric",
	KindSpace:         "space",
	KindMultispace:    "multispace",
	KindCRLF:          "crlf",
	KindLineEnding:    "cr_lf",
	KindNewline:       "newline",
	KindTakeWhile1:    "take_while1",
	KindTakeWhileMN:   "take_while_m_n",
	KindTakeTill1:     "take_till1",
	KindTakeUntil:     "take_until",
	KindEscaped:       "escaped",
	KindFloat:         "float",
	KindMany:          "many",
	KindManyMN:        "many_m_n",
	KindFoldMany:      "fold_many",
	KindSeparatedList: "separated_list",
	KindLengthCount:   "length_count",
	KindLengthData:    "length_data",
	KindAlt:           "alt",
	KindNot:           "not",
	KindVerify:        "verify",
	KindMapRes:        "map_res",
	KindAllConsuming:  "all_consuming",
	KindComplete:      "complete",
	KindEOF:           "eof",
	KindFail:          "fail",
}

// String returns the canonical snake_case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
