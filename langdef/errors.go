package langdef

import (
	"fmt"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/lexer"
	"github.com/ava12/parsec/outcome"
)

// Error codes used by langdef:
const (
	// MisplacedHoleError indicates a hole not preceded by one of "!", "@", ">", or ">>".
	MisplacedHoleError = parsec.LangDefErrors + 10 + iota

	// HoleTypeError indicates a hole holding a value of unexpected type.
	HoleTypeError

	// WrongRegexpError indicates a regexp literal that cannot be compiled.
	WrongRegexpError

	// SyntaxError indicates a token sequence that is not a valid rule.
	SyntaxError

	// DuplicateRuleError indicates a rule defined twice in the same description.
	DuplicateRuleError

	// UndefinedRuleError indicates a reference to a rule that is neither defined nor seeded.
	UndefinedRuleError
)

func misplacedHoleError(t lexer.Token) *parsec.Error {
	return parsec.FormatError(MisplacedHoleError, "misplaced %s at %s", t, t.Pos)
}

func holeTypeError(t lexer.Token, after, expected string) *parsec.Error {
	return parsec.FormatError(HoleTypeError, "hole after %q at %s must be %s, got %T", after, t.Pos, expected, t.Value)
}

func regexpError(t lexer.Token, e error) *parsec.Error {
	return parsec.FormatError(WrongRegexpError, "incorrect regexp %s at %s (%s)", t.Value, t.Pos, e.Error())
}

func syntaxError(t lexer.Token, f *outcome.Failure) *parsec.Error {
	msg := fmt.Sprintf("syntax error in rule starting with %s at %s", t, t.Pos)
	if f != nil && f.Message != "" {
		msg += ": " + f.Error()
	}
	return parsec.NewError(SyntaxError, msg)
}

func duplicateRuleError(t lexer.Token) *parsec.Error {
	return parsec.FormatError(DuplicateRuleError, "rule %q at %s already defined", t.Value, t.Pos)
}

func undefinedRuleError(t lexer.Token) *parsec.Error {
	return parsec.FormatError(UndefinedRuleError, "undefined rule %q at %s", t.Value, t.Pos)
}
