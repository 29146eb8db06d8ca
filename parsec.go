/*
Package parsec is a parser combinator library with a self-hosted grammar language.

Consists of subpackages:
  - outcome: success/failure values produced by every parsing step;
  - source: input cursors (text, sequences, text with embedded values, cursors carrying shared state);
  - parser: the Parser type, its combinators, and operator precedence parsing;
  - lexer: tokenizer for grammar descriptions, written with package parser;
  - grammar: named rule table shared by compiled grammar rules;
  - langdef: compiles grammar descriptions with embedded Go values into a rule table.

Typical usage is:

1. Build parsers directly from combinators:

	digits := parser.Pattern(`[0-9]+`)
	list := digits.SepBy1(parser.Char(','))

2. Or describe a grammar as text chunks interleaved with Go values ("holes")
and compile it with langdef:

	rules, e := langdef.Lang(`
		num  = /[0-9]+/ > `, toInt, `;
		sum  = num '+' sum > `, add, ` | num;
	`)

3. Run a parser with Parse (returns an outcome) or TryParse (returns a value and an error).
*/
package parsec

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SourceErrors  = 1   // used by source
	ParserErrors  = 101 // used by parser
	GrammarErrors = 201 // used by grammar
	LangDefErrors = 301 // used by lexer and langdef
)

// Error is the error type used for contract violations by parsec subpackages.
// Ordinary parse failures are reported as outcome.Failure values instead.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including position information if provided.
	Message string
}

// NewError creates new Error structure.
func NewError(code int, msg string) *Error {
	return &Error{code, msg}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg)
}
