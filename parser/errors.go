package parser

import (
	"github.com/ava12/parsec"
)

// Error codes used by parser:
const (
	// ApValueError indicates that the parser passed to Ap yielded something other than func(any) any.
	ApValueError = parsec.ParserErrors + iota

	// WrongAssocError indicates an operator with unknown associativity.
	WrongAssocError

	// MissingActionError indicates an operator without the action matching its associativity.
	MissingActionError

	// WrongBoundsError indicates negative or inverted repetition bounds.
	WrongBoundsError
)

func apValueError(v any) *parsec.Error {
	return parsec.FormatError(ApValueError, "Ap expects func(any) any, got %T", v)
}

func wrongAssocError(a Assoc) *parsec.Error {
	return parsec.FormatError(WrongAssocError, "unknown operator associativity %d", int(a))
}

func missingActionError(a Assoc, prec int) *parsec.Error {
	return parsec.FormatError(MissingActionError, "%s operator with precedence %d has no action", a, prec)
}

func wrongBoundsError(lower, upper int) *parsec.Error {
	return parsec.FormatError(WrongBoundsError, "wrong repetition bounds [%d, %d]", lower, upper)
}
