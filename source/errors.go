package source

import (
	"github.com/ava12/parsec"
)

// Error codes used by source:
const (
	// UnsupportedInputError indicates that From cannot make a Context of the given value.
	UnsupportedInputError = parsec.SourceErrors + iota

	// RegexpSourceError indicates regexp matching attempted on a cursor that does not hold text.
	RegexpSourceError

	// MismatchedHolesError indicates that the number of holes is not one less than the number of parts.
	MismatchedHolesError
)

func unsupportedInputError(input any) *parsec.Error {
	return parsec.FormatError(UnsupportedInputError, "cannot use %T as parser input", input)
}

func regexpSourceError() *parsec.Error {
	return parsec.FormatError(RegexpSourceError, "matching by regexp is only supported for text sources")
}

func mismatchedHolesError(parts, holes int) *parsec.Error {
	return parsec.FormatError(MismatchedHolesError, "the number of parts (%d) must be one more than the number of holes (%d)", parts, holes)
}
