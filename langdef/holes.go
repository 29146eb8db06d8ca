package langdef

import (
	"github.com/ava12/parsec/parser"
)

// predicate converts "!" hole value to item predicate, returns nil for unsupported types.
func predicate(v any) func(any) bool {
	switch f := v.(type) {
	case func(any) bool:
		return f
	case func(rune) bool:
		return func(item any) bool {
			r, isRune := item.(rune)
			return isRune && f(r)
		}
	default:
		return nil
	}
}

func mapper(v any) func(any) any {
	f, _ := v.(func(any) any)
	return f
}

func binder(v any) func(any) parser.Parser {
	f, _ := v.(func(any) parser.Parser)
	return f
}

func isParser(v any) bool {
	_, valid := v.(parser.Parser)
	return valid
}

type holeKind struct {
	expected string
	check    func(any) bool
}

// holeKinds maps punctuators that must precede a hole to hole type requirements.
var holeKinds = map[string]holeKind{
	"!": {"func(any) bool or func(rune) bool", func(v any) bool {
		return predicate(v) != nil
	}},
	"@": {"parser.Parser", isParser},
	">": {"func(any) any", func(v any) bool {
		return mapper(v) != nil
	}},
	">>": {"func(any) parser.Parser", func(v any) bool {
		return binder(v) != nil
	}},
}
