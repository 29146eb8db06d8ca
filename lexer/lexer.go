// Package lexer splits grammar descriptions into tokens.
// The lexer is itself a parser.Parser built from package parser combinators.
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

// Error codes used by lexer:
const (
	// LexicalError indicates that some part of grammar description is not a valid token.
	// Error message contains the offending item and its position.
	LexicalError = parsec.LangDefErrors + iota
)

func lexicalError(item any, pos source.Pos) *parsec.Error {
	if h, isHole := item.(source.Hole); isHole {
		return parsec.FormatError(LexicalError, "unexpected hole (%T) at %s", h.Value, pos)
	}
	return parsec.FormatError(LexicalError, "unexpected %q at %s", item, pos)
}

var escapes = map[rune]rune{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'b': '\b',
	'f': '\f',
	'v': '\v',
}

func isRune(item any, excluded ...rune) bool {
	r, valid := item.(rune)
	if !valid {
		return false
	}
	for _, x := range excluded {
		if r == x {
			return false
		}
	}
	return true
}

func token(kind Kind, p parser.Parser) parser.Parser {
	return parser.Sequence(parser.Index(), p).Map(func(v any) any {
		vs := v.([]any)
		return Token{kind, vs[1], vs[0].(source.Pos)}
	})
}

var (
	skipped = parser.Pattern(`\s+|#[^\n]*`).Many()

	ident = token(Ident, parser.Pattern(`[a-zA-Z_][a-zA-Z0-9_]*`))

	punctuator = token(Punctuator, parser.Pattern(`>>|[=|()*+;!>@]`))

	unicodeEscape = parser.Pattern(`u\{[0-9a-fA-F]{1,6}\}`).Chain(func(v any) parser.Parser {
		hex := v.(string)
		code, _ := strconv.ParseUint(hex[2:len(hex)-1], 16, 32)
		if !utf8.ValidRune(rune(code)) {
			return parser.Fail("invalid code point " + hex)
		}
		return parser.Of(rune(code))
	})

	escaped = parser.Char('\\').Then(unicodeEscape.Or(
		parser.Satisfy(func(item any) bool { return isRune(item, 'u') }).Map(func(v any) any {
			if r, found := escapes[v.(rune)]; found {
				return r
			}
			return v
		}),
	))

	stringLiteral = token(String, parser.Sequence(
		parser.Char('\''),
		escaped.Or(parser.Satisfy(func(item any) bool { return isRune(item, '\'', '\\') })).Many().Tie(""),
		parser.Char('\''),
	).Map(func(v any) any {
		return v.([]any)[1]
	}))

	regexpBody = parser.Alternatives(
		parser.String(`\/`).Return('/'),
		parser.Sequence(parser.Char('\\'), parser.Satisfy(func(item any) bool { return isRune(item, '\n') })).Tie(""),
		parser.Satisfy(func(item any) bool { return isRune(item, '/', '\\', '\n') }),
	).AtLeast(1).Tie("")

	regexpLiteral = token(Regexp, parser.Sequence(
		parser.Char('/'),
		regexpBody,
		parser.Char('/'),
		parser.Pattern(`[gimsuy]+`).Or(parser.Of("")),
	).Map(func(v any) any {
		vs := v.([]any)
		return RegexpLiteral{vs[1].(string), vs[3].(string)}
	}))

	hole = token(Hole, parser.Satisfy(func(item any) bool {
		_, isHole := item.(source.Hole)
		return isHole
	}).Map(func(v any) any {
		return v.(source.Hole).Value
	}))
)

// Parser parses a grammar description into Tokens, skipping whitespace and # comments.
// It stops at the first item that does not start a valid token, use Lex to require complete input.
var Parser = skipped.Then(parser.Alternatives(
	hole,
	stringLiteral,
	regexpLiteral,
	ident,
	punctuator,
).Skip(skipped).Many()).Map(func(v any) any {
	items := v.([]any)
	ts := make(Tokens, len(items))
	for i, item := range items {
		ts[i] = item.(Token)
	}
	return ts
})

// Lex splits input into tokens. Input is anything accepted by source.From,
// typically a *source.Holes cursor made of text chunks and embedded values.
// Returns LexicalError if some part of input is not a valid token.
func Lex(input any) (Tokens, error) {
	o := Parser.Run(source.From(input))
	if !o.IsSuccess() {
		return nil, parsec.FormatError(LexicalError, "%s", o.Failure().Error())
	}

	rest := o.Value().Context
	pos := source.PosOf(rest)
	if item, found := rest.Clone().Next(); found {
		return nil, lexicalError(item, pos)
	}

	return o.Value().Value.(Tokens), nil
}

// LexString is a shorthand for lexing a description without embedded values.
func LexString(text string) (Tokens, error) {
	return Lex(source.NewText(text))
}

func (ts Tokens) String() string {
	return fmt.Sprint([]Token(ts))
}
