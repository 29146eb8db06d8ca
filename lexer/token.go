package lexer

import (
	"fmt"

	"github.com/ava12/parsec/source"
)

// Kind is the kind of grammar description token.
type Kind int

const (
	Ident Kind = iota
	String
	Regexp
	Hole
	Punctuator
)

var kindNames = [...]string{
	Ident:      "identifier",
	String:     "string",
	Regexp:     "regexp",
	Hole:       "hole",
	Punctuator: "punctuator",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a lexeme of grammar description.
// Value is a string for Ident, String and Punctuator tokens,
// a RegexpLiteral for Regexp tokens and the embedded value itself for Hole tokens.
type Token struct {
	Kind  Kind
	Value any
	Pos   source.Pos
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.Value)
	case Hole:
		return fmt.Sprintf("hole (%T)", t.Value)
	default:
		return fmt.Sprintf("%s %v", t.Kind, t.Value)
	}
}

// Is reports whether t has kind k and value v.
func (t Token) Is(k Kind, v any) bool {
	return t.Kind == k && t.Value == v
}

// RegexpLiteral is the value of Regexp token.
// Body has escaped slashes unescaped, Flags holds letters following the closing slash.
type RegexpLiteral struct {
	Body  string
	Flags string
}

func (rl RegexpLiteral) String() string {
	return "/" + rl.Body + "/" + rl.Flags
}

// Tokens is a token list usable as parser input.
type Tokens []Token

func (ts Tokens) Len() int {
	return len(ts)
}

func (ts Tokens) At(i int) any {
	return ts[i]
}
