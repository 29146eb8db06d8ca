package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ava12/parsec/source"
	. "github.com/ava12/parsec/internal/test"
)

var ignorePos = cmpopts.IgnoreFields(Token{}, "Pos")

func holes(t *testing.T, parts []string, values ...any) *source.Holes {
	h, e := source.NewHoles(parts, values)
	Assert(t, e == nil, "unexpected error: %v", e)
	return h
}

func TestHoleRoundTrip(t *testing.T) {
	ts, e := Lex(holes(t, []string{"a = ", ";"}, []string{"b"}))
	Assert(t, e == nil, "unexpected error: %v", e)

	expected := Tokens{
		{Kind: Ident, Value: "a"},
		{Kind: Punctuator, Value: "="},
		{Kind: Hole, Value: []string{"b"}},
		{Kind: Punctuator, Value: ";"},
	}
	if diff := cmp.Diff(expected, ts, ignorePos); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  ", " \t\r\n ", "# comment", "# comment\n  # another\n"}
	for _, src := range sources {
		ts, e := LexString(src)
		Assert(t, e == nil, "source %q: unexpected error %v", src, e)
		ExpectInt(t, 0, len(ts))
	}
}

func TestTokenKinds(t *testing.T) {
	ts, e := LexString(`foo_1 'bar' /ba[rz]/i = | ( ) * + ; ! > >> @ # done`)
	Assert(t, e == nil, "unexpected error: %v", e)

	expected := Tokens{
		{Kind: Ident, Value: "foo_1"},
		{Kind: String, Value: "bar"},
		{Kind: Regexp, Value: RegexpLiteral{"ba[rz]", "i"}},
		{Kind: Punctuator, Value: "="},
		{Kind: Punctuator, Value: "|"},
		{Kind: Punctuator, Value: "("},
		{Kind: Punctuator, Value: ")"},
		{Kind: Punctuator, Value: "*"},
		{Kind: Punctuator, Value: "+"},
		{Kind: Punctuator, Value: ";"},
		{Kind: Punctuator, Value: "!"},
		{Kind: Punctuator, Value: ">"},
		{Kind: Punctuator, Value: ">>"},
		{Kind: Punctuator, Value: "@"},
	}
	if diff := cmp.Diff(expected, ts, ignorePos); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestNoSpaces(t *testing.T) {
	ts, e := LexString(`a='a'>>b;`)
	Assert(t, e == nil, "unexpected error: %v", e)

	expected := Tokens{
		{Kind: Ident, Value: "a"},
		{Kind: Punctuator, Value: "="},
		{Kind: String, Value: "a"},
		{Kind: Punctuator, Value: ">>"},
		{Kind: Ident, Value: "b"},
		{Kind: Punctuator, Value: ";"},
	}
	if diff := cmp.Diff(expected, ts, ignorePos); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestStringEscapes(t *testing.T) {
	samples := []struct {
		src      string
		expected string
	}{
		{`''`, ""},
		{`'abc'`, "abc"},
		{`'\n\r\t\b\f\v'`, "\n\r\t\b\f\v"},
		{`'\'\\\a'`, `'\a`},
		{`'\u{41}\u{439}\u{1F600}'`, "Aй\U0001F600"},
		{`'u{41}'`, "u{41}"},
		{"'multi\nline'", "multi\nline"},
	}

	for _, s := range samples {
		t.Run(s.src, func(t *testing.T) {
			ts, e := LexString(s.src)
			Assert(t, e == nil, "unexpected error: %v", e)
			ExpectInt(t, 1, len(ts))
			Expect(t, ts[0].Is(String, s.expected), s.expected, ts[0])
		})
	}
}

func TestRegexpLiterals(t *testing.T) {
	samples := []struct {
		src      string
		expected RegexpLiteral
	}{
		{`/a/`, RegexpLiteral{"a", ""}},
		{`/[0-9]+/gimsuy`, RegexpLiteral{"[0-9]+", "gimsuy"}},
		{`/a\/b/`, RegexpLiteral{"a/b", ""}},
		{`/\d+\.\d*/`, RegexpLiteral{`\d+\.\d*`, ""}},
		{`/[^\\]/m`, RegexpLiteral{`[^\\]`, "m"}},
	}

	for _, s := range samples {
		t.Run(s.src, func(t *testing.T) {
			ts, e := LexString(s.src)
			Assert(t, e == nil, "unexpected error: %v", e)
			ExpectInt(t, 1, len(ts))
			Expect(t, ts[0].Is(Regexp, s.expected), s.expected, ts[0])
		})
	}
}

func TestTokenPos(t *testing.T) {
	ts, e := Lex(holes(t, []string{"a =\n  ", " b;"}, 1))
	Assert(t, e == nil, "unexpected error: %v", e)
	ExpectInt(t, 5, len(ts))

	expected := []source.Pos{
		{Part: 0, Offset: 0, Line: 1, Col: 1},
		{Part: 0, Offset: 2, Line: 1, Col: 3},
		{Part: 0, Offset: 6, Line: 2, Col: 3},
		{Part: 1, Offset: 1, Line: 2, Col: 4},
		{Part: 1, Offset: 2, Line: 2, Col: 5},
	}
	for i, pos := range expected {
		Expect(t, ts[i].Pos == pos, pos, ts[i].Pos)
	}
}

func TestConsecutiveHoles(t *testing.T) {
	ts, e := Lex(holes(t, []string{"", "", ""}, 1, "x"))
	Assert(t, e == nil, "unexpected error: %v", e)

	expected := Tokens{
		{Kind: Hole, Value: 1},
		{Kind: Hole, Value: "x"},
	}
	if diff := cmp.Diff(expected, ts, ignorePos); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestLexicalErrors(t *testing.T) {
	sources := []string{
		`$`,
		`a = 'unterminated`,
		`a = /unterminated`,
		`a = //`,
		`a = '\u{110000}'`,
		`a = '\u0041'`,
		`a = 1;`,
		`a = b - c;`,
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			_, e := LexString(src)
			ExpectErrorCode(t, LexicalError, e)
		})
	}

	_, e := Lex(holes(t, []string{"a = '", "';"}, 1))
	ExpectErrorCode(t, LexicalError, e)
}
