package outcome

import (
	"errors"
	"strings"
	"testing"

	. "github.com/ava12/parsec/internal/test"
)

func double(x int) int {
	return x * 2
}

func TestMap(t *testing.T) {
	ExpectInt(t, 4, Of(2).Map(double).Value())

	f := Fail[int]("nope").Map(double)
	ExpectBool(t, false, f.IsSuccess())
	Expect(t, f.Failure().Message == "nope", "nope", f.Failure().Message)

	s := Map(Of(3), func(x int) string { return strings.Repeat("a", x) })
	Expect(t, s.Value() == "aaa", "aaa", s.Value())
}

func TestChain(t *testing.T) {
	half := func(x int) Outcome[int] {
		if x%2 != 0 {
			return Fail[int]("odd")
		}
		return Of(x / 2)
	}

	ExpectInt(t, 2, Of(4).Chain(half).Value())
	ExpectBool(t, false, Of(3).Chain(half).IsSuccess())

	called := false
	Fail[int]("first").Chain(func(x int) Outcome[int] {
		called = true
		return Of(x)
	})
	ExpectBool(t, false, called)
}

func TestMonadLaws(t *testing.T) {
	f := func(x int) Outcome[int] { return Of(x + 1) }
	g := func(x int) Outcome[int] { return Of(x * 3) }

	ExpectInt(t, f(5).Value(), Of(5).Chain(f).Value())
	ExpectInt(t, 5, Of(5).Chain(Of[int]).Value())

	left := Of(5).Chain(f).Chain(g)
	right := Of(5).Chain(func(x int) Outcome[int] { return f(x).Chain(g) })
	ExpectInt(t, left.Value(), right.Value())
}

func TestForEach(t *testing.T) {
	seen := 0
	o := Of(7).ForEach(func(x int) { seen = x })
	ExpectInt(t, 7, seen)
	ExpectInt(t, 7, o.Value())

	seen = 0
	Fail[int]("x").ForEach(func(x int) { seen = 1 })
	ExpectInt(t, 0, seen)
}

func TestOnFailure(t *testing.T) {
	msg := ""
	Of(1).OnFailure(func(f *Failure) { msg = f.Message })
	Expect(t, msg == "", "", msg)

	o := Fail[int]("broken").OnFailure(func(f *Failure) { msg = f.Message })
	Expect(t, msg == "broken", "broken", msg)
	ExpectBool(t, false, o.IsSuccess())
}

func TestUnwrap(t *testing.T) {
	v, e := Of("ok").Unwrap()
	Assert(t, v == "ok" && e == nil, "expecting ok, got %q, %v", v, e)

	_, e = Fail[string]("bad", NewFailure("inner")).Unwrap()
	var f *Failure
	Assert(t, errors.As(e, &f), "expecting *Failure, got %T", e)
	Expect(t, e.Error() == "bad: inner", "bad: inner", e.Error())
}

func TestFailureFormatting(t *testing.T) {
	f := NewFailure("no alternatives matched", NewFailure("a"), nil, NewFailure("b", NewFailure("c")))
	ExpectInt(t, 2, len(f.Causes))

	expected := "no alternatives matched: [a; b: c]"
	Expect(t, f.Error() == expected, expected, f.Error())

	expected = "no alternatives matched\n  a\n  b\n    c"
	Expect(t, f.String() == expected, expected, f.String())
}

func TestFromFailure(t *testing.T) {
	o := FromFailure[int](nil)
	ExpectBool(t, false, o.IsSuccess())
}
