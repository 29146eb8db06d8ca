package parser

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/ava12/parsec/source"
)

// Item parses any single item.
func Item() Parser {
	return New(func(ctx source.Context) Outcome {
		next := ctx.Clone()
		item, ok := next.Next()
		if !ok {
			return Failed("unexpected end of input")
		}
		return Succeeded(item, next)
	})
}

// End succeeds with nil value at the end of input only.
func End() Parser {
	return New(func(ctx source.Context) Outcome {
		next := ctx.Clone()
		item, ok := next.Next()
		if ok {
			return Failed(fmt.Sprintf("expecting end of input, got %s", describe(item)))
		}
		return Succeeded(nil, next)
	})
}

// Satisfy parses a single item for which pred returns true.
func Satisfy(pred func(item any) bool) Parser {
	return SatisfyMsg(pred, func(item any) string {
		return describe(item) + " did not satisfy predicate"
	})
}

// SatisfyMsg is like Satisfy but uses msg to build failure message for rejected item.
func SatisfyMsg(pred func(item any) bool, msg func(item any) string) Parser {
	return New(func(ctx source.Context) Outcome {
		next := ctx.Clone()
		item, ok := next.Next()
		if !ok {
			return Failed("unexpected end of input")
		}
		if !pred(item) {
			return Failed(msg(item))
		}
		return Succeeded(item, next)
	})
}

// Char parses rune r.
func Char(r rune) Parser {
	return SatisfyMsg(func(item any) bool {
		return item == r
	}, func(item any) string {
		return fmt.Sprintf("expecting %q, got %s", r, describe(item))
	})
}

// Token parses a single item deeply equal to value.
func Token(value any) Parser {
	return SatisfyMsg(func(item any) bool {
		return reflect.DeepEqual(item, value)
	}, func(item any) string {
		return fmt.Sprintf("expecting %v, got %s", value, describe(item))
	})
}

// String parses runes of s one by one and yields s.
func String(s string) Parser {
	return New(func(ctx source.Context) Outcome {
		next := ctx.Clone()
		for _, r := range s {
			item, ok := next.Next()
			if !ok || item != r {
				return Failed(fmt.Sprintf("expecting %q", s))
			}
		}
		return Succeeded(s, next)
	})
}

// Regexp parses text matching re at current position and yields the matched string.
// The cursor must hold text, see source.Context.MatchRegexp.
func Regexp(re *regexp.Regexp) Parser {
	anchored := regexp.MustCompile(`\A(?:` + re.String() + `)`)
	return New(func(ctx source.Context) Outcome {
		next := ctx.Clone()
		match, ok := next.MatchRegexp(anchored)
		if !ok {
			return Failed(fmt.Sprintf("did not match regexp /%s/ at %s", re, source.PosOf(ctx)))
		}
		return Succeeded(match, next)
	})
}

// Pattern compiles expr and returns Regexp parser for it.
// Panics if expr cannot be compiled.
func Pattern(expr string) Parser {
	return Regexp(regexp.MustCompile(expr))
}

// Index yields current cursor position (source.Pos) and consumes nothing.
func Index() Parser {
	return New(func(ctx source.Context) Outcome {
		return Succeeded(source.PosOf(ctx), ctx)
	})
}

func describe(item any) string {
	switch x := item.(type) {
	case rune:
		return fmt.Sprintf("%q", x)
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
