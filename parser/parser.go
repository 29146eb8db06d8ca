// Package parser defines the Parser type and its combinators.
//
// A Parser is a function from an input cursor to an outcome holding either
// the parsed value together with the cursor positioned after it, or a failure.
// Parsers never advance the cursor they are given, so a failed branch may be
// retried from the same cursor: this is the whole backtracking mechanism.
package parser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ava12/parsec/outcome"
	"github.com/ava12/parsec/source"
)

// Result is the payload of a successful parsing step.
type Result struct {
	Value   any
	Context source.Context
}

// Outcome is the result of running a parser.
type Outcome = outcome.Outcome[Result]

// Action is the function wrapped by a Parser.
type Action = func(ctx source.Context) Outcome

// Parser is an immutable wrapper around an Action.
type Parser struct {
	action Action
}

// New creates a parser from an action.
// The action must not advance ctx: it has to clone the cursor before reading from it.
func New(action Action) Parser {
	return Parser{action}
}

// Succeeded creates a successful outcome.
func Succeeded(value any, ctx source.Context) Outcome {
	return outcome.Of(Result{value, ctx})
}

// Failed creates a failed outcome.
func Failed(msg string, causes ...*outcome.Failure) Outcome {
	return outcome.Fail[Result](msg, causes...)
}

// Run applies the parser to a cursor.
func (p Parser) Run(ctx source.Context) Outcome {
	return p.action(ctx)
}

// Parse applies the parser to any input accepted by source.From.
// Parse never panics on unsuccessful parsing, the failure is returned as outcome.
func (p Parser) Parse(input any) Outcome {
	return p.action(source.From(input))
}

// TryParse applies the parser and returns parsed value.
// Returns *outcome.Failure as error if parsing fails.
// Input does not have to be consumed completely, use p.Skip(End()) for that.
func (p Parser) TryParse(input any) (any, error) {
	r, e := p.Parse(input).Unwrap()
	return r.Value, e
}

// MustParse is like TryParse but panics on failure.
func (p Parser) MustParse(input any) any {
	v, e := p.TryParse(input)
	if e != nil {
		panic(e)
	}
	return v
}

// Of returns a parser that always succeeds with value and consumes nothing.
func Of(value any) Parser {
	return New(func(ctx source.Context) Outcome {
		return Succeeded(value, ctx)
	})
}

// Succeed is a synonym for Of.
func Succeed(value any) Parser {
	return Of(value)
}

// Fail returns a parser that always fails with msg and consumes nothing.
func Fail(msg string) Parser {
	return New(func(source.Context) Outcome {
		return Failed(msg)
	})
}

// Zero returns a parser that always fails.
func Zero() Parser {
	return Fail("")
}

// Lazy defers building a parser until the first time it runs.
// It allows recursive grammars to refer to parsers not defined yet.
func Lazy(f func() Parser) Parser {
	var once sync.Once
	var p Parser
	return New(func(ctx source.Context) Outcome {
		once.Do(func() {
			p = f()
		})
		return p.action(ctx)
	})
}

// Map transforms parsed value with f.
func (p Parser) Map(f func(any) any) Parser {
	return New(func(ctx source.Context) Outcome {
		return p.action(ctx).Map(func(r Result) Result {
			return Result{f(r.Value), r.Context}
		})
	})
}

// Return replaces parsed value with value.
func (p Parser) Return(value any) Parser {
	return p.Map(func(any) any {
		return value
	})
}

// Chain runs p, then runs the parser returned by f for the parsed value
// starting where p stopped.
func (p Parser) Chain(f func(any) Parser) Parser {
	return New(func(ctx source.Context) Outcome {
		return p.action(ctx).Chain(func(r Result) Outcome {
			return f(r.Value).action(r.Context)
		})
	})
}

// Ap runs p, then runs fp which must yield func(any) any, and applies that function to the value of p.
// Panics with parsec.Error if fp yields anything else.
func (p Parser) Ap(fp Parser) Parser {
	return p.Chain(func(a any) Parser {
		return fp.Map(func(v any) any {
			f, valid := v.(func(any) any)
			if !valid {
				panic(apValueError(v))
			}
			return f(a)
		})
	})
}

// Alt tries p and, only if p fails, tries other from the same position.
func (p Parser) Alt(other Parser) Parser {
	return New(func(ctx source.Context) Outcome {
		o := p.action(ctx)
		if !o.IsSuccess() {
			return other.action(ctx)
		}
		return o
	})
}

// Or is a synonym for Alt.
func (p Parser) Or(other Parser) Parser {
	return p.Alt(other)
}

// Then runs p and other in sequence and keeps the value of other.
func (p Parser) Then(other Parser) Parser {
	return Sequence(p, other).Map(func(v any) any {
		return v.([]any)[1]
	})
}

// Skip runs p and other in sequence and keeps the value of p.
func (p Parser) Skip(other Parser) Parser {
	return Sequence(p, other).Map(func(v any) any {
		return v.([]any)[0]
	})
}

// Tie joins parsed items into a string placing sep between them.
// Runes and strings are used as is, nested []any values are joined without separator,
// anything else is formatted with fmt.Sprint.
func (p Parser) Tie(sep string) Parser {
	return p.Map(func(v any) any {
		items, isList := v.([]any)
		if !isList {
			return stringify(v)
		}

		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, sep)
	})
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case rune:
		return string(x)
	case nil:
		return ""
	case []any:
		sb := &strings.Builder{}
		for _, item := range x {
			sb.WriteString(stringify(item))
		}
		return sb.String()
	default:
		return fmt.Sprint(x)
	}
}
