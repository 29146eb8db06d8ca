package parser

import (
	"fmt"
	"math"

	"github.com/ava12/parsec/outcome"
	"github.com/ava12/parsec/source"
)

// Unbounded is the upper bound of repetitions without a limit.
const Unbounded = math.MaxInt

// Sequence runs parsers one after another and yields []any of their values.
// Fails if any of parsers fails, the failure names the element and its position.
func Sequence(parsers ...Parser) Parser {
	return New(func(ctx source.Context) Outcome {
		values := make([]any, 0, len(parsers))
		next := ctx
		for i, p := range parsers {
			o := p.action(next)
			if !o.IsSuccess() {
				return Failed(fmt.Sprintf("sequence element #%d failed at %s", i, source.PosOf(next)), o.Failure())
			}
			values = append(values, o.Value().Value)
			next = o.Value().Context
		}
		return Succeeded(values, next)
	})
}

// Alternatives tries parsers in order from the same position and returns the first success.
// If all parsers fail, the failure holds failures of every parser.
func Alternatives(parsers ...Parser) Parser {
	return New(func(ctx source.Context) Outcome {
		failures := make([]*outcome.Failure, 0, len(parsers))
		for _, p := range parsers {
			o := p.action(ctx)
			if o.IsSuccess() {
				return o
			}
			failures = append(failures, o.Failure())
		}
		return Failed("no alternatives matched", failures...)
	})
}

// Lift2 lifts a function of two values to a function of two parsers run in sequence.
func Lift2(f func(a, b any) any) func(a, b Parser) Parser {
	return func(a, b Parser) Parser {
		return a.Chain(func(va any) Parser {
			return b.Chain(func(vb any) Parser {
				return Of(f(va, vb))
			})
		})
	}
}

// Between repeats p until it fails and yields []any of parsed values.
// Fails if p matched less than lower times or more than upper times:
// exceeding upper is a failure, not a reason to stop.
// Panics with parsec.Error if lower < 0 or upper < lower.
func (p Parser) Between(lower, upper int) Parser {
	if lower < 0 || upper < lower {
		panic(wrongBoundsError(lower, upper))
	}

	return New(func(ctx source.Context) Outcome {
		values := make([]any, 0)
		next := ctx
		for {
			o := p.action(next)
			if !o.IsSuccess() {
				break
			}

			values = append(values, o.Value().Value)
			next = o.Value().Context
			if len(values) > upper {
				return Failed(fmt.Sprintf("expecting at most %d matches, got %d", upper, len(values)))
			}
		}

		if len(values) < lower {
			return Failed(fmt.Sprintf("expecting at least %d matches, got %d", lower, len(values)))
		}
		return Succeeded(values, next)
	})
}

// Many matches p zero or more times, it never fails.
// p must consume input on success, otherwise Many never stops.
func (p Parser) Many() Parser {
	return p.Between(0, Unbounded)
}

func (p Parser) AtLeast(n int) Parser {
	return p.Between(n, Unbounded)
}

func (p Parser) AtMost(n int) Parser {
	return p.Between(0, n)
}

// Times matches p exactly n times.
func (p Parser) Times(n int) Parser {
	return p.Between(n, n)
}

// SepBy1 matches one or more p separated by sep and yields []any of p values.
// A trailing separator not followed by p is left unconsumed.
func (p Parser) SepBy1(sep Parser) Parser {
	return p.Chain(func(first any) Parser {
		return sep.Then(p).Many().Map(func(v any) any {
			return append([]any{first}, v.([]any)...)
		})
	})
}

// SepBy matches zero or more p separated by sep.
func (p Parser) SepBy(sep Parser) Parser {
	return p.SepBy1(sep).Alt(Of(make([]any, 0)))
}
